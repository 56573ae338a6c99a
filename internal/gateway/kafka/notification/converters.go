package notification

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"matching/internal/entities"
)

const recipientHeader = "recipient"

type notificationMessage struct {
	Recipient    string    `json:"recipient"`
	UserID       string    `json:"user_id"`
	ShipmentID   string    `json:"shipment_id,omitempty"`
	TripID       string    `json:"trip_id,omitempty"`
	MatchIDs     []int64   `json:"match_ids"`
	MatchCount   int       `json:"match_count"`
	BestScore    int       `json:"best_score"`
	HighPriority bool      `json:"high_priority"`
	CreatedAt    time.Time `json:"created_at"`
}

func toMessage(n entities.MatchNotification) notificationMessage {
	matchIDs := n.MatchIDs
	if matchIDs == nil {
		matchIDs = []int64{}
	}
	return notificationMessage{
		Recipient:    n.Recipient.String(),
		UserID:       n.UserID,
		ShipmentID:   n.ShipmentID,
		TripID:       n.TripID,
		MatchIDs:     matchIDs,
		MatchCount:   n.MatchCount,
		BestScore:    n.BestScore,
		HighPriority: n.HighPriority,
		CreatedAt:    n.CreatedAt.UTC(),
	}
}

// toProducerMessage ключ - id груза, у сводки перевозчику груза нет, тогда id рейса
func toProducerMessage(topic string, n entities.MatchNotification) (*sarama.ProducerMessage, error) {
	payload, err := json.Marshal(toMessage(n))
	if err != nil {
		return nil, fmt.Errorf("marshal notification: %w", err)
	}

	key := n.ShipmentID
	if key == "" {
		key = n.TripID
	}

	return &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(recipientHeader), Value: []byte(n.Recipient.String())},
		},
	}, nil
}
