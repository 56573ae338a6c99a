package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"matching/internal/entities"
)

const (
	keyPrefix = "matching"

	// события ленты перечитываются только при откате оффсетов, суток хватает
	DefaultEventTTL = 24 * time.Hour
)

// Store журналы уведомленных пар и обработанных событий в Redis.
type Store struct {
	redis       *redis.Client
	notifiedTTL time.Duration
	eventTTL    time.Duration
}

// New notifiedTTL совпадает со сроком жизни совпадения.
func New(client *redis.Client, notifiedTTL, eventTTL time.Duration) *Store {
	if eventTTL <= 0 {
		eventTTL = DefaultEventTTL
	}
	return &Store{
		redis:       client,
		notifiedTTL: notifiedTTL,
		eventTTL:    eventTTL,
	}
}

// MarkNotified добавляет пары в журнал и возвращает только новые.
func (s *Store) MarkNotified(ctx context.Context, pairs []entities.MatchPair) ([]entities.MatchPair, error) {
	if len(pairs) == 0 {
		return []entities.MatchPair{}, nil
	}

	pipe := s.redis.Pipeline()
	added := make([]*redis.IntCmd, len(pairs))
	keys := make(map[string]struct{}, len(pairs))
	for i, pair := range pairs {
		key := notifiedKey(pair.ShipmentID)
		added[i] = pipe.SAdd(ctx, key, pair.TripID)
		keys[key] = struct{}{}
	}
	if s.notifiedTTL > 0 {
		for key := range keys {
			pipe.Expire(ctx, key, s.notifiedTTL)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("mark pairs notified: %w", err)
	}

	fresh := make([]entities.MatchPair, 0, len(pairs))
	for i, cmd := range added {
		// SADD возвращает 0, если trip уже был в множестве
		if cmd.Val() > 0 {
			fresh = append(fresh, pairs[i])
		}
	}
	return fresh, nil
}

func (s *Store) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	n, err := s.redis.Exists(ctx, eventKey(eventID)).Result()
	if err != nil {
		return false, fmt.Errorf("check event processed: %w", err)
	}
	return n > 0, nil
}

func (s *Store) MarkEventProcessed(ctx context.Context, eventID string) error {
	processedAt := time.Now().UTC().Format(time.RFC3339)
	if err := s.redis.Set(ctx, eventKey(eventID), processedAt, s.eventTTL).Err(); err != nil {
		return fmt.Errorf("mark event processed: %w", err)
	}
	return nil
}

func notifiedKey(shipmentID string) string {
	return fmt.Sprintf("%s:shipment:%s:notified", keyPrefix, shipmentID)
}

func eventKey(eventID string) string {
	return fmt.Sprintf("%s:event:%s", keyPrefix, eventID)
}
