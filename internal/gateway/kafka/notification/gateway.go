package notification

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"matching/internal/entities"
	retrierconfig "matching/pkg/retrier"
	"matching/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type Gateway struct {
	producer producer
	topic    string
	retrier  retrier
}

func New(producer producer, topic string) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		producer: producer,
		topic:    topic,
		retrier:  backoff_adapter.New(retryConfig),
	}
}

// PublishMatchNotifications отправляет пачку уведомлений. При частичной неудаче
// повторно уходят только неотправленные сообщения.
func (g *Gateway) PublishMatchNotifications(ctx context.Context, notifications []entities.MatchNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	msgs := make([]*sarama.ProducerMessage, 0, len(notifications))
	recipients := make(map[*sarama.ProducerMessage]entities.NotificationRecipient, len(notifications))
	for _, n := range notifications {
		msg, err := toProducerMessage(g.topic, n)
		if err != nil {
			return fmt.Errorf("gateway notification, publish: %w", err)
		}
		msgs = append(msgs, msg)
		recipients[msg] = n.Recipient
	}

	pending := msgs
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		err := g.producer.SendMessages(pending)
		if err == nil {
			pending = nil
			return nil
		}

		var producerErrs sarama.ProducerErrors
		if errors.As(err, &producerErrs) {
			failed := make([]*sarama.ProducerMessage, 0, len(producerErrs))
			for _, producerErr := range producerErrs {
				failed = append(failed, producerErr.Msg)
			}
			pending = failed
		}
		return err
	})

	PublishDuration.WithLabelValues(resultLabel(err)).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		PublishRetriesTotal.Inc()
	}
	recordPublished(msgs, pending, recipients)

	if err != nil {
		return fmt.Errorf("gateway notification, publish %d of %d failed: %w", len(pending), len(msgs), err)
	}
	return nil
}

func recordPublished(
	msgs, pending []*sarama.ProducerMessage,
	recipients map[*sarama.ProducerMessage]entities.NotificationRecipient,
) {
	failed := make(map[*sarama.ProducerMessage]struct{}, len(pending))
	for _, msg := range pending {
		failed[msg] = struct{}{}
	}
	for _, msg := range msgs {
		if _, ok := failed[msg]; ok {
			continue
		}
		PublishedTotal.WithLabelValues(recipients[msg].String()).Inc()
	}
}

// isRetryable ретраим, только если все ошибки в пачке временные
func isRetryable(err error) bool {
	var producerErrs sarama.ProducerErrors
	if errors.As(err, &producerErrs) {
		if len(producerErrs) == 0 {
			return false
		}
		for _, producerErr := range producerErrs {
			if !isTransient(producerErr.Err) {
				return false
			}
		}
		return true
	}
	return isTransient(err)
}

func isTransient(err error) bool {
	if errors.Is(err, sarama.ErrOutOfBrokers) || errors.Is(err, sarama.ErrNotConnected) {
		return true
	}

	var kafkaErr sarama.KError
	if errors.As(err, &kafkaErr) {
		switch kafkaErr {
		case sarama.ErrNotLeaderForPartition,
			sarama.ErrLeaderNotAvailable,
			sarama.ErrRequestTimedOut,
			sarama.ErrNotEnoughReplicas,
			sarama.ErrNotEnoughReplicasAfterAppend,
			sarama.ErrNetworkException:
			return true
		}
	}
	return false
}

func resultLabel(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
