package listing_changed

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"matching/internal/service/listing"
	"matching/internal/service/match"
	"matching/pkg/logger"
)

type Handler struct {
	listingService           Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, listingService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		listingService:           listingService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("listing.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("listing.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing true - прервать ConsumeClaim без коммита оффсета,
// сообщение перечитается после ребаланса.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event listingChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("listing.changed handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("event_id", event.EventID),
		logger.NewField("kind", event.Kind),
		logger.NewField("operation", event.Operation),
		logger.NewField("listing_id", event.ListingID),
		logger.NewField("offset", message.Offset),
	)

	err = h.listingService.ProcessListingChange(ctx, event.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("listing.changed handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, listing.ErrDuplicateEvent):
			msgLog.Info("listing.changed handler skipped duplicate event")

		case errors.Is(err, listing.ErrInvalidEvent),
			errors.Is(err, listing.ErrUndefinedEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("listing.changed handler unsupported event")

		case errors.Is(err, match.ErrShipmentNotFound),
			errors.Is(err, match.ErrTripNotFound):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("listing.changed handler listing not found")

		default:
			msgLog.With(
				logger.NewField("error", err),
			).Error("listing.changed handler failed to process event")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.Info("listing.changed: processed")
	sess.MarkMessage(message, "")
	return false
}
