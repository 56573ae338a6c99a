package listing

import (
	"context"
	"fmt"
	"strings"

	"matching/internal/entities"
	"matching/pkg/logger"
)

type Service struct {
	log            serviceLogger
	eventLog       EventLog
	handlerFactory HandlerFactory
}

func New(log serviceLogger, eventLog EventLog, handlerFactory HandlerFactory) *Service {
	return &Service{
		log:            log,
		eventLog:       eventLog,
		handlerFactory: handlerFactory,
	}
}

// ProcessListingChange пересчитывает совпадения по событию из ленты объявлений.
// Журнал событий недоступен: событие обрабатывается, повтор безопасен.
func (s *Service) ProcessListingChange(ctx context.Context, event entities.ListingEvent) error {
	if strings.TrimSpace(event.EventID) == "" || strings.TrimSpace(event.ListingID) == "" {
		return fmt.Errorf("%w: event id and listing id are required", ErrInvalidEvent)
	}

	processed, err := s.eventLog.IsEventProcessed(ctx, event.EventID)
	if err != nil {
		s.log.Warn("check listing event processed",
			logger.NewField("event_id", event.EventID),
			logger.NewField("error", err),
		)
	}
	if processed {
		return fmt.Errorf("%w: %s", ErrDuplicateEvent, event.EventID)
	}

	executeFn, err := s.handlerFactory.GetHandler(event.Kind, event.Operation)
	if err != nil {
		return err
	}

	if err := executeFn(ctx, event.ListingID); err != nil {
		return err
	}

	if err := s.eventLog.MarkEventProcessed(ctx, event.EventID); err != nil {
		s.log.Warn("mark listing event processed",
			logger.NewField("event_id", event.EventID),
			logger.NewField("error", err),
		)
	}
	return nil
}
