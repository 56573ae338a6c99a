//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_test
package listing

import (
	"context"

	"matching/internal/entities"
	"matching/pkg/logger"
)

type MatchService interface {
	FindMatchesForShipment(ctx context.Context, shipmentID string, force bool) ([]entities.Match, error)
	FindMatchesForTrip(ctx context.Context, tripID string, force bool) ([]entities.Match, error)
}

// EventLog журнал обработанных событий ленты.
type EventLog interface {
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}

type (
	ExecuteFn      func(ctx context.Context, listingID string) error
	HandlerFactory interface {
		GetHandler(kind entities.ListingKind, operation entities.ListingOperation) (ExecuteFn, error)
	}
)

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
