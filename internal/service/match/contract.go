//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_test
package match

import (
	"context"
	"time"

	"matching/internal/entities"
	"matching/pkg/logger"
)

type Repository interface {
	CreateMany(ctx context.Context, matches []entities.MatchModify) ([]entities.Match, error)
	DeleteRecalculableByShipmentID(ctx context.Context, shipmentID string) (int64, error)
	DeleteRecalculableByTripID(ctx context.Context, tripID string) (int64, error)

	GetByID(ctx context.Context, id int64) (*entities.Match, error)
	GetActiveByShipmentID(ctx context.Context, shipmentID string, now time.Time) ([]entities.Match, error)
	GetActiveByTripID(ctx context.Context, tripID string, now time.Time) ([]entities.Match, error)
	Update(ctx context.Context, matchModify entities.MatchModify) (*entities.Match, error)

	ExpireOutdated(ctx context.Context, now time.Time) (int64, error)
	GetLatestMatchedShipmentCursor(ctx context.Context) (entities.SweepCursor, error)
}

type ListingRepository interface {
	GetShipmentByID(ctx context.Context, id string) (*entities.Shipment, error)
	GetTripByID(ctx context.Context, id string) (*entities.Trip, error)
	GetActiveTrips(ctx context.Context, from time.Time) ([]entities.Trip, error)
	GetPendingShipments(ctx context.Context, from time.Time) ([]entities.Shipment, error)
	GetPendingShipmentsAfter(ctx context.Context, cursor entities.SweepCursor, limit uint64) ([]entities.Shipment, error)
}

type Scorer interface {
	Score(shipment entities.Shipment, trip entities.Trip) entities.MatchResult
	Accepts(result entities.MatchResult) bool
}

type Notifier interface {
	PublishMatchNotifications(ctx context.Context, notifications []entities.MatchNotification) error
}

// NotificationLog помнит пары, о которых уже уведомляли.
type NotificationLog interface {
	// MarkNotified возвращает только пары, которых в журнале еще не было.
	MarkNotified(ctx context.Context, pairs []entities.MatchPair) ([]entities.MatchPair, error)
}

type ExpiryFactory interface {
	ExpiresAt(createdAt time.Time) time.Time
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Warn(msg string, fields ...logger.Field)
}
