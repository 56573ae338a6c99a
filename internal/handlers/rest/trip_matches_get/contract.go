//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=trip_matches_get_test
package trip_matches_get

import (
	"context"

	"matching/internal/entities"
	"matching/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetMatchesForTrip(ctx context.Context, tripID string) ([]entities.Match, error)
}
