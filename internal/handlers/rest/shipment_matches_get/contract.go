//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_matches_get_test
package shipment_matches_get

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
	GetMatchesForShipment(ctx context.Context, shipmentID string) ([]entities.Match, error)
}
