//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_matches_post_test
package shipment_matches_post

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
	FindMatchesForShipment(ctx context.Context, shipmentID string, force bool) ([]entities.Match, error)
}
