//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_score_post_test
package match_score_post

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
	ScorePair(ctx context.Context, shipment entities.Shipment, trip entities.Trip) (entities.MatchResult, bool, error)
}
