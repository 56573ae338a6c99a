//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_status_put_test
package match_status_put

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
	UpdateMatchStatus(ctx context.Context, id int64, status entities.MatchStatusType) (*entities.Match, error)
}
