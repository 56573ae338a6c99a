//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_viewed_post_test
package match_viewed_post

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
	MarkViewed(ctx context.Context, id int64, viewer entities.MatchViewer) (*entities.Match, error)
}
