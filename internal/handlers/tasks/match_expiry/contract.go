//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=match_expiry_test
package match_expiry

import (
	"context"

	"matching/pkg/logger"
)

type Service interface {
	CleanupExpiredMatches(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
