//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_changed_test
package listing_changed

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
	ProcessListingChange(ctx context.Context, event entities.ListingEvent) error
}
