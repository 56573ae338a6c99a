package dial

import (
	"context"
	"fmt"
	"time"

	"matching/pkg/logger"
	retrierconfig "matching/pkg/retrier"
	"matching/pkg/retrier/backoff_adapter"
)

type PingFunc func(ctx context.Context) error

// Ping повторяет ping с экспоненциальной задержкой, пока зависимость не ответит
// или не истечет cfg.MaxElapsedTime. target попадает в логи ("Database", "Redis", "Kafka").
func Ping(ctx context.Context, log logger.Logger, target string, cfg retrierconfig.Config, ping PingFunc) error {
	var attempt uint64

	cfg.OnRetry = func(err error, next time.Duration) {
		log.With(
			logger.NewField("attempt", attempt),
			logger.NewField("next_in", next.String()),
			logger.NewField("error", err),
		).Warn(fmt.Sprintf("%s is not ready, retrying", target))
	}

	err := backoff_adapter.New(cfg).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return ping(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error(fmt.Sprintf("%s connection failed after retries", target))
		return fmt.Errorf("ping %s: %w", target, err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info(fmt.Sprintf("%s connection established", target))
	return nil
}
