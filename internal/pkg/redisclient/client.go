package redisclient

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"matching/internal/pkg/config"
	"matching/internal/pkg/dial"
	"matching/pkg/logger"
	retrierconfig "matching/pkg/retrier"
)

const (
	dialTimeout  = 5 * time.Second
	readTimeout  = 2 * time.Second
	writeTimeout = 2 * time.Second
)

var retryConfig = retrierconfig.Config{
	InitialInterval: time.Second,
	MaxInterval:     30 * time.Second,
	MaxElapsedTime:  2 * time.Minute,
	Randomization:   0.5,
	Multiplier:      2,
}

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	})

	redisLog := log.With(
		logger.NewField("addr", cfg.Addr),
		logger.NewField("db", cfg.DB),
	)

	err := dial.Ping(ctx, redisLog, "Redis", retryConfig, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	return client, nil
}
