//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"matching/internal/handlers/tasks/match_expiry"
	"matching/internal/handlers/tasks/shipment_sweep"
	"matching/internal/pkg/config"
	"matching/internal/pkg/factory/listing_handle"
	"matching/internal/pkg/kafka"
	"matching/internal/pkg/scorer"
	"matching/internal/repository/dedup"
	listingRepo "matching/internal/repository/listing"
	matchRepo "matching/internal/repository/match"
	listingService "matching/internal/service/listing"
	matchService "matching/internal/service/match"
	"matching/pkg/logger"
	"matching/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		matchSet,

		provideMatchExpiryTask,
		provideShipmentSweepTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceMatch), new(*matchService.Service)),
		wire.Bind(new(match_expiry.Service), new(*matchService.Service)),
		wire.Bind(new(shipment_sweep.Service), new(*matchService.Service)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-listing-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *redis.Client,
	producer *kafka.Producer,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		matchSet,

		provideListingHandlerFactory,
		provideListingService,

		wire.Bind(new(listingService.MatchService), new(*matchService.Service)),
		wire.Bind(new(listingService.EventLog), new(*dedup.Store)),
		wire.Bind(new(listingService.HandlerFactory), new(*listing_handle.ListingHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

var matchSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideMatchRepository,
	provideListingRepository,
	provideDedupStore,
	provideScorer,
	provideNotificationGateway,
	provideMatchExpiryFactory,
	provideMatchSettings,
	provideServiceMatch,

	wire.Bind(new(matchService.Repository), new(*matchRepo.Repository)),
	wire.Bind(new(matchService.ListingRepository), new(*listingRepo.Repository)),
	wire.Bind(new(matchService.Scorer), new(*scorer.Scorer)),
	wire.Bind(new(matchService.NotificationLog), new(*dedup.Store)),
	wire.Bind(new(matchService.TxManager), new(*tx.Manager)),
)
