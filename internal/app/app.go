package app

import (
	"context"
	"fmt"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"matching/internal/gateway/kafka/notification"
	"matching/internal/handlers/rest/match_score_post"
	"matching/internal/handlers/rest/match_status_put"
	"matching/internal/handlers/rest/match_viewed_post"
	"matching/internal/handlers/rest/shipment_matches_get"
	"matching/internal/handlers/rest/shipment_matches_post"
	"matching/internal/handlers/rest/trip_matches_get"
	"matching/internal/handlers/rest/trip_matches_post"
	"matching/internal/handlers/tasks/match_expiry"
	"matching/internal/handlers/tasks/shipment_sweep"
	"matching/internal/pkg/config"
	expiryFactory "matching/internal/pkg/factory/match_expiry"
	"matching/internal/pkg/factory/listing_handle"
	"matching/internal/pkg/kafka"
	"matching/internal/pkg/scorer"
	"matching/internal/repository/dedup"
	listingRepo "matching/internal/repository/listing"
	matchRepo "matching/internal/repository/match"
	listingService "matching/internal/service/listing"
	matchService "matching/internal/service/match"
	"matching/pkg/background"
	"matching/pkg/logger"
	"matching/pkg/tx"
)

type Application struct {
	ServiceMatch      ServiceMatch
	BackgroundWorkers *background.Worker
}

type ServiceMatch interface {
	shipment_matches_post.Service
	shipment_matches_get.Service
	trip_matches_post.Service
	trip_matches_get.Service
	match_status_put.Service
	match_viewed_post.Service
	match_score_post.Service
}

type KafkaWorkerApp struct {
	ListingService *listingService.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *tx.Querier {
	return tx.NewQuerier(pool, getter)
}

func provideMatchRepository(querier *tx.Querier) *matchRepo.Repository {
	return matchRepo.New(querier)
}

func provideListingRepository(querier *tx.Querier) *listingRepo.Repository {
	return listingRepo.New(querier)
}

func provideDedupStore(client *redis.Client, expiry *expiryFactory.MatchExpiryFactory, cfg *config.Config) *dedup.Store {
	return dedup.New(client, expiry.Retention(), cfg.Redis.EventTTL)
}

func provideScorer(cfg *config.Config) (*scorer.Scorer, error) {
	tiers := cfg.Matching.TierBreakpoints

	s, err := scorer.New(scorer.Options{
		Scheme:              scorer.WeightScheme(cfg.Matching.WeightScheme),
		CapacityPolicy:      scorer.CapacityPolicy(cfg.Matching.CapacityPolicy),
		StrictRouteMatching: cfg.Matching.StrictRouteMatching,
		AcceptanceThreshold: cfg.Matching.AcceptanceThreshold,
		TierBreakpoints: scorer.TierBreakpoints{
			SmallKg:  tiers.SmallKg,
			MediumKg: tiers.MediumKg,
			HeavyKg:  tiers.HeavyKg,
			SmallM3:  tiers.SmallM3,
			MediumM3: tiers.MediumM3,
			HeavyM3:  tiers.HeavyM3,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("scorer: %w", err)
	}
	return s, nil
}

func provideNotificationGateway(producer *kafka.Producer, cfg *config.Config) *notification.Gateway {
	return notification.New(producer, cfg.Kafka.NotificationTopic)
}

func provideMatchExpiryFactory(cfg *config.Config) *expiryFactory.MatchExpiryFactory {
	return expiryFactory.New(cfg.Matching.RetentionPeriod)
}

func provideMatchSettings(cfg *config.Config) matchService.Settings {
	return matchService.Settings{
		ScoreWorkers:       cfg.Matching.ScoreWorkers,
		HighScoreThreshold: cfg.Matching.HighScoreThreshold,
		SweepBatchSize:     uint64(max(cfg.Matching.SweepBatchSize, 0)),
	}
}

func provideServiceMatch(
	log logger.Logger,
	repository matchService.Repository,
	listings matchService.ListingRepository,
	matchScorer matchService.Scorer,
	notifier *notification.Gateway,
	notificationLog matchService.NotificationLog,
	expiry *expiryFactory.MatchExpiryFactory,
	txManager matchService.TxManager,
	settings matchService.Settings,
) *matchService.Service {
	return matchService.New(
		log,
		repository,
		listings,
		matchScorer,
		notifier,
		notificationLog,
		expiry,
		txManager,
		settings,
	)
}

func provideListingHandlerFactory(service listingService.MatchService) *listing_handle.ListingHandlerFactory {
	return listing_handle.NewListingHandlerFactory(service)
}

func provideListingService(
	log logger.Logger,
	eventLog listingService.EventLog,
	handlerFactory listingService.HandlerFactory,
) *listingService.Service {
	return listingService.New(log, eventLog, handlerFactory)
}

func provideMatchExpiryTask(
	log logger.Logger,
	service match_expiry.Service,
	cfg *config.Config,
) *match_expiry.MatchExpiry {
	return match_expiry.NewMatchExpiry(log, service, cfg.Tasks.MatchExpiryInterval)
}

func provideShipmentSweepTask(
	ctx context.Context,
	service shipment_sweep.Service,
	cfg *config.Config,
) (*shipment_sweep.ShipmentSweep, error) {
	return shipment_sweep.NewShipmentSweep(ctx, service, cfg.Tasks.ShipmentSweepInterval)
}

func provideTaskList(
	matchExpiryTask *match_expiry.MatchExpiry,
	shipmentSweepTask *shipment_sweep.ShipmentSweep,
) []background.Task {
	return []background.Task{
		matchExpiryTask,
		shipmentSweepTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
