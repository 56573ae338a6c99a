package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matching/internal/entities"
)

const (
	directionShipment = "shipment"
	directionTrip     = "trip"
)

type Settings struct {
	// сколько пар оценивается параллельно
	ScoreWorkers int
	// лучший счет от этого значения помечает уведомление как приоритетное
	HighScoreThreshold int
	SweepBatchSize     uint64
}

type Service struct {
	log             serviceLogger
	repository      Repository
	listings        ListingRepository
	scorer          Scorer
	notifier        Notifier
	notificationLog NotificationLog
	expiryFactory   ExpiryFactory
	txManager       TxManager
	settings        Settings
}

func New(
	log serviceLogger,
	repository Repository,
	listings ListingRepository,
	scorer Scorer,
	notifier Notifier,
	notificationLog NotificationLog,
	expiryFactory ExpiryFactory,
	txManager TxManager,
	settings Settings,
) *Service {
	if settings.ScoreWorkers <= 0 {
		settings.ScoreWorkers = 1
	}
	if settings.SweepBatchSize == 0 {
		settings.SweepBatchSize = 100
	}

	return &Service{
		log:             log,
		repository:      repository,
		listings:        listings,
		scorer:          scorer,
		notifier:        notifier,
		notificationLog: notificationLog,
		expiryFactory:   expiryFactory,
		txManager:       txManager,
		settings:        settings,
	}
}

// FindMatchesForShipment оценивает груз против всех активных рейсов и сохраняет прошедшие порог пары.
// Без force возвращает уже найденные активные совпадения, если они есть.
func (s *Service) FindMatchesForShipment(ctx context.Context, shipmentID string, force bool) ([]entities.Match, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	now := time.Now().UTC()
	if !force {
		existing, err := s.repository.GetActiveByShipmentID(ctx, shipmentID, now)
		if err != nil {
			return nil, fmt.Errorf("get existing matches: %w", err)
		}
		if len(existing) > 0 {
			return existing, nil
		}
	}

	shipment, err := s.listings.GetShipmentByID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	if shipment.Status != entities.ShipmentPending {
		return nil, fmt.Errorf("%w: %s is %s", ErrShipmentNotMatchable, shipment.ID, shipment.Status)
	}

	trips, err := s.listings.GetActiveTrips(ctx, startOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("get active trips: %w", err)
	}

	results, err := s.scoreCandidates(ctx, directionShipment, len(trips), func(i int) entities.MatchResult {
		return s.scorer.Score(*shipment, trips[i])
	})
	if err != nil {
		return nil, fmt.Errorf("score trips: %w", err)
	}

	created, err := s.persist(ctx, results, now, force, func(ctx context.Context) error {
		_, err := s.repository.DeleteRecalculableByShipmentID(ctx, shipment.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	tripsByID := make(map[string]entities.Trip, len(trips))
	for _, trip := range trips {
		tripsByID[trip.ID] = trip
	}
	s.notify(ctx, created, func(fresh []entities.Match) []entities.MatchNotification {
		return shipmentNotifications(*shipment, tripsByID, fresh, s.settings.HighScoreThreshold, now)
	})

	return created, nil
}

// FindMatchesForTrip симметрично FindMatchesForShipment: рейс против ожидающих грузов.
func (s *Service) FindMatchesForTrip(ctx context.Context, tripID string, force bool) ([]entities.Match, error) {
	if !isValidID(tripID) {
		return nil, ErrInvalidTripID
	}

	now := time.Now().UTC()
	if !force {
		existing, err := s.repository.GetActiveByTripID(ctx, tripID, now)
		if err != nil {
			return nil, fmt.Errorf("get existing matches: %w", err)
		}
		if len(existing) > 0 {
			return existing, nil
		}
	}

	trip, err := s.listings.GetTripByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("get trip: %w", err)
	}
	if trip.Status != entities.TripActive {
		return nil, fmt.Errorf("%w: %s is %s", ErrTripNotMatchable, trip.ID, trip.Status)
	}

	shipments, err := s.listings.GetPendingShipments(ctx, startOfDay(now))
	if err != nil {
		return nil, fmt.Errorf("get pending shipments: %w", err)
	}

	results, err := s.scoreCandidates(ctx, directionTrip, len(shipments), func(i int) entities.MatchResult {
		return s.scorer.Score(shipments[i], *trip)
	})
	if err != nil {
		return nil, fmt.Errorf("score shipments: %w", err)
	}

	created, err := s.persist(ctx, results, now, force, func(ctx context.Context) error {
		_, err := s.repository.DeleteRecalculableByTripID(ctx, trip.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	shipmentsByID := make(map[string]entities.Shipment, len(shipments))
	for _, shipment := range shipments {
		shipmentsByID[shipment.ID] = shipment
	}
	s.notify(ctx, created, func(fresh []entities.Match) []entities.MatchNotification {
		return tripNotifications(*trip, shipmentsByID, fresh, s.settings.HighScoreThreshold, now)
	})

	return created, nil
}

func (s *Service) GetMatchesForShipment(ctx context.Context, shipmentID string) ([]entities.Match, error) {
	if !isValidID(shipmentID) {
		return nil, ErrInvalidShipmentID
	}

	matches, err := s.repository.GetActiveByShipmentID(ctx, shipmentID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get matches for shipment: %w", err)
	}
	return matches, nil
}

func (s *Service) GetMatchesForTrip(ctx context.Context, tripID string) ([]entities.Match, error) {
	if !isValidID(tripID) {
		return nil, ErrInvalidTripID
	}

	matches, err := s.repository.GetActiveByTripID(ctx, tripID, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("get matches for trip: %w", err)
	}
	return matches, nil
}

// ScorePair оценивает пару без сохранения.
func (s *Service) ScorePair(ctx context.Context, shipment entities.Shipment, trip entities.Trip) (entities.MatchResult, bool, error) {
	if err := ctx.Err(); err != nil {
		return entities.MatchResult{}, false, err
	}

	result := s.scorer.Score(shipment, trip)
	return result, s.scorer.Accepts(result), nil
}

func (s *Service) CleanupExpiredMatches(ctx context.Context) (int64, error) {
	rowsAffected, err := s.repository.ExpireOutdated(ctx, time.Now().UTC())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("cleanup timed out: %w", err)
		}
		return 0, fmt.Errorf("cleanup: %w", err)
	}

	return rowsAffected, nil
}

// persist в одной транзакции удаляет пересчитываемые пары (при force) и вставляет новые.
func (s *Service) persist(
	ctx context.Context,
	results []entities.MatchResult,
	now time.Time,
	force bool,
	deleteRecalculable func(ctx context.Context) error,
) ([]entities.Match, error) {
	created := []entities.Match{}
	if !force && len(results) == 0 {
		return created, nil
	}

	expiresAt := s.expiryFactory.ExpiresAt(now)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if force {
			if err := deleteRecalculable(ctx); err != nil {
				return fmt.Errorf("delete recalculable matches: %w", err)
			}
		}
		if len(results) == 0 {
			return nil
		}

		inserted, err := s.repository.CreateMany(ctx, toMatchModifies(results, expiresAt))
		if err != nil {
			return fmt.Errorf("create matches: %w", err)
		}
		created = inserted
		return nil
	})
	if err != nil {
		return nil, err
	}

	sortMatchesByScore(created)
	return created, nil
}

func toMatchModifies(results []entities.MatchResult, expiresAt time.Time) []entities.MatchModify {
	modifies := make([]entities.MatchModify, 0, len(results))
	for i := range results {
		result := results[i]
		status := entities.MatchNew
		modifies = append(modifies, entities.MatchModify{
			ShipmentID: &result.ShipmentID,
			TripID:     &result.TripID,
			Score:      &result.Score,
			SubScores:  &result.SubScores,
			Reasons:    result.Reasons,
			Status:     &status,
			ExpiresAt:  &expiresAt,
		})
	}
	return modifies
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
