package match

import (
	"context"
	"fmt"
	"time"

	"matching/internal/entities"
)

// UpdateMatchStatus переводит матч в новый статус по таблице переходов.
// Повторная установка текущего статуса ничего не меняет.
func (s *Service) UpdateMatchStatus(ctx context.Context, id int64, status entities.MatchStatusType) (*entities.Match, error) {
	if id <= 0 {
		return nil, ErrInvalidMatchID
	}
	if !isValidStatus(status) {
		return nil, ErrInvalidStatus
	}
	if status == entities.MatchExpired {
		return nil, fmt.Errorf("%w: %s is set by expiry only", ErrInvalidStatusTransition, status)
	}

	var updated *entities.Match
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		if current.Status == status {
			updated = current
			return nil
		}
		if !canTransition(current.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, current.Status, status)
		}

		updated, err = s.repository.Update(ctx, entities.MatchModify{
			ID:     &id,
			Status: &status,
		})
		if err != nil {
			return fmt.Errorf("update match status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkViewed запоминает первый просмотр стороной и переводит new в viewed.
func (s *Service) MarkViewed(ctx context.Context, id int64, viewer entities.MatchViewer) (*entities.Match, error) {
	if id <= 0 {
		return nil, ErrInvalidMatchID
	}
	if !isValidViewer(viewer) {
		return nil, ErrInvalidViewer
	}

	var updated *entities.Match
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get match: %w", err)
		}

		now := time.Now().UTC()
		modify := entities.MatchModify{ID: &id}
		changed := false

		switch viewer {
		case entities.ViewerShipper:
			if current.ShipperViewedAt == nil {
				modify.ShipperViewedAt = &now
				changed = true
			}
		case entities.ViewerCarrier:
			if current.CarrierViewedAt == nil {
				modify.CarrierViewedAt = &now
				changed = true
			}
		}
		if current.Status == entities.MatchNew {
			viewed := entities.MatchViewed
			modify.Status = &viewed
			changed = true
		}

		if !changed {
			updated = current
			return nil
		}

		updated, err = s.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("mark match viewed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
