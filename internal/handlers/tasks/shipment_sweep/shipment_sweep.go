package shipment_sweep

import (
	"context"
	"time"

	"matching/internal/entities"
)

type ShipmentSweep struct {
	service  Service
	interval time.Duration
	cursor   entities.SweepCursor
}

func NewShipmentSweep(ctx context.Context, service Service, interval time.Duration) (*ShipmentSweep, error) {
	cursor, err := service.GetSweepCursor(ctx)
	if err != nil {
		return nil, err
	}

	return &ShipmentSweep{
		service:  service,
		interval: interval,
		cursor:   cursor,
	}, nil
}

// TTL интервал между проходами.
func (s *ShipmentSweep) TTL() time.Duration {
	return s.interval
}

// Do догоняет грузы после курсора. Курсор сдвигается и при частичном проходе.
func (s *ShipmentSweep) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	newCursor, err := s.service.SweepPendingShipments(ctxWithTimeout, s.cursor)
	if newCursor.After(s.cursor) {
		s.cursor = newCursor
	}

	return err
}

func (s *ShipmentSweep) Info() string {
	return "shipment sweep"
}

func (s *ShipmentSweep) Cursor() entities.SweepCursor {
	return s.cursor
}
