package match

import (
	"context"
	"errors"
	"fmt"
	"time"

	"matching/internal/entities"
	"matching/pkg/logger"
)

// SweepPendingShipments догоняет грузы после cursor, которые лента могла пропустить.
// Возвращает позицию последнего обработанного груза.
func (s *Service) SweepPendingShipments(ctx context.Context, cursor entities.SweepCursor) (entities.SweepCursor, error) {
	for {
		shipments, err := s.listings.GetPendingShipmentsAfter(ctx, cursor, s.settings.SweepBatchSize)
		if err != nil {
			return cursor, fmt.Errorf("get pending shipments after %s/%s: %w",
				cursor.CreatedAt.Format(time.RFC3339Nano), cursor.ShipmentID, err)
		}

		for _, shipment := range shipments {
			_, err := s.FindMatchesForShipment(ctx, shipment.ID, false)
			switch {
			case err == nil:
			case errors.Is(err, ErrShipmentNotMatchable), errors.Is(err, ErrShipmentNotFound):
				// груз успел закрыться
				s.log.Warn("skip shipment in sweep",
					logger.NewField("shipment_id", shipment.ID),
					logger.NewField("error", err),
				)
			default:
				return cursor, fmt.Errorf("sweep shipment %s: %w", shipment.ID, err)
			}

			next := entities.SweepCursor{CreatedAt: shipment.CreatedAt, ShipmentID: shipment.ID}
			if next.After(cursor) {
				cursor = next
			}
		}

		if uint64(len(shipments)) < s.settings.SweepBatchSize {
			return cursor, nil
		}
	}
}

// GetSweepCursor позиция самого позднего груза, для которого уже есть совпадения.
func (s *Service) GetSweepCursor(ctx context.Context) (entities.SweepCursor, error) {
	cursor, err := s.repository.GetLatestMatchedShipmentCursor(ctx)
	if err != nil {
		return entities.SweepCursor{}, fmt.Errorf("get sweep cursor: %w", err)
	}
	return cursor, nil
}
