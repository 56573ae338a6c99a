//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_sweep_test
package shipment_sweep

import (
	"context"

	"matching/internal/entities"
)

type Service interface {
	SweepPendingShipments(ctx context.Context, cursor entities.SweepCursor) (entities.SweepCursor, error)
	GetSweepCursor(ctx context.Context) (entities.SweepCursor, error)
}
