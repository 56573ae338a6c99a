package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"matching/internal/entities"
	"matching/internal/service/match"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var shipmentColumns = []string{
	"s.id", "s.shipper_id", "s.title", "s.pickup_location", "s.delivery_location",
	"s.weight", "s.dimensions", "s.preferred_date", "s.preferred_vehicle_type", "s.status", "s.created_at",
}

var tripColumns = []string{
	"t.id", "t.carrier_id", "t.from_location", "t.to_location", "t.travel_date",
	"t.capacity", "t.vehicle_type", "c.rating", "t.status", "t.created_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetShipmentByID(ctx context.Context, id string) (*entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments s").
		Where(sq.Eq{"s.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get shipment error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected listing repository get shipment error: %w", err)
	}

	return ShipmentToDomain(shipmentDB), nil
}

func (r *Repository) GetTripByID(ctx context.Context, id string) (*entities.Trip, error) {
	query, args, err := tripSelect().
		Where(sq.Eq{"t.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get trip error: %w", err)
	}

	tripDB, err := scanTrip(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrTripNotFound
		}
		return nil, fmt.Errorf("unexpected listing repository get trip error: %w", err)
	}

	return TripToDomain(tripDB), nil
}

// GetActiveTrips активные рейсы с датой поездки не раньше from.
func (r *Repository) GetActiveTrips(ctx context.Context, from time.Time) ([]entities.Trip, error) {
	query, args, err := tripSelect().
		Where(sq.Eq{"t.status": entities.TripActive.String()}).
		Where(sq.GtOrEq{"t.travel_date": from}).
		OrderBy("t.travel_date ASC", "t.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get active trips error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get active trips error: %w", err)
	}
	defer rows.Close()

	trips := []entities.Trip{}
	for rows.Next() {
		tripDB, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected listing repository get active trips error: %w", err)
		}
		trips = append(trips, *TripToDomain(tripDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected listing repository get active trips error: %w", err)
	}

	return trips, nil
}

// GetPendingShipments ожидающие грузы, у которых желаемая дата не задана или не раньше from.
func (r *Repository) GetPendingShipments(ctx context.Context, from time.Time) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments s").
		Where(sq.Eq{"s.status": entities.ShipmentPending.String()}).
		Where(sq.Or{
			sq.Eq{"s.preferred_date": nil},
			sq.GtOrEq{"s.preferred_date": from},
		}).
		OrderBy("s.created_at ASC", "s.id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get pending shipments error: %w", err)
	}

	shipments, err := r.queryShipments(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get pending shipments error: %w", err)
	}
	return shipments, nil
}

// GetPendingShipmentsAfter страница ожидающих грузов строго после курсора (created_at, id).
func (r *Repository) GetPendingShipmentsAfter(
	ctx context.Context,
	cursor entities.SweepCursor,
	limit uint64,
) ([]entities.Shipment, error) {
	query, args, err := qb.
		Select(shipmentColumns...).
		From("shipments s").
		Where(sq.Eq{"s.status": entities.ShipmentPending.String()}).
		Where(sq.Expr(`(s.created_at, s.id COLLATE "C") > (?, ?)`, cursor.CreatedAt, cursor.ShipmentID)).
		OrderBy("s.created_at ASC", `s.id COLLATE "C" ASC`).
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get shipments page error: %w", err)
	}

	shipments, err := r.queryShipments(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository get shipments page error: %w", err)
	}
	return shipments, nil
}

func (r *Repository) queryShipments(ctx context.Context, query string, args []any) ([]entities.Shipment, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shipments := []entities.Shipment{}
	for rows.Next() {
		shipmentDB, err := scanShipment(rows)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, *ShipmentToDomain(shipmentDB))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return shipments, nil
}

func tripSelect() sq.SelectBuilder {
	return qb.
		Select(tripColumns...).
		From("trips t").
		LeftJoin("carriers c ON c.id = t.carrier_id")
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var s ShipmentDB
	err := row.Scan(
		&s.ID,
		&s.ShipperID,
		&s.Title,
		&s.PickupLocation,
		&s.DeliveryLocation,
		&s.Weight,
		&s.Dimensions,
		&s.PreferredDate,
		&s.PreferredVehicleType,
		&s.Status,
		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func scanTrip(row pgx.Row) (*TripDB, error) {
	var t TripDB
	err := row.Scan(
		&t.ID,
		&t.CarrierID,
		&t.FromLocation,
		&t.ToLocation,
		&t.TravelDate,
		&t.Capacity,
		&t.VehicleType,
		&t.CarrierRating,
		&t.Status,
		&t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
