package match

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"matching/internal/entities"
	"matching/internal/repository"
	"matching/internal/service/match"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var matchColumns = []string{
	"id", "shipment_id", "trip_id", "score",
	"pickup_score", "delivery_score", "route_score", "capacity_score", "date_score", "vehicle_score",
	"reasons", "status", "created_at", "updated_at", "expires_at", "shipper_viewed_at", "carrier_viewed_at",
}

// статусы, которые пересчет может удалить: стороны еще не связывались
var recalculableStatuses = []string{
	entities.MatchNew.String(),
	entities.MatchViewed.String(),
	entities.MatchExpired.String(),
}

// статусы, которые истекают по сроку
var expirableStatuses = []string{
	entities.MatchNew.String(),
	entities.MatchViewed.String(),
	entities.MatchContacted.String(),
}

const (
	shipmentFKey = "matches_shipment_id_fkey"
	tripFKey     = "matches_trip_id_fkey"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateMany вставляет пачку матчей, уже существующие пары пропускаются.
// Возвращает только реально вставленные строки.
func (r *Repository) CreateMany(ctx context.Context, matches []entities.MatchModify) ([]entities.Match, error) {
	if len(matches) == 0 {
		return []entities.Match{}, nil
	}

	builder := qb.
		Insert("matches").
		Columns(
			"shipment_id", "trip_id", "score",
			"pickup_score", "delivery_score", "route_score", "capacity_score", "date_score", "vehicle_score",
			"reasons", "status", "expires_at",
		)

	for i := range matches {
		m := FromDomainModify(&matches[i])
		reasons := m.Reasons
		if reasons == nil {
			reasons = []string{}
		}
		builder = builder.Values(
			m.ShipmentID, m.TripID, m.Score,
			m.PickupScore, m.DeliveryScore, m.RouteScore, m.CapacityScore, m.DateScore, m.VehicleScore,
			reasons, m.Status, m.ExpiresAt,
		)
	}

	builder = builder.Suffix("ON CONFLICT (shipment_id, trip_id) DO NOTHING RETURNING " + strings.Join(matchColumns, ", "))

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository create error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository create error: %w", err)
	}

	created, err := collectMatches(rows)
	if err != nil {
		// объявление удалили между чтением и вставкой
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			switch repository.PgConstraintName(err) {
			case shipmentFKey:
				return nil, match.ErrShipmentNotFound
			case tripFKey:
				return nil, match.ErrTripNotFound
			}
		}
		return nil, fmt.Errorf("unexpected match repository create error: %w", err)
	}
	return created, nil
}

func (r *Repository) DeleteRecalculableByShipmentID(ctx context.Context, shipmentID string) (int64, error) {
	return r.deleteRecalculable(ctx, "shipment_id", shipmentID)
}

func (r *Repository) DeleteRecalculableByTripID(ctx context.Context, tripID string) (int64, error) {
	return r.deleteRecalculable(ctx, "trip_id", tripID)
}

func (r *Repository) deleteRecalculable(ctx context.Context, column, id string) (int64, error) {
	query, args, err := qb.
		Delete("matches").
		Where(sq.Eq{column: id, "status": recalculableStatuses}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository delete error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository delete error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Match, error) {
	query, args, err := qb.
		Select(matchColumns...).
		From("matches").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository get error: %w", err)
	}

	matchDB, err := scanMatch(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}
		return nil, fmt.Errorf("unexpected match repository get error: %w", err)
	}

	return ToDomain(matchDB), nil
}

func (r *Repository) GetActiveByShipmentID(ctx context.Context, shipmentID string, now time.Time) ([]entities.Match, error) {
	return r.getActive(ctx, sq.Eq{"shipment_id": shipmentID}, now)
}

func (r *Repository) GetActiveByTripID(ctx context.Context, tripID string, now time.Time) ([]entities.Match, error) {
	return r.getActive(ctx, sq.Eq{"trip_id": tripID}, now)
}

func (r *Repository) getActive(ctx context.Context, owner sq.Eq, now time.Time) ([]entities.Match, error) {
	query, args, err := qb.
		Select(matchColumns...).
		From("matches").
		Where(owner).
		Where(sq.NotEq{"status": entities.MatchExpired.String()}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("score DESC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository get active error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository get active error: %w", err)
	}

	matches, err := collectMatches(rows)
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository get active error: %w", err)
	}
	return matches, nil
}

func (r *Repository) Update(ctx context.Context, matchModify entities.MatchModify) (*entities.Match, error) {
	matchModifyDB := FromDomainModify(&matchModify)
	if matchModifyDB.ID == nil {
		return nil, match.ErrInvalidMatchID
	}

	builder := qb.
		Update("matches")

	// опционные поля
	if matchModifyDB.Score != nil {
		builder = builder.Set("score", matchModifyDB.Score)
	}
	if matchModifyDB.RouteScore != nil {
		builder = builder.
			Set("pickup_score", matchModifyDB.PickupScore).
			Set("delivery_score", matchModifyDB.DeliveryScore).
			Set("route_score", matchModifyDB.RouteScore).
			Set("capacity_score", matchModifyDB.CapacityScore).
			Set("date_score", matchModifyDB.DateScore).
			Set("vehicle_score", matchModifyDB.VehicleScore)
	}
	if matchModifyDB.Reasons != nil {
		builder = builder.Set("reasons", matchModifyDB.Reasons)
	}
	if matchModifyDB.Status != nil {
		builder = builder.Set("status", matchModifyDB.Status)
	}
	if matchModifyDB.ExpiresAt != nil {
		builder = builder.Set("expires_at", matchModifyDB.ExpiresAt)
	}
	if matchModifyDB.ShipperViewedAt != nil {
		builder = builder.Set("shipper_viewed_at", matchModifyDB.ShipperViewedAt)
	}
	if matchModifyDB.CarrierViewedAt != nil {
		builder = builder.Set("carrier_viewed_at", matchModifyDB.CarrierViewedAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	query, args, err := builder.
		Where(sq.Eq{"id": matchModifyDB.ID}).
		Suffix("RETURNING " + strings.Join(matchColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected match repository update error: %w", err)
	}

	matchDB, err := scanMatch(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, match.ErrMatchNotFound
		}
		return nil, fmt.Errorf("unexpected match repository update error: %w", err)
	}

	return ToDomain(matchDB), nil
}

// ExpireOutdated помечает истекшими матчи, по которым стороны так и не договорились.
func (r *Repository) ExpireOutdated(ctx context.Context, now time.Time) (int64, error) {
	query, args, err := qb.
		Update("matches").
		Set("status", entities.MatchExpired.String()).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"status": expirableStatuses}).
		Where(sq.Lt{"expires_at": now}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository expire error: %w", err)
	}

	result, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("unexpected match repository expire error: %w", err)
	}
	return result.RowsAffected(), nil
}

// GetLatestMatchedShipmentCursor нулевой курсор, если совпадений еще нет.
func (r *Repository) GetLatestMatchedShipmentCursor(ctx context.Context) (entities.SweepCursor, error) {
	query := `
		SELECT s.created_at, s.id
		FROM shipments s
		WHERE EXISTS (SELECT 1 FROM matches m WHERE m.shipment_id = s.id)
		ORDER BY s.created_at DESC, s.id COLLATE "C" DESC
		LIMIT 1
	`

	var cursor entities.SweepCursor
	err := r.querier.QueryRow(ctx, query).Scan(&cursor.CreatedAt, &cursor.ShipmentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entities.SweepCursor{}, nil
		}
		return entities.SweepCursor{}, fmt.Errorf("unexpected match repository get latest matched shipment error: %w", err)
	}

	cursor.CreatedAt = cursor.CreatedAt.UTC()
	return cursor, nil
}

func scanMatch(row pgx.Row) (*MatchDB, error) {
	var m MatchDB
	err := row.Scan(
		&m.ID,
		&m.ShipmentID,
		&m.TripID,
		&m.Score,
		&m.PickupScore,
		&m.DeliveryScore,
		&m.RouteScore,
		&m.CapacityScore,
		&m.DateScore,
		&m.VehicleScore,
		&m.Reasons,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.ExpiresAt,
		&m.ShipperViewedAt,
		&m.CarrierViewedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMatches(rows pgx.Rows) ([]entities.Match, error) {
	defer rows.Close()

	matches := []entities.Match{}
	for rows.Next() {
		matchDB, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *ToDomain(matchDB))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
