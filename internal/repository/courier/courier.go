package courier

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/courier"
)

const courierColumns = `id, account_id, name, phone, status, current_lat, current_lon,
	verification_status, is_available_for_delivery, is_suspended,
	suspended_at, suspended_by, suspension_reason, commission_rate,
	active_deliveries, total_deliveries, total_earnings, created_at, updated_at, version`

// eligibleForMatching - курьер доступен, подтверждён и не заблокирован.
var eligibleForMatching = sq.Eq{
	"status":                    entities.CourierAvailable.String(),
	"is_available_for_delivery": true,
	"is_suspended":              false,
	"verification_status":       entities.VerificationApproved.String(),
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierEntity entities.Courier) (*entities.Courier, error) {
	courierModel := FromDomain(&courierEntity)
	query := `INSERT INTO courier_profiles (
			id, account_id, name, phone, status, current_lat, current_lon,
			verification_status, is_available_for_delivery, commission_rate, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING ` + courierColumns

	created, err := scanCourier(r.querier.QueryRow(
		ctx,
		query,
		courierModel.ID,
		courierModel.AccountID,
		courierModel.Name,
		courierModel.Phone,
		courierModel.Status,
		courierModel.CurrentLat,
		courierModel.CurrentLon,
		courierModel.VerificationStatus,
		courierModel.IsAvailableForDelivery,
		courierModel.CommissionRate,
		courierModel.CreatedAt,
	))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, courier.ErrConflict
		}
		return nil, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return ToDomain(created), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM courier_profiles
		WHERE id = $1`

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository getbyid error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// Update применяет непустые поля, только если версия профиля не изменилась.
func (r *Repository) Update(ctx context.Context, update entities.CourierUpdate) (*entities.Courier, error) {
	builder := repository.QB.
		Update("courier_profiles").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("NOW()"))

	// опциональные поля
	if update.Status != nil {
		builder = builder.Set("status", update.Status.String())
	}
	if update.Location != nil {
		builder = builder.
			Set("current_lat", update.Location.Lat).
			Set("current_lon", update.Location.Lon)
	}
	if update.IsAvailableForDelivery != nil {
		builder = builder.Set("is_available_for_delivery", *update.IsAvailableForDelivery)
	}
	if update.VerificationStatus != nil {
		builder = builder.Set("verification_status", update.VerificationStatus.String())
	}
	if update.CommissionRate != nil {
		builder = builder.Set("commission_rate", *update.CommissionRate)
	}
	if update.ActiveDeliveries != nil {
		builder = builder.Set("active_deliveries", update.ActiveDeliveries)
	}
	if s := update.Suspension; s != nil {
		builder = builder.
			Set("is_suspended", s.Suspended).
			Set("suspended_at", s.At).
			Set("suspended_by", s.By).
			Set("suspension_reason", s.Reason)
	}

	query, args, err := builder.
		Where(sq.Eq{
			"id":      update.ID,
			"version": update.Version,
		}).
		Suffix("RETURNING " + courierColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	courierModel, err := scanCourier(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, courier.ErrConcurrentModification
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, courier.ErrInvalidCommissionRate
		}
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(courierModel), nil
}

// FindAvailable возвращает подходящих для назначения курьеров.
// С Bound - всех внутри прямоугольника (точная дистанция считается выше),
// без Bound - не более Limit с наименьшим числом активных доставок.
func (r *Repository) FindAvailable(ctx context.Context, search entities.CourierSearch) ([]entities.Courier, error) {
	builder := repository.QB.
		Select(courierColumns).
		From("courier_profiles").
		Where(eligibleForMatching)

	if b := search.Bound; b != nil {
		builder = builder.
			Where(sq.NotEq{"current_lat": nil, "current_lon": nil}).
			Where("current_lat BETWEEN ? AND ?", b.Min.Lat(), b.Max.Lat()).
			Where("current_lon BETWEEN ? AND ?", b.Min.Lon(), b.Max.Lon()).
			OrderBy("id")
	} else {
		builder = builder.OrderBy("cardinality(active_deliveries)", "id")
		if search.Limit > 0 {
			builder = builder.Limit(uint64(search.Limit))
		}
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
	}
	defer rows.Close()

	courierModels := make([]CourierDB, 0, 8)
	for rows.Next() {
		courierModel, err := scanCourier(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
		}
		courierModels = append(courierModels, *courierModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository find available error: %w", err)
	}

	return ToDomainList(courierModels), nil
}

// RecomputeStatistics пересчитывает total_deliveries и total_earnings по доставленным заказам.
// Версия профиля не меняется: статистика не участвует в условных обновлениях.
func (r *Repository) RecomputeStatistics(ctx context.Context, at time.Time) (int64, error) {
	query := `UPDATE courier_profiles AS c
		SET total_deliveries = s.deliveries,
			total_earnings = s.earnings,
			updated_at = $1
		FROM (
			SELECT cp.id,
				COUNT(o.id) AS deliveries,
				COALESCE(ROUND(SUM(o.delivery_fee * (100 - cp.commission_rate) / 100), 2), 0) AS earnings
			FROM courier_profiles cp
			LEFT JOIN orders o ON o.courier_id = cp.id AND o.status = 'delivered'
			GROUP BY cp.id
		) AS s
		WHERE c.id = s.id
			AND (c.total_deliveries <> s.deliveries OR c.total_earnings <> s.earnings)`

	tag, err := r.querier.Exec(ctx, query, at)
	if err != nil {
		return 0, fmt.Errorf("unexpected courier repository recompute statistics error: %w", err)
	}

	return tag.RowsAffected(), nil
}

func scanCourier(row pgx.Row) (*CourierDB, error) {
	var c CourierDB
	err := row.Scan(
		&c.ID,
		&c.AccountID,
		&c.Name,
		&c.Phone,
		&c.Status,
		&c.CurrentLat,
		&c.CurrentLon,
		&c.VerificationStatus,
		&c.IsAvailableForDelivery,
		&c.IsSuspended,
		&c.SuspendedAt,
		&c.SuspendedBy,
		&c.SuspensionReason,
		&c.CommissionRate,
		&c.ActiveDeliveries,
		&c.TotalDeliveries,
		&c.TotalEarnings,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.Version,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
