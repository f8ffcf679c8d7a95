package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/order"
)

const orderColumns = `id, order_number, customer_id, store_id, courier_id, items,
	delivery_street, delivery_city, delivery_postal_code, delivery_lat, delivery_lon,
	delivery_fee, subtotal, total, status, payment_method, notes, cancellation_reason,
	created_at, updated_at, confirmed_at, actual_delivery_time, cancelled_at, version`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	orderModel, err := FromDomain(&orderEntity)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (
			id, order_number, customer_id, store_id, items,
			delivery_street, delivery_city, delivery_postal_code, delivery_lat, delivery_lon,
			delivery_fee, subtotal, total, status, payment_method, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $17)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderModel.ID,
		orderModel.OrderNumber,
		orderModel.CustomerID,
		orderModel.StoreID,
		orderModel.Items,
		orderModel.DeliveryStreet,
		orderModel.DeliveryCity,
		orderModel.DeliveryPostalCode,
		orderModel.DeliveryLat,
		orderModel.DeliveryLon,
		orderModel.DeliveryFee,
		orderModel.Subtotal,
		orderModel.Total,
		orderModel.Status,
		orderModel.PaymentMethod,
		orderModel.Notes,
		orderModel.CreatedAt,
	)

	created, err := scanOrder(row)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, order.ErrConflict
		}
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(created)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository getbyid error: %w", err)
	}

	return ToDomain(orderModel)
}

// UpdateStatus применяет переход, только если статус и версия не изменились с момента чтения.
func (r *Repository) UpdateStatus(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error) {
	builder := repository.QB.
		Update("orders").
		Set("status", transition.To.String()).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", transition.At)

	// отметки времени жизненного цикла
	switch transition.To {
	case entities.OrderConfirmed:
		builder = builder.Set("confirmed_at", transition.At)
	case entities.OrderDelivered:
		builder = builder.Set("actual_delivery_time", transition.At)
	case entities.OrderCancelled:
		builder = builder.
			Set("cancelled_at", transition.At).
			Set("cancellation_reason", transition.CancellationReason)
	case entities.OrderPending, entities.OrderPreparing, entities.OrderReady,
		entities.OrderPickedUp, entities.OrderDelivering:
	}

	query, args, err := builder.
		Where(sq.Eq{
			"id":      transition.ID,
			"status":  transition.From.String(),
			"version": transition.Version,
		}).
		Suffix("RETURNING " + orderColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}

	return ToDomain(orderModel)
}

// AttachCourier выставляет курьера только готовому заказу без курьера той же версии.
func (r *Repository) AttachCourier(ctx context.Context, orderID, courierID string, version int64) (*entities.Order, error) {
	query := `UPDATE orders
		SET courier_id = $2,
			version = version + 1,
			updated_at = NOW()
		WHERE id = $1
			AND status = 'ready'
			AND courier_id IS NULL
			AND version = $3
		RETURNING ` + orderColumns

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, orderID, courierID, version))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrConcurrentModification
		}
		return nil, fmt.Errorf("unexpected order repository attach courier error: %w", err)
	}

	return ToDomain(orderModel)
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.OrderNumber,
		&o.CustomerID,
		&o.StoreID,
		&o.CourierID,
		&o.Items,
		&o.DeliveryStreet,
		&o.DeliveryCity,
		&o.DeliveryPostalCode,
		&o.DeliveryLat,
		&o.DeliveryLon,
		&o.DeliveryFee,
		&o.Subtotal,
		&o.Total,
		&o.Status,
		&o.PaymentMethod,
		&o.Notes,
		&o.CancellationReason,
		&o.CreatedAt,
		&o.UpdatedAt,
		&o.ConfirmedAt,
		&o.ActualDeliveryTime,
		&o.CancelledAt,
		&o.Version,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
