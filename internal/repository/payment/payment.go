package payment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
	"marketplace/internal/service/payment"
)

const paymentColumns = `id, order_id, customer_id, store_id, amount, method, status,
	transaction_id, confirmed_by, processed_by, failure_reason,
	refund_amount, refund_reason, refunded_by,
	created_at, updated_at, completed_at, refunded_at, version`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create вставляет платёж, если у заказа ещё нет активного (не failed) платежа.
// Иначе возвращает payment.ErrPaymentExists.
func (r *Repository) Create(ctx context.Context, paymentEntity entities.Payment) (*entities.Payment, error) {
	query := `INSERT INTO payments (
			id, order_id, customer_id, store_id, amount, method, status, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		ON CONFLICT (order_id) WHERE status <> 'failed' DO NOTHING
		RETURNING ` + paymentColumns

	paymentModel, err := scanPayment(r.querier.QueryRow(
		ctx,
		query,
		paymentEntity.ID,
		paymentEntity.OrderID,
		paymentEntity.CustomerID,
		paymentEntity.StoreID,
		paymentEntity.Amount,
		paymentEntity.Method.String(),
		paymentEntity.Status.String(),
		paymentEntity.CreatedAt,
	))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, payment.ErrPaymentExists
		case repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation):
			return nil, payment.ErrOrderNotFound
		case repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation):
			return nil, payment.ErrPaymentExists
		}
		return nil, fmt.Errorf("unexpected payment repository create error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

// GetByOrderID возвращает активный платёж заказа: последний не failed, иначе последний failed.
func (r *Repository) GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	query := `SELECT ` + paymentColumns + `
		FROM payments
		WHERE order_id = $1
		ORDER BY (status <> 'failed') DESC, created_at DESC
		LIMIT 1`

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, orderID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payment.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("unexpected payment repository getbyorderid error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

// Transition меняет статус, только если статус и версия не изменились с момента чтения.
func (r *Repository) Transition(ctx context.Context, transition entities.PaymentTransition) (*entities.Payment, error) {
	builder := repository.QB.
		Update("payments").
		Set("status", transition.To.String()).
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", transition.At)

	if transition.Method != nil {
		builder = builder.Set("method", transition.Method.String())
	}
	if transition.TransactionID != nil {
		builder = builder.Set("transaction_id", *transition.TransactionID)
	}
	if transition.ConfirmedBy != nil {
		builder = builder.Set("confirmed_by", *transition.ConfirmedBy)
	}
	if transition.ProcessedBy != nil {
		builder = builder.Set("processed_by", *transition.ProcessedBy)
	}
	if transition.FailureReason != nil {
		builder = builder.Set("failure_reason", *transition.FailureReason)
	}

	switch transition.To {
	case entities.PaymentCompleted:
		builder = builder.Set("completed_at", transition.At)
	case entities.PaymentRefunded:
		builder = builder.
			Set("refund_amount", transition.RefundAmount).
			Set("refund_reason", transition.RefundReason).
			Set("refunded_by", transition.RefundedBy).
			Set("refunded_at", transition.At)
	case entities.PaymentPending, entities.PaymentProcessing, entities.PaymentFailed:
	}

	query, args, err := builder.
		Where(sq.Eq{
			"id":      transition.ID,
			"status":  transition.From.String(),
			"version": transition.Version,
		}).
		Suffix("RETURNING " + paymentColumns).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected payment repository transition error: %w", err)
	}

	paymentModel, err := scanPayment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return nil, payment.ErrConcurrentModification
		case repository.IsPgErrorWithCode(err, repository.PgErrCheckViolation):
			return nil, payment.ErrRefundExceedsAmount
		}
		return nil, fmt.Errorf("unexpected payment repository transition error: %w", err)
	}

	return ToDomain(paymentModel), nil
}

func scanPayment(row pgx.Row) (*PaymentDB, error) {
	var p PaymentDB
	err := row.Scan(
		&p.ID,
		&p.OrderID,
		&p.CustomerID,
		&p.StoreID,
		&p.Amount,
		&p.Method,
		&p.Status,
		&p.TransactionID,
		&p.ConfirmedBy,
		&p.ProcessedBy,
		&p.FailureReason,
		&p.RefundAmount,
		&p.RefundReason,
		&p.RefundedBy,
		&p.CreatedAt,
		&p.UpdatedAt,
		&p.CompletedAt,
		&p.RefundedAt,
		&p.Version,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
