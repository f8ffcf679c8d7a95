package payment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"marketplace/internal/entities"
	"marketplace/internal/events"
)

const failureReasonNoTransaction = "transaction id is required for electronic payment"

type Payment struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, publisher EventPublisher, txManager TxManager) *Payment {
	return &Payment{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// CreatePayment идемпотентен по заказу: если активный платёж уже есть, он возвращается без изменений.
func (s *Payment) CreatePayment(ctx context.Context, newPayment entities.NewPayment) (*entities.Payment, error) {
	if newPayment.Method == "" {
		newPayment.Method = entities.DefaultPaymentMethod
	}
	if err := validateNewPayment(&newPayment); err != nil {
		return nil, err
	}

	var result *entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		result, err = s.insertPending(ctx, newPayment)
		return err
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Payment) GetPaymentByOrderID(ctx context.Context, orderID string) (*entities.Payment, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}

	payment, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return payment, nil
}

// ProcessPayment проводит платёж заказа. Электронный платёж без transaction id
// фиксируется как failed, и вызывающему возвращается ErrPaymentFailed.
func (s *Payment) ProcessPayment(ctx context.Context, req entities.ProcessPaymentRequest) (*entities.Payment, error) {
	if err := validateProcessRequest(&req); err != nil {
		return nil, err
	}

	var (
		result *entities.Payment
		failed bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByOrderID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}

		if !canProcess(req.Actor, current) {
			return ErrForbidden
		}

		// повторная попытка после неудачи открывает новый платёж на ту же сумму
		if current.Status == entities.PaymentFailed {
			current, err = s.insertPending(ctx, entities.NewPayment{
				OrderID:    current.OrderID,
				CustomerID: current.CustomerID,
				StoreID:    current.StoreID,
				Amount:     current.Amount,
				Method:     current.Method,
			})
			if err != nil {
				return err
			}
		}

		if current.Status != entities.PaymentPending {
			return fmt.Errorf("%w: status is %s", ErrNotPending, current.Status)
		}
		if !req.Amount.Equal(current.Amount) {
			return fmt.Errorf("%w: expected %s", ErrAmountMismatch, current.Amount.StringFixed(2))
		}

		method := current.Method
		if req.Method != "" {
			method = req.Method
		}

		processing, err := s.repository.Transition(ctx, entities.PaymentTransition{
			ID:          current.ID,
			From:        entities.PaymentPending,
			To:          entities.PaymentProcessing,
			Version:     current.Version,
			At:          s.now(),
			Method:      &method,
			ProcessedBy: &req.Actor.ID,
		})
		if err != nil {
			return fmt.Errorf("mark payment processing: %w", err)
		}

		published := []events.Event{
			events.PaymentProcessed{PaymentDetails: events.NewPaymentDetails(processing)},
		}
		result = processing

		if method.IsElectronic() {
			next := entities.PaymentTransition{
				ID:      processing.ID,
				From:    entities.PaymentProcessing,
				Version: processing.Version,
				At:      s.now(),
			}

			if req.TransactionID != nil && strings.TrimSpace(*req.TransactionID) != "" {
				transactionID := strings.TrimSpace(*req.TransactionID)
				next.To = entities.PaymentCompleted
				next.TransactionID = &transactionID
			} else {
				reason := failureReasonNoTransaction
				next.To = entities.PaymentFailed
				next.FailureReason = &reason
				failed = true
			}

			result, err = s.repository.Transition(ctx, next)
			if err != nil {
				return fmt.Errorf("finish electronic payment: %w", err)
			}

			if failed {
				published = append(published, events.PaymentFailed{
					PaymentDetails: events.NewPaymentDetails(result),
					Reason:         failureReasonNoTransaction,
				})
			} else {
				published = append(published, events.PaymentCompleted{
					PaymentDetails: events.NewPaymentDetails(result),
				})
			}
		}

		if err := s.publisher.Publish(ctx, published...); err != nil {
			return fmt.Errorf("publish payment events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if failed {
		return result, ErrPaymentFailed
	}
	return result, nil
}

// ConfirmCashPaymentByOrderID завершает наличный платёж после доставки.
func (s *Payment) ConfirmCashPaymentByOrderID(ctx context.Context, orderID, confirmedBy string) (*entities.Payment, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if strings.TrimSpace(confirmedBy) == "" {
		return nil, ErrInvalidActor
	}

	var result *entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}

		if current.Method != entities.PaymentCash {
			return fmt.Errorf("%w: method is %s", ErrNotCashPayment, current.Method)
		}
		if current.Status != entities.PaymentPending && current.Status != entities.PaymentProcessing {
			return fmt.Errorf("%w: status is %s", ErrNotConfirmable, current.Status)
		}

		result, err = s.repository.Transition(ctx, entities.PaymentTransition{
			ID:          current.ID,
			From:        current.Status,
			To:          entities.PaymentCompleted,
			Version:     current.Version,
			At:          s.now(),
			ConfirmedBy: &confirmedBy,
		})
		if err != nil {
			return fmt.Errorf("confirm cash payment: %w", err)
		}

		err = s.publisher.Publish(ctx, events.PaymentCompleted{
			PaymentDetails: events.NewPaymentDetails(result),
			ConfirmedBy:    &confirmedBy,
		})
		if err != nil {
			return fmt.Errorf("publish payment completed: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (s *Payment) RefundPayment(ctx context.Context, req entities.RefundRequest) (*entities.Payment, error) {
	if err := validateRefundRequest(&req); err != nil {
		return nil, err
	}
	if !req.Actor.IsAdmin() {
		return nil, ErrForbidden
	}

	reason := strings.TrimSpace(req.Reason)

	var result *entities.Payment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByOrderID(ctx, req.OrderID)
		if err != nil {
			return fmt.Errorf("get payment: %w", err)
		}

		switch current.Status {
		case entities.PaymentCompleted:
		case entities.PaymentRefunded:
			return ErrAlreadyRefunded
		case entities.PaymentPending, entities.PaymentProcessing, entities.PaymentFailed:
			return fmt.Errorf("%w: status is %s", ErrNotRefundable, current.Status)
		default:
			return fmt.Errorf("%w: status is %s", ErrNotRefundable, current.Status)
		}

		if req.Amount.GreaterThan(current.Amount) {
			return fmt.Errorf("%w: %s > %s", ErrRefundExceedsAmount,
				req.Amount.StringFixed(2), current.Amount.StringFixed(2))
		}

		result, err = s.repository.Transition(ctx, entities.PaymentTransition{
			ID:           current.ID,
			From:         entities.PaymentCompleted,
			To:           entities.PaymentRefunded,
			Version:      current.Version,
			At:           s.now(),
			RefundAmount: &req.Amount,
			RefundReason: &reason,
			RefundedBy:   &req.Actor.ID,
		})
		if err != nil {
			return fmt.Errorf("refund payment: %w", err)
		}

		err = s.publisher.Publish(ctx, events.PaymentRefunded{
			PaymentDetails: events.NewPaymentDetails(result),
			RefundAmount:   req.Amount,
			RefundedBy:     req.Actor.ID,
			Reason:         reason,
		})
		if err != nil {
			return fmt.Errorf("publish payment refunded: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// insertPending создаёт pending-платёж или возвращает уже существующий активный.
func (s *Payment) insertPending(ctx context.Context, newPayment entities.NewPayment) (*entities.Payment, error) {
	now := s.now()
	created, err := s.repository.Create(ctx, entities.Payment{
		ID:         uuid.NewString(),
		OrderID:    newPayment.OrderID,
		CustomerID: newPayment.CustomerID,
		StoreID:    newPayment.StoreID,
		Amount:     newPayment.Amount,
		Method:     newPayment.Method,
		Status:     entities.PaymentPending,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, ErrPaymentExists) {
		return nil, fmt.Errorf("create payment: %w", err)
	}

	existing, err := s.repository.GetByOrderID(ctx, newPayment.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get existing payment: %w", err)
	}
	return existing, nil
}

func canProcess(actor entities.Actor, payment *entities.Payment) bool {
	switch actor.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCustomer:
		return actor.ID == payment.CustomerID
	case entities.RoleStore, entities.RoleCourier:
		return false
	}
	return false
}
