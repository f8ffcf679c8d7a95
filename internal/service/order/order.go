package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type Order struct {
	repository Repository
	publisher  EventPublisher
	txManager  TxManager
	now        func() time.Time
}

func New(repository Repository, publisher EventPublisher, txManager TxManager) *Order {
	return &Order{
		repository: repository,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (s *Order) CreateOrder(ctx context.Context, newOrder entities.NewOrder) (*entities.Order, error) {
	if err := validateNewOrder(&newOrder); err != nil {
		return nil, err
	}

	now := s.now()
	id := uuid.New()

	subtotal := decimal.Zero
	for _, item := range newOrder.Items {
		subtotal = subtotal.Add(item.Total())
	}

	orderEntity := entities.Order{
		ID:              id.String(),
		OrderNumber:     newOrderNumber(id, now),
		CustomerID:      newOrder.CustomerID,
		StoreID:         newOrder.StoreID,
		Items:           newOrder.Items,
		DeliveryAddress: newOrder.DeliveryAddress,
		DeliveryFee:     newOrder.DeliveryFee,
		Subtotal:        subtotal,
		Total:           subtotal.Add(newOrder.DeliveryFee),
		Status:          entities.OrderPending,
		PaymentMethod:   newOrder.PaymentMethod,
		Notes:           newOrder.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
		Version:         1,
	}

	var created *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = s.repository.Create(ctx, orderEntity)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		err = s.publisher.Publish(ctx, events.OrderCreated{
			OrderID:       created.ID,
			CustomerID:    created.CustomerID,
			StoreID:       created.StoreID,
			OrderNumber:   created.OrderNumber,
			Total:         created.Total,
			PaymentMethod: created.PaymentMethod,
		})
		if err != nil {
			return fmt.Errorf("publish order created: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

func (s *Order) GetOrder(ctx context.Context, id string) (*entities.Order, error) {
	if !isValidID(id) {
		return nil, ErrInvalidOrderID
	}

	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// UpdateStatus переводит заказ в следующий статус. Переход применяется
// условным обновлением: проигравший гонку получает ErrConcurrentModification.
func (s *Order) UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Order, error) {
	if !isValidID(change.OrderID) {
		return nil, ErrInvalidOrderID
	}
	if !change.Status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if !change.Actor.Role.IsValid() || strings.TrimSpace(change.Actor.ID) == "" {
		return nil, ErrInvalidActor
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, change.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if err := authorize(change.Actor, current, change.Status); err != nil {
			return err
		}

		if !current.Status.CanTransitionTo(change.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, change.Status)
		}

		if change.Status == entities.OrderPickedUp && current.CourierID == nil {
			return ErrCourierRequired
		}

		transition := entities.OrderTransition{
			ID:      current.ID,
			From:    current.Status,
			To:      change.Status,
			Version: current.Version,
			At:      s.now(),
		}
		if change.Status == entities.OrderCancelled {
			reason := change.Reason
			transition.CancellationReason = &reason
		}

		updated, err = s.repository.UpdateStatus(ctx, transition)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}

		err = s.publisher.Publish(ctx, statusEvents(current.Status, updated, change)...)
		if err != nil {
			return fmt.Errorf("publish status events: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Order) CancelOrder(ctx context.Context, orderID string, actor entities.Actor, reason string) (*entities.Order, error) {
	return s.UpdateStatus(ctx, entities.StatusChange{
		OrderID: orderID,
		Status:  entities.OrderCancelled,
		Actor:   actor,
		Reason:  strings.TrimSpace(reason),
	})
}

// AttachCourier закрепляет курьера за готовым заказом. Вызывается из подбора курьеров,
// событие о назначении публикует вызывающая сторона.
func (s *Order) AttachCourier(ctx context.Context, orderID, courierID string) (*entities.Order, error) {
	if !isValidID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if !isValidID(courierID) {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status != entities.OrderReady {
			return fmt.Errorf("%w: status is %s", ErrOrderNotReady, current.Status)
		}
		if current.CourierID != nil {
			return ErrOrderAlreadyAssigned
		}

		updated, err = s.repository.AttachCourier(ctx, orderID, courierID, current.Version)
		if err != nil {
			return fmt.Errorf("attach courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func statusEvents(oldStatus entities.OrderStatus, updated *entities.Order, change entities.StatusChange) []events.Event {
	var notes *string
	if n := strings.TrimSpace(change.Notes); n != "" {
		notes = &n
	}

	result := []events.Event{
		events.OrderStatusUpdated{
			OrderID:     updated.ID,
			CustomerID:  updated.CustomerID,
			StoreID:     updated.StoreID,
			OrderNumber: updated.OrderNumber,
			OldStatus:   oldStatus,
			NewStatus:   updated.Status,
			UpdatedBy:   events.NewActorRef(change.Actor),
			Notes:       notes,
		},
	}

	if updated.Status == entities.OrderCancelled {
		result = append(result, events.OrderCancelled{
			OrderID:     updated.ID,
			CustomerID:  updated.CustomerID,
			StoreID:     updated.StoreID,
			OrderNumber: updated.OrderNumber,
			Reason:      change.Reason,
		})
	}

	return result
}

// newOrderNumber - ORD-YYYYMMDD-XXXXXXXX, суффикс из первых символов id.
func newOrderNumber(id uuid.UUID, now time.Time) string {
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(id.String()[:8]))
}
