package courier

import (
	"context"
	"fmt"

	"marketplace/internal/entities"
	"marketplace/internal/events"
	"marketplace/internal/pkg/errs"
	"marketplace/pkg/eventbus"
	"marketplace/pkg/logger"
)

// Listener освобождает курьера, когда его заказ доставлен или отменен.
type Listener struct {
	orders   OrderService
	couriers CourierService
	log      handlerLogger
}

func New(log handlerLogger, orders OrderService, couriers CourierService) *Listener {
	return &Listener{
		orders:   orders,
		couriers: couriers,
		log:      log,
	}
}

func (l *Listener) Register(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, "courier.release_delivered", l.OrderStatusUpdated)
	eventbus.Subscribe(bus, "courier.release_cancelled", l.OrderCancelled)
}

func (l *Listener) OrderStatusUpdated(ctx context.Context, event events.OrderStatusUpdated) error {
	if event.NewStatus != entities.OrderDelivered {
		return nil
	}
	return l.release(ctx, event.OrderID)
}

func (l *Listener) OrderCancelled(ctx context.Context, event events.OrderCancelled) error {
	return l.release(ctx, event.OrderID)
}

func (l *Listener) release(ctx context.Context, orderID string) error {
	order, err := l.orders.GetOrder(ctx, orderID)
	if err != nil {
		return l.handleError(fmt.Errorf("get order: %w", err), orderID)
	}

	// заказ отменили до назначения курьера
	if order.CourierID == nil {
		return nil
	}

	if err := l.couriers.ReleaseOrder(ctx, *order.CourierID, orderID); err != nil {
		return l.handleError(fmt.Errorf("release order: %w", err), orderID)
	}

	l.log.Info("courier released",
		logger.NewField("order", orderID),
		logger.NewField("courier", *order.CourierID),
		logger.NewField("status", order.Status),
	)
	return nil
}

func (l *Listener) handleError(err error, orderID string) error {
	if errs.IsExpected(err) {
		l.log.Warn("courier release skipped",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		return nil
	}
	return err
}
