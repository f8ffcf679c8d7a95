package notification

import (
	"context"
	"errors"

	"marketplace/internal/entities"
	"marketplace/internal/events"
	"marketplace/internal/pkg/errs"
	"marketplace/pkg/eventbus"
	"marketplace/pkg/logger"
)

// Listener превращает доменные события в уведомления участникам заказа.
type Listener struct {
	notifier Notifier
	log      handlerLogger
}

func New(log handlerLogger, notifier Notifier) *Listener {
	return &Listener{
		notifier: notifier,
		log:      log,
	}
}

func (l *Listener) Register(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, "notification.order_created", l.OrderCreated)
	eventbus.Subscribe(bus, "notification.order_status_updated", l.OrderStatusUpdated)
	eventbus.Subscribe(bus, "notification.order_cancelled", l.OrderCancelled)
	eventbus.Subscribe(bus, "notification.order_assigned", l.OrderAssigned)
	eventbus.Subscribe(bus, "notification.payment_processed", l.PaymentProcessed)
	eventbus.Subscribe(bus, "notification.payment_completed", l.PaymentCompleted)
	eventbus.Subscribe(bus, "notification.payment_failed", l.PaymentFailed)
	eventbus.Subscribe(bus, "notification.payment_refunded", l.PaymentRefunded)
	eventbus.Subscribe(bus, "notification.courier_suspended", l.CourierSuspended)
	eventbus.Subscribe(bus, "notification.courier_unsuspended", l.CourierUnsuspended)
}

func (l *Listener) OrderCreated(ctx context.Context, event events.OrderCreated) error {
	return l.notify(ctx, event, orderCreatedNotification(event))
}

func (l *Listener) OrderStatusUpdated(ctx context.Context, event events.OrderStatusUpdated) error {
	return l.notify(ctx, event, orderStatusNotification(event))
}

func (l *Listener) OrderCancelled(ctx context.Context, event events.OrderCancelled) error {
	return l.notify(ctx, event, orderCancelledNotification(event))
}

func (l *Listener) OrderAssigned(ctx context.Context, event events.OrderAssignedToCourier) error {
	return l.notify(ctx, event, orderAssignedNotification(event))
}

func (l *Listener) PaymentProcessed(ctx context.Context, event events.PaymentProcessed) error {
	return l.notify(ctx, event, paymentProcessedNotification(event))
}

func (l *Listener) PaymentCompleted(ctx context.Context, event events.PaymentCompleted) error {
	return l.notify(ctx, event, paymentCompletedNotification(event))
}

func (l *Listener) PaymentFailed(ctx context.Context, event events.PaymentFailed) error {
	return l.notify(ctx, event, paymentFailedNotification(event))
}

func (l *Listener) PaymentRefunded(ctx context.Context, event events.PaymentRefunded) error {
	return l.notify(ctx, event, paymentRefundedNotification(event))
}

func (l *Listener) CourierSuspended(ctx context.Context, event events.CourierSuspended) error {
	return l.notify(ctx, event, courierSuspendedNotification(event))
}

func (l *Listener) CourierUnsuspended(ctx context.Context, event events.CourierUnsuspended) error {
	return l.notify(ctx, event, courierUnsuspendedNotification(event))
}

func (l *Listener) notify(ctx context.Context, event events.Event, n entities.Notification) error {
	err := l.notifier.Notify(ctx, n)
	if err == nil {
		return nil
	}

	// ошибки получателей разбираются по отдельности: неизвестный получатель
	// штатен для удаленных профилей, сбой доставки другому уходит шине
	var failed []error
	for _, recipientErr := range recipientErrors(err) {
		if !errs.IsExpected(recipientErr) {
			failed = append(failed, recipientErr)
			continue
		}
		l.log.Warn("notification partially skipped",
			logger.NewField("topic", event.Topic()),
			logger.NewField("key", event.Key()),
			logger.NewField("error", recipientErr),
		)
	}
	return errors.Join(failed...)
}

func recipientErrors(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
