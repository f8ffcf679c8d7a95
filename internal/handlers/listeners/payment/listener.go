package payment

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/events"
	"marketplace/internal/pkg/errs"
	"marketplace/pkg/eventbus"
	"marketplace/pkg/logger"
)

// Listener заводит платеж на каждый новый заказ и подтверждает наличную оплату при доставке.
type Listener struct {
	service Service
	log     handlerLogger
}

func New(log handlerLogger, service Service) *Listener {
	return &Listener{
		service: service,
		log:     log,
	}
}

func (l *Listener) Register(bus *eventbus.Bus) {
	eventbus.Subscribe(bus, "payment.create", l.OrderCreated)
	eventbus.Subscribe(bus, "payment.confirm_cash", l.OrderStatusUpdated)
}

func (l *Listener) OrderCreated(ctx context.Context, event events.OrderCreated) error {
	method := entities.PaymentCash
	if event.PaymentMethod != nil {
		method = *event.PaymentMethod
	}

	payment, err := l.service.CreatePayment(ctx, entities.NewPayment{
		OrderID:    event.OrderID,
		CustomerID: event.CustomerID,
		StoreID:    event.StoreID,
		Amount:     event.Total,
		Method:     method,
	})
	if err != nil {
		return l.handleError(err, "create payment for order", event.OrderID)
	}

	l.log.Info("payment created",
		logger.NewField("order", event.OrderID),
		logger.NewField("payment", payment.ID),
		logger.NewField("method", payment.Method),
	)
	return nil
}

func (l *Listener) OrderStatusUpdated(ctx context.Context, event events.OrderStatusUpdated) error {
	if event.NewStatus != entities.OrderDelivered {
		return nil
	}

	// наличные принял тот, кто отметил доставку (курьер или администратор)
	confirmedBy := event.UpdatedBy.ID
	if confirmedBy == "" {
		confirmedBy = entities.SystemActor.ID
	}

	payment, err := l.service.ConfirmCashPaymentByOrderID(ctx, event.OrderID, confirmedBy)
	if err != nil {
		return l.handleError(err, "confirm cash payment", event.OrderID)
	}

	l.log.Info("cash payment confirmed",
		logger.NewField("order", event.OrderID),
		logger.NewField("payment", payment.ID),
		logger.NewField("confirmed_by", confirmedBy),
	)
	return nil
}

// handleError гасит штатные исходы (конфликт состояния, отсутствие платежа) с предупреждением,
// остальные ошибки отдает шине.
func (l *Listener) handleError(err error, msg, orderID string) error {
	if errs.IsExpected(err) {
		l.log.Warn(msg+" skipped",
			logger.NewField("order", orderID),
			logger.NewField("error", err),
		)
		return nil
	}
	return err
}
