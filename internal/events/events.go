// Package events описывает доменные события. Каждое событие - тип-значение
// со своим топиком, подписка на него типизирована (см. eventbus.Subscribe).
package events

import (
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
	"marketplace/pkg/eventbus"
)

type Event = eventbus.Event

const (
	TopicOrderCreated       = "order.created"
	TopicOrderStatusUpdated = "order.status_updated"
	TopicOrderCancelled     = "order.cancelled"
	TopicOrderAssigned      = "order.assigned.to.courier"
	TopicPaymentProcessed   = "payment.processed"
	TopicPaymentCompleted   = "payment.completed"
	TopicPaymentFailed      = "payment.failed"
	TopicPaymentRefunded    = "payment.refunded"
	TopicCourierSuspended   = "courier.suspended"
	TopicCourierUnsuspended = "courier.unsuspended"
)

type ActorRef struct {
	ID   string             `json:"id"`
	Role entities.ActorRole `json:"role"`
}

func NewActorRef(actor entities.Actor) ActorRef {
	return ActorRef{ID: actor.ID, Role: actor.Role}
}

type OrderCreated struct {
	OrderID       string                  `json:"order_id"`
	CustomerID    string                  `json:"customer_id"`
	StoreID       string                  `json:"store_id"`
	OrderNumber   string                  `json:"order_number"`
	Total         decimal.Decimal         `json:"total"`
	PaymentMethod *entities.PaymentMethod `json:"payment_method,omitempty"`
}

func (OrderCreated) Topic() string { return TopicOrderCreated }
func (e OrderCreated) Key() string { return e.OrderID }

type OrderStatusUpdated struct {
	OrderID     string               `json:"order_id"`
	CustomerID  string               `json:"customer_id"`
	StoreID     string               `json:"store_id"`
	OrderNumber string               `json:"order_number"`
	OldStatus   entities.OrderStatus `json:"old_status"`
	NewStatus   entities.OrderStatus `json:"new_status"`
	UpdatedBy   ActorRef             `json:"updated_by"`
	Notes       *string              `json:"notes,omitempty"`
}

func (OrderStatusUpdated) Topic() string { return TopicOrderStatusUpdated }
func (e OrderStatusUpdated) Key() string { return e.OrderID }

type OrderCancelled struct {
	OrderID     string `json:"order_id"`
	CustomerID  string `json:"customer_id"`
	StoreID     string `json:"store_id"`
	OrderNumber string `json:"order_number"`
	Reason      string `json:"reason"`
}

func (OrderCancelled) Topic() string { return TopicOrderCancelled }
func (e OrderCancelled) Key() string { return e.OrderID }

type OrderAssignedToCourier struct {
	OrderID    string `json:"order_id"`
	CourierID  string `json:"courier_id"`
	AssignedBy string `json:"assigned_by"`
}

func (OrderAssignedToCourier) Topic() string { return TopicOrderAssigned }
func (e OrderAssignedToCourier) Key() string { return e.OrderID }

// PaymentDetails - общая часть всех payment.* событий.
type PaymentDetails struct {
	PaymentID     string                 `json:"payment_id"`
	OrderID       string                 `json:"order_id"`
	CustomerID    string                 `json:"customer_id"`
	StoreID       string                 `json:"store_id"`
	Amount        decimal.Decimal        `json:"amount"`
	PaymentMethod entities.PaymentMethod `json:"payment_method"`
	TransactionID *string                `json:"transaction_id,omitempty"`
}

func NewPaymentDetails(p *entities.Payment) PaymentDetails {
	return PaymentDetails{
		PaymentID:     p.ID,
		OrderID:       p.OrderID,
		CustomerID:    p.CustomerID,
		StoreID:       p.StoreID,
		Amount:        p.Amount,
		PaymentMethod: p.Method,
		TransactionID: p.TransactionID,
	}
}

type PaymentProcessed struct {
	PaymentDetails
}

func (PaymentProcessed) Topic() string { return TopicPaymentProcessed }
func (e PaymentProcessed) Key() string { return e.OrderID }

type PaymentCompleted struct {
	PaymentDetails
	ConfirmedBy *string `json:"confirmed_by,omitempty"`
}

func (PaymentCompleted) Topic() string { return TopicPaymentCompleted }
func (e PaymentCompleted) Key() string { return e.OrderID }

type PaymentFailed struct {
	PaymentDetails
	Reason string `json:"reason"`
}

func (PaymentFailed) Topic() string { return TopicPaymentFailed }
func (e PaymentFailed) Key() string { return e.OrderID }

type PaymentRefunded struct {
	PaymentDetails
	RefundAmount decimal.Decimal `json:"refund_amount"`
	RefundedBy   string          `json:"refunded_by"`
	Reason       string          `json:"reason"`
}

func (PaymentRefunded) Topic() string { return TopicPaymentRefunded }
func (e PaymentRefunded) Key() string { return e.OrderID }

type CourierSuspended struct {
	CourierID   string `json:"courier_id"`
	SuspendedBy string `json:"suspended_by"`
	Reason      string `json:"reason,omitempty"`
}

func (CourierSuspended) Topic() string { return TopicCourierSuspended }
func (e CourierSuspended) Key() string { return e.CourierID }

type CourierUnsuspended struct {
	CourierID     string `json:"courier_id"`
	UnsuspendedBy string `json:"unsuspended_by"`
}

func (CourierUnsuspended) Topic() string { return TopicCourierUnsuspended }
func (e CourierUnsuspended) Key() string { return e.CourierID }
