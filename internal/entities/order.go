package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderPreparing  OrderStatus = "preparing"
	OrderReady      OrderStatus = "ready"
	OrderPickedUp   OrderStatus = "picked_up"
	OrderDelivering OrderStatus = "delivering"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderPreparing, OrderReady,
		OrderPickedUp, OrderDelivering, OrderDelivered, OrderCancelled:
		return true
	default:
		return false
	}
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

// Next возвращает единственный допустимый следующий статус (не считая отмены).
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case OrderPending:
		return OrderConfirmed, true
	case OrderConfirmed:
		return OrderPreparing, true
	case OrderPreparing:
		return OrderReady, true
	case OrderReady:
		return OrderPickedUp, true
	case OrderPickedUp:
		return OrderDelivering, true
	case OrderDelivering:
		return OrderDelivered, true
	case OrderDelivered, OrderCancelled:
		return "", false
	default:
		return "", false
	}
}

// CanTransitionTo - переход только на следующий статус или в отмену из нетерминального.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	if target == OrderCancelled {
		return s.IsValid() && !s.IsTerminal()
	}
	next, ok := s.Next()
	return ok && next == target
}

// IsBefore сообщает, что статус s в жизненном цикле раньше other. Отмена вне порядка.
func (s OrderStatus) IsBefore(other OrderStatus) bool {
	for cur, ok := s, true; ok; cur, ok = cur.Next() {
		if cur == other {
			return cur != s
		}
	}
	return false
}

type OrderItem struct {
	ProductID string
	Quantity  int
	UnitPrice decimal.Decimal
}

func (i OrderItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

type DeliveryAddress struct {
	Street     string
	City       string
	PostalCode string
	Location   *Location
}

type Order struct {
	ID                 string
	OrderNumber        string
	CustomerID         string
	StoreID            string
	CourierID          *string
	Items              []OrderItem
	DeliveryAddress    DeliveryAddress
	DeliveryFee        decimal.Decimal
	Subtotal           decimal.Decimal
	Total              decimal.Decimal
	Status             OrderStatus
	PaymentMethod      *PaymentMethod
	Notes              string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ConfirmedAt        *time.Time
	ActualDeliveryTime *time.Time
	CancelledAt        *time.Time
	Version            int64
}

type NewOrder struct {
	CustomerID      string
	StoreID         string
	Items           []OrderItem
	DeliveryAddress DeliveryAddress
	DeliveryFee     decimal.Decimal
	PaymentMethod   *PaymentMethod
	Notes           string
}

type StatusChange struct {
	OrderID string
	Status  OrderStatus
	Actor   Actor
	Notes   string
	Reason  string
}

// OrderTransition - условное обновление статуса: применяется, только если
// в хранилище всё ещё From и Version.
type OrderTransition struct {
	ID                 string
	From               OrderStatus
	To                 OrderStatus
	Version            int64
	At                 time.Time
	CancellationReason *string
}
