package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCard   PaymentMethod = "card"
	PaymentWallet PaymentMethod = "wallet"
)

const DefaultPaymentMethod = PaymentCash

func (m PaymentMethod) String() string {
	return string(m)
}

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentWallet:
		return true
	default:
		return false
	}
}

// IsElectronic - для завершения нужен внешний transaction id.
func (m PaymentMethod) IsElectronic() bool {
	switch m {
	case PaymentCard, PaymentWallet:
		return true
	case PaymentCash:
		return false
	default:
		return false
	}
}

type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "pending"
	PaymentProcessing PaymentStatus = "processing"
	PaymentCompleted  PaymentStatus = "completed"
	PaymentFailed     PaymentStatus = "failed"
	PaymentRefunded   PaymentStatus = "refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	switch s {
	case PaymentPending, PaymentProcessing, PaymentCompleted, PaymentFailed, PaymentRefunded:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) CanTransitionTo(target PaymentStatus) bool {
	switch s {
	case PaymentPending:
		return target == PaymentProcessing || target == PaymentCompleted || target == PaymentFailed
	case PaymentProcessing:
		return target == PaymentCompleted || target == PaymentFailed
	case PaymentCompleted:
		return target == PaymentRefunded
	case PaymentFailed, PaymentRefunded:
		return false
	default:
		return false
	}
}

type Payment struct {
	ID            string
	OrderID       string
	CustomerID    string
	StoreID       string
	Amount        decimal.Decimal
	Method        PaymentMethod
	Status        PaymentStatus
	TransactionID *string
	ConfirmedBy   *string
	ProcessedBy   *string
	FailureReason *string
	RefundAmount  *decimal.Decimal
	RefundReason  *string
	RefundedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
	RefundedAt    *time.Time
	Version       int64
}

type NewPayment struct {
	OrderID    string
	CustomerID string
	StoreID    string
	Amount     decimal.Decimal
	Method     PaymentMethod
}

type ProcessPaymentRequest struct {
	OrderID       string
	Amount        decimal.Decimal
	Method        PaymentMethod
	TransactionID *string
	Actor         Actor
}

type RefundRequest struct {
	OrderID string
	Amount  decimal.Decimal
	Reason  string
	Actor   Actor
}

// PaymentTransition - условное обновление платежа по (From, Version).
// Не-nil поля записываются вместе со сменой статуса.
type PaymentTransition struct {
	ID            string
	From          PaymentStatus
	To            PaymentStatus
	Version       int64
	At            time.Time
	Method        *PaymentMethod
	TransactionID *string
	ConfirmedBy   *string
	ProcessedBy   *string
	FailureReason *string
	RefundAmount  *decimal.Decimal
	RefundReason  *string
	RefundedBy    *string
}
