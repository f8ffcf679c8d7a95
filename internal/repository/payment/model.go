package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentDB struct {
	ID            string
	OrderID       string
	CustomerID    string
	StoreID       string
	Amount        decimal.Decimal
	Method        string
	Status        string
	TransactionID *string
	ConfirmedBy   *string
	ProcessedBy   *string
	FailureReason *string
	RefundAmount  decimal.NullDecimal
	RefundReason  *string
	RefundedBy    *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
	CompletedAt   *time.Time
	RefundedAt    *time.Time
	Version       int64
}
