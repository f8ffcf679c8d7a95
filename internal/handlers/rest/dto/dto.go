// Package dto - тела запросов и ответов REST API.
package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type Address struct {
	Street     string    `json:"street"`
	City       string    `json:"city"`
	PostalCode string    `json:"postal_code"`
	Location   *Location `json:"location,omitempty"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

type OrderCreate struct {
	CustomerID      string          `json:"customer_id,omitempty"`
	StoreID         string          `json:"store_id"`
	Items           []OrderItem     `json:"items"`
	DeliveryAddress Address         `json:"delivery_address"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee"`
	PaymentMethod   *string         `json:"payment_method,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

type Order struct {
	ID                 string          `json:"id"`
	OrderNumber        string          `json:"order_number"`
	CustomerID         string          `json:"customer_id"`
	StoreID            string          `json:"store_id"`
	CourierID          *string         `json:"courier_id"`
	Items              []OrderItem     `json:"items"`
	DeliveryAddress    Address         `json:"delivery_address"`
	DeliveryFee        decimal.Decimal `json:"delivery_fee"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	Total              decimal.Decimal `json:"total"`
	Status             string          `json:"status"`
	PaymentMethod      *string         `json:"payment_method"`
	Notes              string          `json:"notes,omitempty"`
	CancellationReason *string         `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
	ConfirmedAt        *time.Time      `json:"confirmed_at,omitempty"`
	ActualDeliveryTime *time.Time      `json:"actual_delivery_time,omitempty"`
	CancelledAt        *time.Time      `json:"cancelled_at,omitempty"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
	Reason string `json:"reason,omitempty"`
}

type OrderCancel struct {
	Reason string `json:"reason"`
}

type OrderAssign struct {
	CourierID string `json:"courier_id"`
}

type Payment struct {
	ID            string           `json:"id"`
	OrderID       string           `json:"order_id"`
	CustomerID    string           `json:"customer_id"`
	StoreID       string           `json:"store_id"`
	Amount        decimal.Decimal  `json:"amount"`
	PaymentMethod string           `json:"payment_method"`
	Status        string           `json:"status"`
	TransactionID *string          `json:"transaction_id,omitempty"`
	ConfirmedBy   *string          `json:"confirmed_by,omitempty"`
	ProcessedBy   *string          `json:"processed_by,omitempty"`
	FailureReason *string          `json:"failure_reason,omitempty"`
	RefundAmount  *decimal.Decimal `json:"refund_amount,omitempty"`
	RefundReason  *string          `json:"refund_reason,omitempty"`
	RefundedBy    *string          `json:"refunded_by,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	RefundedAt    *time.Time       `json:"refunded_at,omitempty"`
}

type PaymentProcess struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionID *string         `json:"transaction_id,omitempty"`
}

type PaymentRefund struct {
	Amount decimal.Decimal `json:"amount"`
	Reason string          `json:"reason"`
}

type CourierCreate struct {
	AccountID string    `json:"account_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Location  *Location `json:"current_location,omitempty"`
}

type Courier struct {
	ID                     string          `json:"id"`
	AccountID              string          `json:"account_id"`
	Name                   string          `json:"name"`
	Phone                  string          `json:"phone"`
	Status                 string          `json:"status"`
	CurrentLocation        *Location       `json:"current_location"`
	VerificationStatus     string          `json:"verification_status"`
	IsAvailableForDelivery bool            `json:"is_available_for_delivery"`
	IsSuspended            bool            `json:"is_suspended"`
	SuspendedAt            *time.Time      `json:"suspended_at,omitempty"`
	SuspendedBy            *string         `json:"suspended_by,omitempty"`
	SuspensionReason       *string         `json:"suspension_reason,omitempty"`
	CommissionRate         decimal.Decimal `json:"commission_rate"`
	ActiveDeliveries       []string        `json:"active_deliveries"`
	TotalDeliveries        int64           `json:"total_deliveries"`
	TotalEarnings          decimal.Decimal `json:"total_earnings"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

type CourierMatch struct {
	Courier    Courier  `json:"courier"`
	DistanceKm *float64 `json:"distance_km"`
}

type CourierAvailability struct {
	Status                 *string   `json:"status,omitempty"`
	Location               *Location `json:"current_location,omitempty"`
	IsAvailableForDelivery *bool     `json:"is_available_for_delivery,omitempty"`
}

type CourierVerification struct {
	Status string `json:"verification_status"`
}

type CourierCommission struct {
	CommissionRate decimal.Decimal `json:"commission_rate"`
}

type CourierSuspend struct {
	Reason string `json:"reason"`
}

type PingResponse struct {
	Message    string    `json:"message"`
	ServerTime time.Time `json:"server_time"`
}
