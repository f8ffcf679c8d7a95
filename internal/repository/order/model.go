package order

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDB struct {
	ID                 string
	OrderNumber        string
	CustomerID         string
	StoreID            string
	CourierID          *string
	Items              []byte
	DeliveryStreet     string
	DeliveryCity       string
	DeliveryPostalCode string
	DeliveryLat        *float64
	DeliveryLon        *float64
	DeliveryFee        decimal.Decimal
	Subtotal           decimal.Decimal
	Total              decimal.Decimal
	Status             string
	PaymentMethod      *string
	Notes              string
	CancellationReason *string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ConfirmedAt        *time.Time
	ActualDeliveryTime *time.Time
	CancelledAt        *time.Time
	Version            int64
}

// OrderItemDB - элемент JSONB-массива orders.items.
type OrderItemDB struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}
