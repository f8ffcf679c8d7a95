package courier

import (
	"time"

	"github.com/shopspring/decimal"
)

type CourierDB struct {
	ID                     string
	AccountID              string
	Name                   string
	Phone                  string
	Status                 string
	CurrentLat             *float64
	CurrentLon             *float64
	VerificationStatus     string
	IsAvailableForDelivery bool
	IsSuspended            bool
	SuspendedAt            *time.Time
	SuspendedBy            *string
	SuspensionReason       *string
	CommissionRate         decimal.Decimal
	ActiveDeliveries       []string
	TotalDeliveries        int64
	TotalEarnings          decimal.Decimal
	CreatedAt              time.Time
	UpdatedAt              time.Time
	Version                int64
}
