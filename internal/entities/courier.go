package entities

import (
	"slices"
	"time"

	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
)

type CourierStatus string

const (
	CourierOffline   CourierStatus = "offline"
	CourierAvailable CourierStatus = "available"
	CourierBusy      CourierStatus = "busy"
	CourierOnBreak   CourierStatus = "on_break"
)

const DefaultCourierStatus = CourierOffline

func (s CourierStatus) String() string {
	return string(s)
}

func (s CourierStatus) IsValid() bool {
	switch s {
	case CourierOffline, CourierAvailable, CourierBusy, CourierOnBreak:
		return true
	default:
		return false
	}
}

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

func (s VerificationStatus) String() string {
	return string(s)
}

func (s VerificationStatus) IsValid() bool {
	switch s {
	case VerificationPending, VerificationApproved, VerificationRejected:
		return true
	default:
		return false
	}
}

var DefaultCommissionRate = decimal.NewFromInt(20)

type Courier struct {
	ID                     string
	AccountID              string
	Name                   string
	Phone                  string
	Status                 CourierStatus
	CurrentLocation        *Location
	VerificationStatus     VerificationStatus
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

// IsEligible - курьеру вообще можно назначать заказы.
func (c *Courier) IsEligible() bool {
	return c.VerificationStatus == VerificationApproved && !c.IsSuspended
}

// IsAvailable - курьер подходит для поиска кандидатов прямо сейчас.
func (c *Courier) IsAvailable() bool {
	return c.IsEligible() && c.Status == CourierAvailable && c.IsAvailableForDelivery
}

func (c *Courier) HasActiveDelivery(orderID string) bool {
	return slices.Contains(c.ActiveDeliveries, orderID)
}

type NewCourier struct {
	AccountID       string
	Name            string
	Phone           string
	CurrentLocation *Location
}

type AvailabilityChange struct {
	Status                 *CourierStatus
	Location               *Location
	IsAvailableForDelivery *bool
}

type Suspension struct {
	Suspended bool
	At        *time.Time
	By        *string
	Reason    *string
}

// CourierUpdate - условное обновление профиля по Version. nil-поля не меняются.
type CourierUpdate struct {
	ID                     string
	Version                int64
	Status                 *CourierStatus
	Location               *Location
	IsAvailableForDelivery *bool
	VerificationStatus     *VerificationStatus
	CommissionRate         *decimal.Decimal
	ActiveDeliveries       []string
	Suspension             *Suspension
}

// CourierSearch - фильтр подбора. Без Bound - без ограничения по расстоянию,
// сортировка по числу активных доставок.
type CourierSearch struct {
	Bound *orb.Bound
	Limit int
}

type CourierMatch struct {
	Courier    Courier
	DistanceKm *float64
}
