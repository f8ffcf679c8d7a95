package courier

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"marketplace/internal/entities"
)

var maxCommissionRate = decimal.NewFromInt(100)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func isValidName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPhone(phone string) bool {
	phone = strings.TrimSpace(phone)
	if !strings.HasPrefix(phone, "+") || len(phone) < 2 {
		return false
	}

	for _, char := range phone[1:] {
		if char < '0' || char > '9' {
			return false
		}
	}
	return true
}

func isValidCommissionRate(rate decimal.Decimal) bool {
	return !rate.IsNegative() && rate.LessThanOrEqual(maxCommissionRate)
}

func validateNewCourier(newCourier *entities.NewCourier) error {
	if !isValidID(newCourier.AccountID) {
		return ErrInvalidAccountID
	}
	if !isValidName(newCourier.Name) {
		return ErrInvalidName
	}
	if !isValidPhone(newCourier.Phone) {
		return ErrInvalidPhone
	}
	if loc := newCourier.CurrentLocation; loc != nil && !loc.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}

func validateAvailabilityChange(change *entities.AvailabilityChange) error {
	if change.Status == nil && change.Location == nil && change.IsAvailableForDelivery == nil {
		return ErrMissingRequiredFields
	}
	if change.Status != nil && !change.Status.IsValid() {
		return ErrInvalidStatus
	}
	if change.Location != nil && !change.Location.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}

func validateActor(actor entities.Actor) error {
	if !actor.Role.IsValid() || strings.TrimSpace(actor.ID) == "" {
		return ErrInvalidActor
	}
	return nil
}
