package payment

import (
	"strings"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func validateNewPayment(p *entities.NewPayment) error {
	if !isValidID(p.OrderID) {
		return ErrInvalidOrderID
	}
	if !isValidID(p.CustomerID) {
		return ErrInvalidCustomerID
	}
	if !isValidID(p.StoreID) {
		return ErrInvalidStoreID
	}
	if p.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if !p.Method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}

func validateProcessRequest(req *entities.ProcessPaymentRequest) error {
	if !isValidID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if req.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if req.Method != "" && !req.Method.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return validateActor(req.Actor)
}

func validateRefundRequest(req *entities.RefundRequest) error {
	if !isValidID(req.OrderID) {
		return ErrInvalidOrderID
	}
	if !req.Amount.IsPositive() {
		return ErrInvalidRefundAmount
	}
	return validateActor(req.Actor)
}

func validateActor(actor entities.Actor) error {
	if !actor.Role.IsValid() || strings.TrimSpace(actor.ID) == "" {
		return ErrInvalidActor
	}
	return nil
}
