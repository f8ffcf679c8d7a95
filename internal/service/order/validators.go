package order

import (
	"strings"

	"github.com/google/uuid"
	"marketplace/internal/entities"
)

func isValidID(id string) bool {
	return uuid.Validate(id) == nil
}

func validateNewOrder(newOrder *entities.NewOrder) error {
	if !isValidID(newOrder.CustomerID) {
		return ErrInvalidCustomerID
	}
	if !isValidID(newOrder.StoreID) {
		return ErrInvalidStoreID
	}
	if len(newOrder.Items) == 0 {
		return ErrEmptyItems
	}
	for _, item := range newOrder.Items {
		if strings.TrimSpace(item.ProductID) == "" || item.Quantity <= 0 || item.UnitPrice.IsNegative() {
			return ErrInvalidItem
		}
	}
	if newOrder.DeliveryFee.IsNegative() {
		return ErrInvalidDeliveryFee
	}
	if strings.TrimSpace(newOrder.DeliveryAddress.Street) == "" || strings.TrimSpace(newOrder.DeliveryAddress.City) == "" {
		return ErrInvalidAddress
	}
	if loc := newOrder.DeliveryAddress.Location; loc != nil && !loc.IsValid() {
		return ErrInvalidLocation
	}
	if newOrder.PaymentMethod != nil && !newOrder.PaymentMethod.IsValid() {
		return ErrInvalidPaymentMethod
	}
	return nil
}
