package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

var (
	ErrInvalidOrderID       = fmt.Errorf("%w: invalid order id", errs.ErrValidation)
	ErrInvalidCustomerID    = fmt.Errorf("%w: invalid customer id", errs.ErrValidation)
	ErrInvalidStoreID       = fmt.Errorf("%w: invalid store id", errs.ErrValidation)
	ErrInvalidCourierID     = fmt.Errorf("%w: invalid courier id", errs.ErrValidation)
	ErrEmptyItems           = fmt.Errorf("%w: order must contain at least one item", errs.ErrValidation)
	ErrInvalidItem          = fmt.Errorf("%w: invalid order item", errs.ErrValidation)
	ErrInvalidDeliveryFee   = fmt.Errorf("%w: delivery fee must not be negative", errs.ErrValidation)
	ErrInvalidAddress       = fmt.Errorf("%w: delivery street and city are required", errs.ErrValidation)
	ErrInvalidLocation      = fmt.Errorf("%w: invalid delivery location", errs.ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method", errs.ErrValidation)
	ErrInvalidStatus        = fmt.Errorf("%w: invalid order status", errs.ErrValidation)
	ErrInvalidActor         = fmt.Errorf("%w: invalid actor", errs.ErrValidation)

	ErrOrderNotFound = fmt.Errorf("%w: order not found", errs.ErrNotFound)

	ErrForbidden = fmt.Errorf("%w: actor is not allowed to change this order", errs.ErrForbidden)

	ErrInvalidTransition      = fmt.Errorf("%w: invalid status transition", errs.ErrConflict)
	ErrCourierRequired        = fmt.Errorf("%w: order has no assigned courier", errs.ErrConflict)
	ErrOrderNotReady          = fmt.Errorf("%w: order is not ready for courier assignment", errs.ErrConflict)
	ErrOrderAlreadyAssigned   = fmt.Errorf("%w: order already has a courier", errs.ErrConflict)
	ErrConcurrentModification = fmt.Errorf("%w: order was modified concurrently", errs.ErrConflict)
	ErrConflict               = fmt.Errorf("%w: order already exists", errs.ErrConflict)
)
