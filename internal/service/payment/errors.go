package payment

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

var (
	ErrInvalidOrderID       = fmt.Errorf("%w: invalid order id", errs.ErrValidation)
	ErrInvalidCustomerID    = fmt.Errorf("%w: invalid customer id", errs.ErrValidation)
	ErrInvalidStoreID       = fmt.Errorf("%w: invalid store id", errs.ErrValidation)
	ErrInvalidAmount        = fmt.Errorf("%w: amount must not be negative", errs.ErrValidation)
	ErrInvalidRefundAmount  = fmt.Errorf("%w: refund amount must be positive", errs.ErrValidation)
	ErrInvalidPaymentMethod = fmt.Errorf("%w: invalid payment method", errs.ErrValidation)
	ErrInvalidActor         = fmt.Errorf("%w: invalid actor", errs.ErrValidation)
	ErrAmountMismatch       = fmt.Errorf("%w: amount does not match payment amount", errs.ErrValidation)
	ErrPaymentFailed        = fmt.Errorf("%w: transaction id is required for electronic payment", errs.ErrValidation)

	ErrPaymentNotFound = fmt.Errorf("%w: payment not found", errs.ErrNotFound)
	ErrOrderNotFound   = fmt.Errorf("%w: order not found", errs.ErrNotFound)

	ErrForbidden = fmt.Errorf("%w: actor is not allowed to manage this payment", errs.ErrForbidden)

	ErrNotPending             = fmt.Errorf("%w: payment is not pending", errs.ErrConflict)
	ErrNotCashPayment         = fmt.Errorf("%w: payment method is not cash", errs.ErrConflict)
	ErrNotConfirmable         = fmt.Errorf("%w: cash payment cannot be confirmed in current status", errs.ErrConflict)
	ErrNotRefundable          = fmt.Errorf("%w: only completed payments can be refunded", errs.ErrConflict)
	ErrAlreadyRefunded        = fmt.Errorf("%w: payment already refunded", errs.ErrConflict)
	ErrRefundExceedsAmount    = fmt.Errorf("%w: refund amount exceeds captured amount", errs.ErrConflict)
	ErrPaymentExists          = fmt.Errorf("%w: order already has an active payment", errs.ErrConflict)
	ErrConcurrentModification = fmt.Errorf("%w: payment was modified concurrently", errs.ErrConflict)
)
