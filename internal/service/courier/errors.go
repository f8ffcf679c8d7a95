package courier

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

var (
	ErrInvalidCourierID          = fmt.Errorf("%w: invalid courier id", errs.ErrValidation)
	ErrInvalidOrderID            = fmt.Errorf("%w: invalid order id", errs.ErrValidation)
	ErrInvalidAccountID          = fmt.Errorf("%w: invalid account id", errs.ErrValidation)
	ErrInvalidName               = fmt.Errorf("%w: invalid name", errs.ErrValidation)
	ErrInvalidPhone              = fmt.Errorf("%w: invalid phone", errs.ErrValidation)
	ErrInvalidStatus             = fmt.Errorf("%w: invalid status", errs.ErrValidation)
	ErrInvalidVerificationStatus = fmt.Errorf("%w: invalid verification status", errs.ErrValidation)
	ErrInvalidLocation           = fmt.Errorf("%w: invalid location", errs.ErrValidation)
	ErrInvalidCommissionRate     = fmt.Errorf("%w: commission rate must be between 0 and 100", errs.ErrValidation)
	ErrInvalidActor              = fmt.Errorf("%w: invalid actor", errs.ErrValidation)
	ErrMissingRequiredFields     = fmt.Errorf("%w: missing required fields", errs.ErrValidation)

	ErrCourierNotFound = fmt.Errorf("%w: courier not found", errs.ErrNotFound)

	ErrForbidden = fmt.Errorf("%w: actor is not allowed to manage this courier", errs.ErrForbidden)

	ErrConflict               = fmt.Errorf("%w: courier already registered", errs.ErrConflict)
	ErrCourierNotApproved     = fmt.Errorf("%w: courier is not approved", errs.ErrConflict)
	ErrCourierSuspended       = fmt.Errorf("%w: courier is suspended", errs.ErrConflict)
	ErrAlreadySuspended       = fmt.Errorf("%w: courier is already suspended", errs.ErrConflict)
	ErrNotSuspended           = fmt.Errorf("%w: courier is not suspended", errs.ErrConflict)
	ErrOrderNotReady          = fmt.Errorf("%w: order is not ready for assignment", errs.ErrConflict)
	ErrOrderAlreadyAssigned   = fmt.Errorf("%w: order already has a courier", errs.ErrConflict)
	ErrConcurrentModification = fmt.Errorf("%w: courier was modified concurrently", errs.ErrConflict)
)
