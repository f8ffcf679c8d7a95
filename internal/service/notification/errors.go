package notification

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

var (
	ErrInvalidRecipient = fmt.Errorf("%w: invalid recipient", errs.ErrValidation)
	ErrNoRecipients     = fmt.Errorf("%w: notification has no recipients", errs.ErrValidation)

	ErrRecipientNotFound = fmt.Errorf("%w: recipient account not found", errs.ErrNotFound)
)
