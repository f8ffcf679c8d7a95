package outbox

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

var ErrNilEvent = fmt.Errorf("%w: nil event", errs.ErrValidation)
