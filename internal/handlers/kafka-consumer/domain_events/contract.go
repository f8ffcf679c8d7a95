//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=domain_events_test
package domain_events

import (
	"context"

	"marketplace/internal/events"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Dispatcher interface {
	DispatchAndWait(ctx context.Context, event events.Event) error
}
