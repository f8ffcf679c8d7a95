//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_availability_put_test
package courier_availability_put

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	UpdateAvailability(ctx context.Context, courierID string, change entities.AvailabilityChange, actor entities.Actor) (*entities.Courier, error)
}
