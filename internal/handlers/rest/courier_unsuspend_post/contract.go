//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_unsuspend_post_test
package courier_unsuspend_post

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
	UnsuspendCourier(ctx context.Context, courierID string, actor entities.Actor) (*entities.Courier, error)
}
