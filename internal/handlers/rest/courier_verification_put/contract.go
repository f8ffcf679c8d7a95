//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_verification_put_test
package courier_verification_put

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
	SetVerificationStatus(ctx context.Context, courierID string, status entities.VerificationStatus, actor entities.Actor) (*entities.Courier, error)
}
