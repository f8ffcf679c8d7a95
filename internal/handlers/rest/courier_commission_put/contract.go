//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_commission_put_test
package courier_commission_put

import (
	"context"

	"github.com/shopspring/decimal"
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
	UpdateCommissionRate(ctx context.Context, courierID string, rate decimal.Decimal, actor entities.Actor) (*entities.Courier, error)
}
