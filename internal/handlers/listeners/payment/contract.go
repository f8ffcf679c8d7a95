//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

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
	CreatePayment(ctx context.Context, newPayment entities.NewPayment) (*entities.Payment, error)
	ConfirmCashPaymentByOrderID(ctx context.Context, orderID, confirmedBy string) (*entities.Payment, error)
}
