//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"marketplace/internal/entities"
)

// Directory находит аккаунт по профилю покупателя, магазина или курьера.
type Directory interface {
	AccountID(ctx context.Context, role entities.RecipientRole, profileID string) (string, error)
}

// Dispatcher передает запрос внешнему сервису доставки уведомлений.
type Dispatcher interface {
	Dispatch(ctx context.Context, request entities.NotificationRequest) error
}
