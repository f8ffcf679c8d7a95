//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=payment_test
package payment

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type Repository interface {
	Create(ctx context.Context, payment entities.Payment) (*entities.Payment, error)
	GetByOrderID(ctx context.Context, orderID string) (*entities.Payment, error)
	Transition(ctx context.Context, transition entities.PaymentTransition) (*entities.Payment, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evs ...events.Event) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
