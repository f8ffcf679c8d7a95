//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	UpdateStatus(ctx context.Context, transition entities.OrderTransition) (*entities.Order, error)
	AttachCourier(ctx context.Context, orderID, courierID string, version int64) (*entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evs ...events.Event) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
