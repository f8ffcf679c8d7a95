//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type Repository interface {
	Create(ctx context.Context, courier entities.Courier) (*entities.Courier, error)
	GetByID(ctx context.Context, id string) (*entities.Courier, error)
	Update(ctx context.Context, update entities.CourierUpdate) (*entities.Courier, error)
	FindAvailable(ctx context.Context, search entities.CourierSearch) ([]entities.Courier, error)
	RecomputeStatistics(ctx context.Context, at time.Time) (int64, error)
}

// OrderStore - владелец таблицы заказов, курьер закрепляется только через него.
type OrderStore interface {
	GetOrder(ctx context.Context, id string) (*entities.Order, error)
	AttachCourier(ctx context.Context, orderID, courierID string) (*entities.Order, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, evs ...events.Event) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
