//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_test
package outbox

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

type Repository interface {
	Insert(ctx context.Context, records []entities.OutboxRecord) error
	FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.OutboxRecord, error)
	MarkDispatched(ctx context.Context, ids []int64, at time.Time) error
	MarkFailed(ctx context.Context, id int64, attempts int, lastError string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Sink - получатель событий из outbox: внутрипроцессная шина или kafka.
type Sink interface {
	Dispatch(ctx context.Context, event events.Event) error
}
