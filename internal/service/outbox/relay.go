package outbox

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/events"
	"marketplace/pkg/tx"
)

type RelayOptions struct {
	BatchSize   int
	MaxAttempts int
}

type RelayResult struct {
	Dispatched int
	Failed     int
	Discarded  int
}

func (r RelayResult) Total() int {
	return r.Dispatched + r.Failed + r.Discarded
}

// Relay переносит записи outbox в Sink. Доставка at-least-once:
// запись помечается отправленной только после успешного Dispatch.
type Relay struct {
	repository Repository
	txManager  TxManager
	sink       Sink
	options    RelayOptions
	now        func() time.Time
}

func NewRelay(repository Repository, txManager TxManager, sink Sink, options RelayOptions) *Relay {
	return &Relay{
		repository: repository,
		txManager:  txManager,
		sink:       sink,
		options:    options,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RelayPending обрабатывает одну пачку. Ошибка Sink увеличивает attempts и оставляет запись
// в очереди, нераспознанная запись сразу получает максимум попыток и больше не выбирается.
func (r *Relay) RelayPending(ctx context.Context) (RelayResult, error) {
	var result RelayResult

	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		result = RelayResult{}

		records, err := r.repository.FetchPending(ctx, r.options.BatchSize, r.options.MaxAttempts)
		if err != nil {
			return fmt.Errorf("fetch pending outbox records: %w", err)
		}

		dispatched := make([]int64, 0, len(records))
		for _, record := range records {
			event, err := events.Decode(record.Topic, record.Payload)
			if err != nil {
				if markErr := r.repository.MarkFailed(ctx, record.ID, r.options.MaxAttempts, err.Error()); markErr != nil {
					return fmt.Errorf("discard outbox record %d: %w", record.ID, markErr)
				}
				result.Discarded++
				continue
			}

			// слушатели в памяти процесса работают в своих горутинах и открывают
			// свои транзакции, транзакция relay им не передается
			if err := r.sink.Dispatch(tx.WithoutTx(ctx), event); err != nil {
				if markErr := r.repository.MarkFailed(ctx, record.ID, record.Attempts+1, err.Error()); markErr != nil {
					return fmt.Errorf("mark outbox record %d failed: %w", record.ID, markErr)
				}
				result.Failed++
				continue
			}

			dispatched = append(dispatched, record.ID)
		}

		if err := r.repository.MarkDispatched(ctx, dispatched, r.now()); err != nil {
			return fmt.Errorf("mark outbox records dispatched: %w", err)
		}
		result.Dispatched = len(dispatched)
		return nil
	})
	if err != nil {
		return RelayResult{}, err
	}

	return result, nil
}
