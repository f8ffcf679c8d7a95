package outbox

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Insert записывает события одной вставкой в транзакции вызывающего.
func (r *Repository) Insert(ctx context.Context, records []entities.OutboxRecord) error {
	if len(records) == 0 {
		return nil
	}

	builder := repository.QB.
		Insert("outbox_events").
		Columns("topic", "aggregate_id", "payload", "created_at")

	for _, record := range records {
		builder = builder.Values(record.Topic, record.AggregateID, string(record.Payload), record.CreatedAt)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}

	_, err = r.querier.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository insert error: %w", err)
	}

	return nil
}

// FetchPending блокирует пачку неотправленных записей. Строки, заблокированные
// другой репликой, пропускаются.
func (r *Repository) FetchPending(ctx context.Context, limit, maxAttempts int) ([]entities.OutboxRecord, error) {
	query := `SELECT id, topic, aggregate_id, payload, created_at, dispatched_at, attempts, last_error
		FROM outbox_events
		WHERE dispatched_at IS NULL
			AND attempts < $2
		ORDER BY id
		LIMIT $1
		FOR UPDATE SKIP LOCKED`

	rows, err := r.querier.Query(ctx, query, limit, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
	}
	defer rows.Close()

	recordModels := make([]OutboxRecordDB, 0, limit)
	for rows.Next() {
		var recordModel OutboxRecordDB
		err := rows.Scan(
			&recordModel.ID,
			&recordModel.Topic,
			&recordModel.AggregateID,
			&recordModel.Payload,
			&recordModel.CreatedAt,
			&recordModel.DispatchedAt,
			&recordModel.Attempts,
			&recordModel.LastError,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
		}
		recordModels = append(recordModels, recordModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository fetch pending error: %w", err)
	}

	return ToDomainList(recordModels), nil
}

func (r *Repository) MarkDispatched(ctx context.Context, ids []int64, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query := `UPDATE outbox_events
		SET dispatched_at = $2
		WHERE id = ANY($1)`

	_, err := r.querier.Exec(ctx, query, ids, at)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark dispatched error: %w", err)
	}
	return nil
}

func (r *Repository) MarkFailed(ctx context.Context, id int64, attempts int, lastError string) error {
	query := `UPDATE outbox_events
		SET attempts = $2,
			last_error = $3
		WHERE id = $1`

	_, err := r.querier.Exec(ctx, query, id, attempts, lastError)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark failed error: %w", err)
	}
	return nil
}
