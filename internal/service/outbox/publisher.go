package outbox

import (
	"context"
	"fmt"
	"time"

	"marketplace/internal/entities"
	"marketplace/internal/events"
)

// Publisher сохраняет события в outbox в транзакции вызывающего,
// поэтому событие появляется тогда и только тогда, когда коммитится изменение.
type Publisher struct {
	repository Repository
	now        func() time.Time
}

func NewPublisher(repository Repository) *Publisher {
	return &Publisher{
		repository: repository,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func (p *Publisher) Publish(ctx context.Context, evs ...events.Event) error {
	if len(evs) == 0 {
		return nil
	}

	now := p.now()
	records := make([]entities.OutboxRecord, 0, len(evs))
	for _, event := range evs {
		if event == nil {
			return ErrNilEvent
		}

		payload, err := events.Encode(event)
		if err != nil {
			return err
		}

		records = append(records, entities.OutboxRecord{
			Topic:       event.Topic(),
			AggregateID: event.Key(),
			Payload:     payload,
			CreatedAt:   now,
		})
	}

	if err := p.repository.Insert(ctx, records); err != nil {
		return fmt.Errorf("insert outbox records: %w", err)
	}
	return nil
}
