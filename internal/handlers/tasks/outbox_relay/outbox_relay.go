package outbox_relay

import (
	"context"
	"time"

	"marketplace/internal/service/outbox"
	"marketplace/pkg/logger"
)

// за один тик отдаем не больше стольких пачек, чтобы не держать тикер
const maxBatchesPerRun = 10

type Service interface {
	RelayPending(ctx context.Context) (outbox.RelayResult, error)
}

type OutboxRelay struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOutboxRelay(log logger.Logger, service Service, interval time.Duration) *OutboxRelay {
	return &OutboxRelay{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OutboxRelay) TTL() time.Duration {
	return o.interval
}

// Do разбирает накопившиеся записи outbox пачками, пока они не кончатся.
func (o *OutboxRelay) Do(ctx context.Context) error {
	var total outbox.RelayResult

	for range maxBatchesPerRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := o.service.RelayPending(ctx)
		if err != nil {
			return err
		}

		total.Dispatched += result.Dispatched
		total.Failed += result.Failed
		total.Discarded += result.Discarded

		// неотправленные записи остаются до следующего тика
		if result.Total() == 0 || result.Dispatched == 0 {
			break
		}
	}

	if total.Total() > 0 {
		o.log.With(
			logger.NewField("dispatched", total.Dispatched),
			logger.NewField("failed", total.Failed),
			logger.NewField("discarded", total.Discarded),
		).Info("outbox relay")
	}

	return nil
}

func (o *OutboxRelay) Info() string {
	return "outbox relay"
}
