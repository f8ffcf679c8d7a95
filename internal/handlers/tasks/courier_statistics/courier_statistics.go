package courier_statistics

import (
	"context"
	"time"

	"marketplace/pkg/logger"
)

type Service interface {
	RecomputeStatistics(ctx context.Context) (int64, error)
}

type CourierStatistics struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCourierStatistics(log logger.Logger, service Service, interval time.Duration) *CourierStatistics {
	return &CourierStatistics{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CourierStatistics) TTL() time.Duration {
	return c.interval
}

func (c *CourierStatistics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	updated, err := c.service.RecomputeStatistics(ctxWithTimeout)

	if updated > 0 {
		c.log.With(
			logger.NewField("updated_couriers", updated),
		).Info("courier statistics recomputed")
	}

	return err
}

func (c *CourierStatistics) Info() string {
	return "courier statistics"
}
