package system_metrics

import (
	"context"
	"time"
)

type Collector interface {
	Collect(ctx context.Context) error
}

type SystemMetrics struct {
	collector Collector
	interval  time.Duration
}

func NewSystemMetrics(collector Collector, interval time.Duration) *SystemMetrics {
	return &SystemMetrics{
		collector: collector,
		interval:  interval,
	}
}

func (s *SystemMetrics) TTL() time.Duration {
	return s.interval
}

func (s *SystemMetrics) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return s.collector.Collect(ctxWithTimeout)
}

func (s *SystemMetrics) Info() string {
	return "system metrics"
}
