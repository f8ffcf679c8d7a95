package eventbus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_events_published_total",
			Help: "Total number of events published to the in-process bus",
		},
		[]string{"topic"},
	)

	ListenerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eventbus_listener_runs_total",
			Help: "Total number of listener runs by result (success, error, panic)",
		},
		[]string{"topic", "listener", "result"},
	)

	ListenerDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eventbus_listener_duration_seconds",
			Help:    "Duration of a single listener run",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"topic", "listener"},
	)
)
