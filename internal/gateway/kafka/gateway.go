package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
)

// HeaderEventTopic - заголовок с топиком доменного события внутри общего kafka-топика.
const HeaderEventTopic = "event_topic"

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

// Gateway отправляет сообщения синхронным продюсером с ретраями временных ошибок брокера.
type Gateway struct {
	name     string
	producer producer
	retrier  retrier
}

func NewGateway(name string, producer producer) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return NewGatewayWithRetrier(name, producer, backoff_adapter.New(retryConfig))
}

func NewGatewayWithRetrier(name string, producer producer, retrier retrier) *Gateway {
	return &Gateway{
		name:     name,
		producer: producer,
		retrier:  retrier,
	}
}

func (g *Gateway) Send(ctx context.Context, msg *sarama.ProducerMessage) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		if err := ctx.Err(); err != nil {
			return err
		}
		_, _, err := g.producer.SendMessage(msg)
		return err
	})

	result := resultLabel(err)
	GatewayRequestDuration.WithLabelValues(g.name, msg.Topic, result).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(g.name, msg.Topic, result).Inc()
	}

	if err != nil {
		return fmt.Errorf("gateway %s, send to %s: %w", g.name, msg.Topic, err)
	}
	return nil
}

// isRetryable - временные ошибки брокера, после которых повтор имеет смысл.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}

	switch {
	case errors.Is(err, sarama.ErrOutOfBrokers),
		errors.Is(err, sarama.ErrNotConnected),
		errors.Is(err, sarama.ErrBrokerNotAvailable),
		errors.Is(err, sarama.ErrLeaderNotAvailable),
		errors.Is(err, sarama.ErrNotLeaderForPartition),
		errors.Is(err, sarama.ErrRequestTimedOut),
		errors.Is(err, sarama.ErrNotEnoughReplicas),
		errors.Is(err, sarama.ErrNotEnoughReplicasAfterAppend),
		errors.Is(err, sarama.ErrNetworkException):
		return true
	default:
		return false
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	case isRetryable(err):
		return "unavailable"
	default:
		return "error"
	}
}
