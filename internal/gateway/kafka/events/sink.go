package events

import (
	"context"
	"fmt"

	"github.com/IBM/sarama"
	domain "marketplace/internal/events"
	"marketplace/internal/gateway/kafka"
)

const gatewayName = "domain-events"

// Sink публикует доменные события в общий kafka-топик. Ключ - id агрегата,
// поэтому события одного заказа попадают в одну партицию по порядку.
type Sink struct {
	sender sender
	topic  string
}

func New(producer sarama.SyncProducer, topic string) *Sink {
	return NewWithSender(kafka.NewGateway(gatewayName, producer), topic)
}

func NewWithSender(sender sender, topic string) *Sink {
	return &Sink{
		sender: sender,
		topic:  topic,
	}
}

func (s *Sink) Dispatch(ctx context.Context, event domain.Event) error {
	payload, err := domain.Encode(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Key()),
		Value: sarama.ByteEncoder(payload),
		Headers: []sarama.RecordHeader{
			{Key: []byte(kafka.HeaderEventTopic), Value: []byte(event.Topic())},
		},
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("dispatch %s: %w", event.Topic(), err)
	}
	return nil
}
