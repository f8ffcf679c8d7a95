package notifications

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/gateway/kafka"
)

const gatewayName = "notifications"

// Dispatcher ставит запрос на уведомление в очередь внешнего сервиса доставки.
type Dispatcher struct {
	sender sender
	topic  string
}

func New(producer sarama.SyncProducer, topic string) *Dispatcher {
	return NewWithSender(kafka.NewGateway(gatewayName, producer), topic)
}

func NewWithSender(sender sender, topic string) *Dispatcher {
	return &Dispatcher{
		sender: sender,
		topic:  topic,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, request entities.NotificationRequest) error {
	payload, err := json.Marshal(fromDomain(request))
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: d.topic,
		Key:   sarama.StringEncoder(request.RecipientID),
		Value: sarama.ByteEncoder(payload),
	}

	if err := d.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("enqueue notification %s: %w", request.Type, err)
	}
	return nil
}
