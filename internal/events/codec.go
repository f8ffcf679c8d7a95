package events

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrUnknownTopic = errors.New("unknown event topic")
	ErrBadPayload   = errors.New("bad event payload")
)

type decoder func(payload []byte) (Event, error)

func decodeAs[E Event](payload []byte) (Event, error) {
	var event E
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, err
	}
	return event, nil
}

// Строковый топик разбирается только здесь, на границе сериализации (outbox, kafka).
var decoders = map[string]decoder{
	TopicOrderCreated:       decodeAs[OrderCreated],
	TopicOrderStatusUpdated: decodeAs[OrderStatusUpdated],
	TopicOrderCancelled:     decodeAs[OrderCancelled],
	TopicOrderAssigned:      decodeAs[OrderAssignedToCourier],
	TopicPaymentProcessed:   decodeAs[PaymentProcessed],
	TopicPaymentCompleted:   decodeAs[PaymentCompleted],
	TopicPaymentFailed:      decodeAs[PaymentFailed],
	TopicPaymentRefunded:    decodeAs[PaymentRefunded],
	TopicCourierSuspended:   decodeAs[CourierSuspended],
	TopicCourierUnsuspended: decodeAs[CourierUnsuspended],
}

func Encode(event Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("encode %s: %w", event.Topic(), err)
	}
	return payload, nil
}

func Decode(topic string, payload []byte) (Event, error) {
	decode, ok := decoders[topic]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTopic, topic)
	}

	event, err := decode(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBadPayload, topic, err)
	}
	return event, nil
}

func Topics() []string {
	topics := make([]string, 0, len(decoders))
	for topic := range decoders {
		topics = append(topics, topic)
	}
	return topics
}
