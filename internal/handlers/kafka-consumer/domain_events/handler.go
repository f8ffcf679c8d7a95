package domain_events

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/events"
	"marketplace/internal/gateway/kafka"
	"marketplace/pkg/eventbus"
	"marketplace/pkg/logger"
)

// Handler читает доменные события из общего топика и раздает их слушателям шины.
// Смещение фиксируется только после того, как все слушатели отработали без ошибок.
type Handler struct {
	dispatcher               Dispatcher
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, dispatcher Dispatcher, timeout time.Duration) *Handler {
	return &Handler{
		dispatcher:               dispatcher,
		log:                      log,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("domain events: claim messages closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// ребаланс или остановка consumer group
			h.log.Info("domain events: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// Возвращает true, если нужно прервать ConsumeClaim без фиксации смещения.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	msgLog := h.log.With(
		logger.NewField("key", string(message.Key)),
		logger.NewField("partition", message.Partition),
		logger.NewField("offset", message.Offset),
	)

	topic := eventTopic(message)
	if topic == "" {
		msgLog.Error("domain events: message without event topic header")
		sess.MarkMessage(message, "")
		return false
	}

	event, err := events.Decode(topic, message.Value)
	if err != nil {
		msgLog.With(
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		).Error("domain events: bad message")
		sess.MarkMessage(message, "")
		return false
	}

	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	err = h.dispatcher.DispatchAndWait(ctx, event)
	if err != nil {
		if errors.Is(err, eventbus.ErrClosed) {
			msgLog.Warn("domain events: bus closed, message will be reprocessed",
				logger.NewField("topic", topic),
			)
			return true
		}

		// слушатель упал не штатно: смещение не фиксируем, сессия перезапустится
		// с последнего зафиксированного, и событие придет повторно
		if errors.Is(err, eventbus.ErrListenerFailed) {
			msgLog.Error("domain events: listener failed, message will be reprocessed",
				logger.NewField("topic", topic),
				logger.NewField("error", err),
			)
			return true
		}

		msgLog.Error("domain events: dispatch failed",
			logger.NewField("topic", topic),
			logger.NewField("error", err),
		)
	}

	if sess.Context().Err() != nil {
		msgLog.Warn("domain events: session cancelled, message will be reprocessed",
			logger.NewField("topic", topic),
		)
		return true
	}

	msgLog.Info("domain events: processed", logger.NewField("topic", topic))
	sess.MarkMessage(message, "")
	return false
}

func eventTopic(message *sarama.ConsumerMessage) string {
	for _, header := range message.Headers {
		if header != nil && string(header.Key) == kafka.HeaderEventTopic {
			return string(header.Value)
		}
	}
	return ""
}
