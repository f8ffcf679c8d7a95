package eventbus

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"marketplace/pkg/logger"
)

var (
	ErrClosed         = errors.New("event bus is closed")
	ErrUnexpectedType = errors.New("unexpected event type")
	ErrListenerFailed = errors.New("listener failed")
)

// Event - доменное событие. Topic должен быть определён на типе-значении,
// чтобы его можно было получить у нулевого значения при подписке.
type Event interface {
	Topic() string
	Key() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type subscription struct {
	name   string
	handle func(ctx context.Context, event Event) error
}

// Bus - внутрипроцессная асинхронная шина событий.
// Каждый слушатель каждого события выполняется в своей горутине, ошибки и паники
// слушателя логируются и считаются в метриках. До публикующего они доходят
// только через DispatchAndWait.
type Bus struct {
	log     handlerLogger
	timeout time.Duration

	mu     sync.RWMutex
	subs   map[string][]subscription
	closed bool

	inflight sync.WaitGroup
}

// New создает шину. timeout ограничивает время работы одного слушателя, 0 - без ограничения.
func New(log handlerLogger, timeout time.Duration) *Bus {
	return &Bus{
		log:     log,
		timeout: timeout,
		subs:    make(map[string][]subscription),
	}
}

// Subscribe регистрирует типизированного слушателя на топик события E.
// Слушатели одного топика запускаются в порядке регистрации.
func Subscribe[E Event](b *Bus, name string, fn func(ctx context.Context, event E) error) {
	var zero E
	topic := zero.Topic()

	sub := subscription{
		name: name,
		handle: func(ctx context.Context, event Event) error {
			typed, ok := event.(E)
			if !ok {
				return fmt.Errorf("%w: %T for topic %s", ErrUnexpectedType, event, topic)
			}
			return fn(ctx, typed)
		},
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], sub)
}

// Dispatch публикует одно событие и сразу возвращает управление.
// Контекст слушателей отвязан от отмены ctx, но сохраняет его значения.
// Возвращает ErrClosed после Shutdown.
func (b *Bus) Dispatch(ctx context.Context, event Event) error {
	_, err := b.start(context.WithoutCancel(ctx), event)
	return err
}

// DispatchAndWait публикует событие и ждет, пока отработают все его слушатели.
// Слушатели получают ctx без отвязки от отмены. Ошибки и паники слушателей
// возвращаются обернутыми в ErrListenerFailed.
func (b *Bus) DispatchAndWait(ctx context.Context, event Event) error {
	results, err := b.start(ctx, event)
	if err != nil {
		return err
	}

	var failed []error
	for err := range results {
		if err != nil {
			failed = append(failed, err)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("%w: %w", ErrListenerFailed, errors.Join(failed...))
	}
	return nil
}

// start запускает слушателей события. Канал закрывается, когда все они завершились.
func (b *Bus) start(ctx context.Context, event Event) (<-chan error, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		return nil, ErrClosed
	}

	topic := event.Topic()
	EventsPublishedTotal.WithLabelValues(topic).Inc()

	subs := b.subs[topic]
	results := make(chan error, len(subs))
	if len(subs) == 0 {
		b.log.Info("no listeners for event", logger.NewField("topic", topic))
		close(results)
		return results, nil
	}

	var done sync.WaitGroup
	for _, sub := range subs {
		b.inflight.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			results <- b.run(ctx, sub, event)
		}()
	}
	go func() {
		done.Wait()
		close(results)
	}()

	return results, nil
}

// Shutdown перестает принимать события и ждет завершения запущенных слушателей.
func (b *Bus) Shutdown(ctx context.Context) error {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	done := make(chan struct{})
	go func() {
		b.inflight.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("wait for listeners: %w", ctx.Err())
	}
}

func (b *Bus) run(ctx context.Context, sub subscription, event Event) (err error) {
	defer b.inflight.Done()

	topic := event.Topic()
	log := b.log.With(
		logger.NewField("topic", topic),
		logger.NewField("listener", sub.name),
		logger.NewField("key", event.Key()),
	)

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	start := time.Now()
	result := "success"
	defer func() {
		if r := recover(); r != nil {
			result = "panic"
			err = fmt.Errorf("%s: panic: %v", sub.name, r)
			log.Error("listener panic",
				logger.NewField("recover", r),
				logger.NewField("stack", string(debug.Stack())),
			)
		}
		ListenerDuration.WithLabelValues(topic, sub.name).Observe(time.Since(start).Seconds())
		ListenerRunsTotal.WithLabelValues(topic, sub.name, result).Inc()
	}()

	if err := sub.handle(ctx, event); err != nil {
		result = "error"
		log.Error("listener failed", logger.NewField("error", err))
		return fmt.Errorf("%s: %w", sub.name, err)
	}
	return nil
}
