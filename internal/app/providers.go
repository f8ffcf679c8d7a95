package app

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	kafkaEvents "marketplace/internal/gateway/kafka/events"
	kafkaNotifications "marketplace/internal/gateway/kafka/notifications"
	courierListener "marketplace/internal/handlers/listeners/courier"
	notificationListener "marketplace/internal/handlers/listeners/notification"
	paymentListener "marketplace/internal/handlers/listeners/payment"
	"marketplace/internal/handlers/rest/courier_availability_put"
	"marketplace/internal/handlers/rest/courier_commission_put"
	"marketplace/internal/handlers/rest/courier_get"
	"marketplace/internal/handlers/rest/courier_post"
	"marketplace/internal/handlers/rest/courier_suspend_post"
	"marketplace/internal/handlers/rest/courier_unsuspend_post"
	"marketplace/internal/handlers/rest/courier_verification_put"
	"marketplace/internal/handlers/rest/order_assign_post"
	"marketplace/internal/handlers/rest/order_cancel_post"
	"marketplace/internal/handlers/rest/order_couriers_get"
	"marketplace/internal/handlers/rest/order_get"
	"marketplace/internal/handlers/rest/order_post"
	"marketplace/internal/handlers/rest/order_status_post"
	"marketplace/internal/handlers/rest/payment_get"
	"marketplace/internal/handlers/rest/payment_process_post"
	"marketplace/internal/handlers/rest/payment_refund_post"
	"marketplace/internal/handlers/tasks/courier_statistics"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/handlers/tasks/system_metrics"
	"marketplace/internal/pkg/config"
	courierRepo "marketplace/internal/repository/courier"
	directoryRepo "marketplace/internal/repository/directory"
	orderRepo "marketplace/internal/repository/order"
	outboxRepo "marketplace/internal/repository/outbox"
	paymentRepo "marketplace/internal/repository/payment"
	courierService "marketplace/internal/service/courier"
	notificationService "marketplace/internal/service/notification"
	orderService "marketplace/internal/service/order"
	outboxService "marketplace/internal/service/outbox"
	paymentService "marketplace/internal/service/payment"
	"marketplace/pkg/background"
	"marketplace/pkg/eventbus"
	"marketplace/pkg/logger"
	"marketplace/pkg/querier"
	retrierconfig "marketplace/pkg/retrier"
	"marketplace/pkg/retrier/backoff_adapter"
	"marketplace/pkg/tx"
)

// повтор CAS-обновления курьера при гонке с параллельной записью
const (
	courierRetryInitialInterval = 20 * time.Millisecond
	courierRetryMaxInterval     = 200 * time.Millisecond
	courierRetryMaxElapsedTime  = 2 * time.Second
	courierRetryRandomization   = 0.5
	courierRetryMultiplier      = 2.0
	courierRetryMaxRetries      = 5
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServicePayment    ServicePayment
	ServiceCourier    ServiceCourier
	Bus               *eventbus.Bus
	BackgroundWorkers *background.Worker
}

type EventsWorkerApp struct {
	Bus *eventbus.Bus
}

type ServiceOrder interface {
	order_post.Service
	order_get.Service
	order_status_post.Service
	order_cancel_post.Service
}

type ServicePayment interface {
	payment_get.Service
	payment_process_post.Service
	payment_refund_post.Service
}

type ServiceCourier interface {
	courier_post.Service
	courier_get.Service
	courier_availability_put.Service
	courier_verification_put.Service
	courier_commission_put.Service
	courier_suspend_post.Service
	courier_unsuspend_post.Service
	order_couriers_get.Service
	order_assign_post.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func providePaymentRepository(querier *querier.Querier) *paymentRepo.Repository {
	return paymentRepo.New(querier)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideDirectoryRepository(querier *querier.Querier) *directoryRepo.Repository {
	return directoryRepo.New(querier)
}

func provideOutboxPublisher(repository outboxService.Repository) *outboxService.Publisher {
	return outboxService.NewPublisher(repository)
}

func provideCourierRetrier() courierService.Retrier {
	return backoff_adapter.New(retrierconfig.Config{
		InitialInterval: courierRetryInitialInterval,
		MaxInterval:     courierRetryMaxInterval,
		MaxElapsedTime:  courierRetryMaxElapsedTime,
		Randomization:   courierRetryRandomization,
		Multiplier:      courierRetryMultiplier,
		MaxRetries:      courierRetryMaxRetries,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, courierService.ErrConcurrentModification)
		},
	})
}

func provideMatchingOptions(cfg *config.Config) courierService.MatchingOptions {
	return courierService.MatchingOptions{
		RadiusKm: cfg.Matching.RadiusKm,
		Limit:    cfg.Matching.Limit,
	}
}

func provideNotificationDispatcher(producer sarama.SyncProducer, cfg *config.Config) notificationService.Dispatcher {
	return kafkaNotifications.New(producer, cfg.Kafka.NotificationsTopic)
}

func provideServiceOrder(
	repository orderService.Repository,
	publisher orderService.EventPublisher,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, publisher, txManager)
}

func provideServicePayment(
	repository paymentService.Repository,
	publisher paymentService.EventPublisher,
	txManager paymentService.TxManager,
) *paymentService.Payment {
	return paymentService.New(repository, publisher, txManager)
}

func provideServiceCourier(
	repository courierService.Repository,
	orders courierService.OrderStore,
	publisher courierService.EventPublisher,
	txManager courierService.TxManager,
	retrier courierService.Retrier,
	matching courierService.MatchingOptions,
) *courierService.Courier {
	return courierService.New(repository, orders, publisher, txManager, retrier, matching)
}

func provideServiceNotification(
	directory notificationService.Directory,
	dispatcher notificationService.Dispatcher,
) *notificationService.Notification {
	return notificationService.New(directory, dispatcher)
}

func providePaymentListener(log logger.Logger, service paymentListener.Service) *paymentListener.Listener {
	return paymentListener.New(log, service)
}

func provideNotificationListener(log logger.Logger, notifier notificationListener.Notifier) *notificationListener.Listener {
	return notificationListener.New(log, notifier)
}

func provideCourierListener(
	log logger.Logger,
	orders courierListener.OrderService,
	couriers courierListener.CourierService,
) *courierListener.Listener {
	return courierListener.New(log, orders, couriers)
}

// provideServiceBus - шина HTTP сервиса. При kafka-транспорте события уходят воркеру,
// и слушатели здесь не регистрируются.
func provideServiceBus(
	log logger.Logger,
	cfg *config.Config,
	payments *paymentListener.Listener,
	notifications *notificationListener.Listener,
	couriers *courierListener.Listener,
) *eventbus.Bus {
	bus := eventbus.New(log, cfg.Events.ListenerTimeout)
	if cfg.Events.UsesKafka() {
		return bus
	}

	registerListeners(bus, payments, notifications, couriers)
	return bus
}

func provideWorkerBus(
	log logger.Logger,
	cfg *config.Config,
	payments *paymentListener.Listener,
	notifications *notificationListener.Listener,
	couriers *courierListener.Listener,
) *eventbus.Bus {
	bus := eventbus.New(log, cfg.Events.ListenerTimeout)
	registerListeners(bus, payments, notifications, couriers)
	return bus
}

// порядок регистрации = порядок запуска слушателей одного события
func registerListeners(
	bus *eventbus.Bus,
	payments *paymentListener.Listener,
	notifications *notificationListener.Listener,
	couriers *courierListener.Listener,
) {
	payments.Register(bus)
	notifications.Register(bus)
	couriers.Register(bus)
}

func provideOutboxSink(cfg *config.Config, bus *eventbus.Bus, producer sarama.SyncProducer) outboxService.Sink {
	if cfg.Events.UsesKafka() {
		return kafkaEvents.New(producer, cfg.Kafka.EventsTopic)
	}
	return bus
}

func provideOutboxRelay(
	repository outboxService.Repository,
	txManager outboxService.TxManager,
	sink outboxService.Sink,
	cfg *config.Config,
) *outboxService.Relay {
	return outboxService.NewRelay(repository, txManager, sink, outboxService.RelayOptions{
		BatchSize:   cfg.Events.RelayBatchSize,
		MaxAttempts: cfg.Events.RelayMaxAttempts,
	})
}

func provideOutboxRelayTask(log logger.Logger, service outbox_relay.Service, cfg *config.Config) *outbox_relay.OutboxRelay {
	return outbox_relay.NewOutboxRelay(log, service, cfg.Events.RelayInterval)
}

func provideCourierStatisticsTask(
	log logger.Logger,
	service courier_statistics.Service,
	cfg *config.Config,
) *courier_statistics.CourierStatistics {
	return courier_statistics.NewCourierStatistics(log, service, cfg.Tasks.CourierStatisticsInterval)
}

func provideSystemMetricsTask(collector system_metrics.Collector, cfg *config.Config) *system_metrics.SystemMetrics {
	return system_metrics.NewSystemMetrics(collector, cfg.Tasks.SystemMetricsInterval)
}

func provideTaskList(
	outboxRelayTask *outbox_relay.OutboxRelay,
	courierStatisticsTask *courier_statistics.CourierStatistics,
	systemMetricsTask *system_metrics.SystemMetrics,
) []background.Task {
	return []background.Task{
		outboxRelayTask,
		courierStatisticsTask,
		systemMetricsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
