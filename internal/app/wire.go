//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"marketplace/internal/handlers/listeners/courier"
	"marketplace/internal/handlers/listeners/notification"
	"marketplace/internal/handlers/listeners/payment"
	"marketplace/internal/handlers/tasks/courier_statistics"
	"marketplace/internal/handlers/tasks/outbox_relay"
	"marketplace/internal/handlers/tasks/system_metrics"
	"marketplace/internal/pkg/config"
	"marketplace/internal/pkg/metrics"
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
	"marketplace/pkg/logger"
	"marketplace/pkg/tx"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		commonSet,

		provideOutboxRelay,
		provideOutboxSink,
		provideServiceBus,

		metrics.NewCollector,
		provideOutboxRelayTask,
		provideCourierStatisticsTask,
		provideSystemMetricsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),
		wire.Bind(new(ServicePayment), new(*paymentService.Payment)),
		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),

		wire.Bind(new(outboxService.TxManager), new(*tx.Manager)),
		wire.Bind(new(outbox_relay.Service), new(*outboxService.Relay)),
		wire.Bind(new(courier_statistics.Service), new(*courierService.Courier)),
		wire.Bind(new(system_metrics.Collector), new(*metrics.Collector)),
	)
	return &Application{}, nil
}

// InitializeEventsWorkerApp для Kafka воркера (cmd/worker-events)
func InitializeEventsWorkerApp(
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*EventsWorkerApp, error) {
	wire.Build(
		commonSet,
		provideWorkerBus,

		wire.Struct(new(EventsWorkerApp), "*"),
	)
	return nil, nil
}

var commonSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideOrderRepository,
	providePaymentRepository,
	provideCourierRepository,
	provideOutboxRepository,
	provideDirectoryRepository,

	provideOutboxPublisher,
	provideCourierRetrier,
	provideMatchingOptions,
	provideNotificationDispatcher,

	provideServiceOrder,
	provideServicePayment,
	provideServiceCourier,
	provideServiceNotification,

	providePaymentListener,
	provideNotificationListener,
	provideCourierListener,

	wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
	wire.Bind(new(paymentService.Repository), new(*paymentRepo.Repository)),
	wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
	wire.Bind(new(notificationService.Directory), new(*directoryRepo.Repository)),
	wire.Bind(new(outboxService.Repository), new(*outboxRepo.Repository)),

	wire.Bind(new(orderService.EventPublisher), new(*outboxService.Publisher)),
	wire.Bind(new(paymentService.EventPublisher), new(*outboxService.Publisher)),
	wire.Bind(new(courierService.EventPublisher), new(*outboxService.Publisher)),
	wire.Bind(new(courierService.OrderStore), new(*orderService.Order)),

	wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	wire.Bind(new(paymentService.TxManager), new(*tx.Manager)),
	wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

	wire.Bind(new(payment.Service), new(*paymentService.Payment)),
	wire.Bind(new(notification.Notifier), new(*notificationService.Notification)),
	wire.Bind(new(courier.OrderService), new(*orderService.Order)),
	wire.Bind(new(courier.CourierService), new(*courierService.Courier)),
)
