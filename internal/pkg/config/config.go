package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	EventsTransportInProcess = "inprocess"
	EventsTransportKafka     = "kafka"

	defaultLogLevel           = "info"
	defaultMatchingRadiusKm   = 10.0
	defaultMatchingLimit      = 10
	defaultRelayInterval      = 500 * time.Millisecond
	defaultRelayBatchSize     = 100
	defaultRelayMaxAttempts   = 10
	defaultListenerTimeout    = 10 * time.Second
	defaultRateLimiterIdleTTL = 10 * time.Minute
)

type (
	Tasks struct {
		CourierStatisticsInterval time.Duration
		SystemMetricsInterval     time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware rate limiter refill, токенов в секунду на актора
		RateLimiterBurst int           // middleware rate limiter capacity
		RateLimiterIdle  time.Duration // через сколько простоя ведро актора удаляется
		PprofEnabled     bool
		PprofPort        string
	}

	Log struct {
		Level string
	}

	Database struct {
		Host           string
		Port           string
		User           string
		Password       string
		DBName         string
		SSLMode        string
		MigrateOnStart bool
	}

	Kafka struct {
		PortHealthcheck    string
		Brokers            string
		EventsTopic        string
		NotificationsTopic string
		ConsumerGroup      string
		Sarama             Sarama
		Handlers           KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	KafkaHandlers struct {
		DomainEvents DomainEvents
	}

	DomainEvents struct {
		ProcessTimeout time.Duration
	}

	Events struct {
		Transport        string
		RelayInterval    time.Duration
		RelayBatchSize   int
		RelayMaxAttempts int
		ListenerTimeout  time.Duration
	}

	Matching struct {
		RadiusKm float64
		Limit    int
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Log      Log
		Database Database
		Kafka    Kafka
		Events   Events
		Matching Matching
	}
)

func (k Kafka) BrokerList() []string {
	brokers := strings.Split(k.Brokers, ",")
	result := make([]string, 0, len(brokers))
	for _, b := range brokers {
		if b = strings.TrimSpace(b); b != "" {
			result = append(result, b)
		}
	}
	return result
}

func (e Events) UsesKafka() bool {
	return e.Transport == EventsTransportKafka
}

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

// LoadWorker загружает конфиг процесса-обработчика событий: HTTP-сервер ему не нужен.
func LoadWorker() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateWorkerConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	var errs []error
	collect := func(err error) {
		if err != nil {
			errs = append(errs, err)
		}
	}

	statisticsInterval, err := osGetEnvDuration("BACKGROUND_COURIER_STATISTICS_INTERVAL", 0)
	collect(err)
	systemMetricsInterval, err := osGetEnvDuration("BACKGROUND_SYSTEM_METRICS_INTERVAL", 0)
	collect(err)
	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	collect(err)
	domainEventsTimeout, err := osGetEnvDuration("KAFKA_HANDLER_DOMAIN_EVENTS_PROCESS_TIMEOUT", 0)
	collect(err)
	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", 0)
	collect(err)
	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", 0)
	collect(err)
	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", 0)
	collect(err)
	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	collect(err)
	migrateOnStart, err := osGetBool("POSTGRES_MIGRATE_ON_START")
	collect(err)
	relayInterval, err := osGetEnvDuration("EVENTS_RELAY_INTERVAL", defaultRelayInterval)
	collect(err)
	relayBatchSize, err := osGetInt("EVENTS_RELAY_BATCH_SIZE", defaultRelayBatchSize)
	collect(err)
	relayMaxAttempts, err := osGetInt("EVENTS_RELAY_MAX_ATTEMPTS", defaultRelayMaxAttempts)
	collect(err)
	listenerTimeout, err := osGetEnvDuration("EVENTS_LISTENER_TIMEOUT", defaultListenerTimeout)
	collect(err)
	radiusKm, err := osGetFloat("MATCHING_RADIUS_KM", defaultMatchingRadiusKm)
	collect(err)
	matchingLimit, err := osGetInt("MATCHING_LIMIT", defaultMatchingLimit)
	collect(err)

	if len(errs) > 0 {
		return nil, fmt.Errorf("loading config: %w", errors.Join(errs...))
	}

	return &Config{
		Tasks: Tasks{
			CourierStatisticsInterval: statisticsInterval,
			SystemMetricsInterval:     systemMetricsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			RateLimiterIdle:  defaultRateLimiterIdleTTL,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Log: Log{
			Level: osGetString("LOG_LEVEL", defaultLogLevel),
		},
		Database: Database{
			Host:           os.Getenv("POSTGRES_HOST"),
			Port:           os.Getenv("POSTGRES_PORT"),
			User:           os.Getenv("POSTGRES_USER"),
			Password:       os.Getenv("POSTGRES_PASSWORD"),
			DBName:         os.Getenv("POSTGRES_DB"),
			SSLMode:        os.Getenv("POSTGRES_SSLMODE"),
			MigrateOnStart: migrateOnStart,
		},
		Kafka: Kafka{
			Brokers:            os.Getenv("KAFKA_BROKERS"),
			EventsTopic:        os.Getenv("KAFKA_EVENTS_TOPIC"),
			NotificationsTopic: os.Getenv("KAFKA_NOTIFICATIONS_TOPIC"),
			ConsumerGroup:      os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck:    os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Handlers: KafkaHandlers{
				DomainEvents: DomainEvents{
					ProcessTimeout: domainEventsTimeout,
				},
			},
		},
		Events: Events{
			Transport:        osGetString("EVENTS_TRANSPORT", EventsTransportInProcess),
			RelayInterval:    relayInterval,
			RelayBatchSize:   relayBatchSize,
			RelayMaxAttempts: relayMaxAttempts,
			ListenerTimeout:  listenerTimeout,
		},
		Matching: Matching{
			RadiusKm: radiusKm,
			Limit:    matchingLimit,
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}

	if cfg.Tasks.CourierStatisticsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_COURIER_STATISTICS_INTERVAL is required")
	}
	if cfg.Tasks.SystemMetricsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SYSTEM_METRICS_INTERVAL is required")
	}

	if err := validateEvents(cfg); err != nil {
		return err
	}

	if cfg.Matching.RadiusKm <= 0 {
		return errors.New("MATCHING_RADIUS_KM must be positive")
	}
	if cfg.Matching.Limit <= 0 {
		return errors.New("MATCHING_LIMIT must be positive")
	}

	if cfg.Events.UsesKafka() && cfg.Kafka.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required for kafka events transport")
	}
	if cfg.Kafka.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	return nil
}

func validateWorkerConfig(cfg *Config) error {
	if err := validateDatabase(&cfg.Database); err != nil {
		return err
	}
	if err := validateEvents(cfg); err != nil {
		return err
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.EventsTopic == "" {
		return errors.New("KAFKA_EVENTS_TOPIC is required")
	}
	if cfg.Kafka.NotificationsTopic == "" {
		return errors.New("KAFKA_NOTIFICATIONS_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.DomainEvents.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_DOMAIN_EVENTS_PROCESS_TIMEOUT is required")
	}

	return nil
}

func validateDatabase(cfg *Database) error {
	if cfg.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}
	return nil
}

func validateEvents(cfg *Config) error {
	switch cfg.Events.Transport {
	case EventsTransportInProcess, EventsTransportKafka:
	default:
		return fmt.Errorf("EVENTS_TRANSPORT must be %q or %q, got %q",
			EventsTransportInProcess, EventsTransportKafka, cfg.Events.Transport)
	}
	if cfg.Events.RelayInterval <= 0 {
		return errors.New("EVENTS_RELAY_INTERVAL must be positive")
	}
	if cfg.Events.RelayBatchSize <= 0 {
		return errors.New("EVENTS_RELAY_BATCH_SIZE must be positive")
	}
	if cfg.Events.RelayMaxAttempts <= 0 {
		return errors.New("EVENTS_RELAY_MAX_ATTEMPTS must be positive")
	}
	return nil
}

func osGetString(s, def string) string {
	if val := os.Getenv(s); val != "" {
		return val
	}
	return def
}

func osGetInt(s string, def int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetFloat(s string, def float64) (float64, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid float format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, def time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return def, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
