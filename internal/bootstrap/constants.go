package bootstrap

import "time"

// Session log files
const (
	DirPermission     = 0755
	LogFilePermission = 0666

	// LogFileTimestampFormat sorts lexically in time order
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "%s_%s.log" // binary, timestamp
	LogFileExtension       = ".log"
	LogFileRetentionCount  = 9
)

const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStarting            = "Starting CasinoBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Storage and catalog
const (
	LogMsgStorageMemory      = "Using in-memory storage; state is lost on restart"
	LogMsgStoragePostgres    = "Connected to PostgreSQL"
	LogMsgMigrationsApplied  = "Database migrations applied"
	LogMsgCatalogLoaded      = "Catalog loaded"
	ErrMsgFailedConnectDB    = "failed to connect to database"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgFailedCreateStore  = "failed to create store"
	ErrMsgUnknownStorageKind = "unknown storage kind %q"

	ErrMsgFailedLoadCatalog   = "failed to load catalog"
	ErrMsgFailedBuildRegistry = "failed to build machine registry"
)

// Events
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgDeadLettersPending             = "Dead-letter log has undelivered events"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Event subscribers: metrics, the Kafka sink and the Redis winners board
const (
	RecorderWorkers   = 2
	RecorderQueueSize = 256
	RedisDialTimeout  = 5 * time.Second

	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgKafkaSinkRegistered        = "Kafka event sink registered"
	LogMsgKafkaSinkDisabled          = "KAFKA_BROKERS not set; event sink disabled"
	LogMsgRedisBoardRegistered       = "Redis winners board registered"
	LogMsgRedisBoardDisabled         = "REDIS_ADDR not set; winners board reads the spin log"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedCreateKafkaSink      = "failed to create kafka sink"
	ErrMsgFailedDialRedis            = "failed to connect to redis"
)

// Shutdown. Component names are prefixed to the "... failed" suffixes.
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgWorkerShutdownFailed       = " shutdown failed"
	LogMsgCloseFailed                = " close failed"
	LogMsgServiceShutdownErr         = " service shutdown failed"

	ServiceNameEconomy      = "economy"
	ServiceNameSlots        = "slots"
	WorkerNameEffectSweeper = "effect sweeper"
	WorkerNameRecorderPool  = "leaderboard recorder pool"
	ClosableNameKafkaSink   = "kafka sink"
	ClosableNameRedisClient = "redis client"
	ClosableNameLogFile     = "log file"
)

// Readiness check names
const (
	ReadyCheckDatabase = "database"
	ReadyCheckRedis    = "redis"
)
