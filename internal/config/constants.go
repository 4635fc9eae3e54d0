package config

import "time"

// Configuration file paths
const (
	ConfigPathCatalog = "configs/catalog.yaml"

	// LogDirStdout as LOG_DIR disables the session log file
	LogDirStdout = "stdout"
)

// Storage backends
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

// Binaries with their own required environment
const (
	BinaryServer   = "server"
	BinaryDiscord  = "discord"
	BinaryTelegram = "telegram"
)

// Defaults
const (
	DefaultPort              = "8080"
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultLogDir            = "logs"
	DefaultDBName            = "casinobot"
	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultStartingBalance  = 1000
	DefaultDailyBonus       = 200
	DefaultDailyCooldown    = 24 * time.Hour
	DefaultLeaderboardLimit = 5

	DefaultKafkaTopic          = "casino.events"
	DefaultEventMaxRetries     = 5
	DefaultEventRetryDelay     = 2 * time.Second
	DefaultEventDeadLetterPath = "logs/event_deadletter.jsonl"
	DefaultEffectSweepInterval = time.Minute
	DefaultDeliveryMaxAttempts = 3
	DefaultDeliveryBaseDelay   = 500 * time.Millisecond
	DefaultAPIURL              = "http://localhost:8080"
	DefaultFrameDelay          = 900 * time.Millisecond
	DefaultBotHealthPort       = 8082
)

// Error messages
const (
	ErrMsgInvalidPort       = "invalid PORT value: %w"
	ErrMsgAPIKeyRequired    = "API_KEY environment variable must be set for security"
	ErrMsgInvalidStorage    = "invalid STORAGE value %q: expected postgres or memory"
	ErrMsgReadCatalog       = "failed to read catalog %s: %w"
	ErrMsgParseCatalog      = "failed to parse catalog %s: %w"
	ErrMsgInvalidCatalog    = "invalid catalog: %w"
	ErrMsgDuplicateMachine  = "duplicate machine key %q"
	ErrMsgDuplicateItem     = "duplicate item id %q"
	ErrMsgEmptyCatalog      = "catalog defines no machines"
	ErrMsgSpecialNotOnReel  = "machine %s: special symbol %q is not on the reel"
	ErrMsgWildNotOnReel     = "machine %s: wild symbol %q is not on the reel"
	ErrMsgScatterNotOnReel  = "machine %s: scatter symbol %q is not on the reel"
	ErrMsgItemMissingParams = "item %s: %s"
)
