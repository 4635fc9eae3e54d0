package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	Version     string

	TrustedProxies []string // X-Forwarded-For is honoured only from these
	AllowedOrigins []string // CORS

	Storage           string // postgres | memory
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	DBAutoMigrate     bool

	CatalogPath string

	StartingBalance  int64
	DailyBonus       int64
	DailyCooldown    time.Duration
	LeaderboardLimit int

	RedisAddr    string
	KafkaBrokers []string
	KafkaTopic   string

	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
	EffectSweepInterval time.Duration

	// chat transports
	APIURL              string
	DeliveryMaxAttempts int
	DeliveryBaseDelay   time.Duration
	FrameDelay          time.Duration
	BotHealthPort       int
	DiscordToken        string
	DiscordAppID        string
	DiscordGuildID      string
	TelegramBotToken    string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:   getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:      getEnv("LOG_DIR", DefaultLogDir),
		Environment: getEnv("ENVIRONMENT", DefaultEnvironment),
		Version:     getEnv("VERSION", "dev"),

		TrustedProxies: getEnvAsList("TRUSTED_PROXIES"),
		AllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),

		Storage:           strings.ToLower(getEnv("STORAGE", StoragePostgres)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", DefaultDBName),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		DBAutoMigrate:     getEnvAsBool("DB_AUTO_MIGRATE", true),

		CatalogPath: getEnv("CATALOG_PATH", ConfigPathCatalog),

		StartingBalance:  int64(getEnvAsInt("CASINO_STARTING_BALANCE", DefaultStartingBalance)),
		DailyBonus:       int64(getEnvAsInt("CASINO_DAILY_BONUS", DefaultDailyBonus)),
		DailyCooldown:    getEnvAsDurationOrSeconds("CASINO_DAILY_COOLDOWN", DefaultDailyCooldown),
		LeaderboardLimit: getEnvAsInt("CASINO_LEADERBOARD_LIMIT", DefaultLeaderboardLimit),

		RedisAddr:    getEnv("REDIS_ADDR", ""),
		KafkaBrokers: getEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:   getEnv("KAFKA_TOPIC", DefaultKafkaTopic),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultEventDeadLetterPath),
		EffectSweepInterval: getEnvAsDuration("EFFECT_SWEEP_INTERVAL", DefaultEffectSweepInterval),

		APIURL:              getEnv("API_URL", DefaultAPIURL),
		DeliveryMaxAttempts: getEnvAsInt("DELIVERY_MAX_ATTEMPTS", DefaultDeliveryMaxAttempts),
		DeliveryBaseDelay:   getEnvAsDuration("DELIVERY_BASE_DELAY", DefaultDeliveryBaseDelay),
		FrameDelay:          getEnvAsDuration("SPIN_FRAME_DELAY", DefaultFrameDelay),
		BotHealthPort:       getEnvAsInt("BOT_HEALTH_PORT", DefaultBotHealthPort),
		DiscordToken:        getEnv("DISCORD_TOKEN", ""),
		DiscordAppID:        getEnv("DISCORD_APP_ID", ""),
		DiscordGuildID:      getEnv("DISCORD_GUILD_ID", ""),
		TelegramBotToken:    getEnv("TELEGRAM_BOT_TOKEN", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", DefaultPort))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.Storage != StoragePostgres && cfg.Storage != StorageMemory {
		return nil, fmt.Errorf(ErrMsgInvalidStorage, cfg.Storage)
	}

	// Validate API key is set
	if cfg.APIKey == "" {
		return nil, fmt.Errorf(ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value when unset or empty
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsDurationOrSeconds also accepts a bare integer number of seconds
func getEnvAsDurationOrSeconds(key string, defaultValue time.Duration) time.Duration {
	if secs, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return time.Duration(secs) * time.Second
	}
	return getEnvAsDuration(key, defaultValue)
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma-separated variable, dropping blanks
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
