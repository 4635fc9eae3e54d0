package config

import (
	"fmt"
	"os"
	"slices"
	"strings"
)

// ExpectedEnvSchemaVersion is the ENV_SCHEMA_VERSION this build understands
const ExpectedEnvSchemaVersion = "1.0"

// RequiredEnvVars lists what each binary refuses to start without
var RequiredEnvVars = map[string][]string{
	BinaryServer:   {"API_KEY"},
	BinaryDiscord:  {"API_KEY", "API_URL", "DISCORD_TOKEN", "DISCORD_APP_ID"},
	BinaryTelegram: {"API_KEY", "API_URL", "TELEGRAM_BOT_TOKEN"},
}

// databaseEnvVars are added for the server unless STORAGE=memory
var databaseEnvVars = []string{"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"}

// envWarning flags a setting that works but is probably a mistake
type envWarning struct {
	applies func(binary string) bool
	message string
}

var envWarnings = []envWarning{
	{
		applies: equalsEnv("DB_PASSWORD", "change_this_secure_password"),
		message: "DB_PASSWORD still holds the example value; set a real password",
	},
	{
		applies: equalsEnv("API_KEY", "generate_with_openssl_rand_hex_32"),
		message: "API_KEY still holds the example value; generate one with: openssl rand -hex 32",
	},
	{
		applies: func(binary string) bool { return binary == BinaryServer && memoryStorage() },
		message: "STORAGE=memory keeps balances in process memory; they are lost on restart",
	},
	{
		applies: func(binary string) bool { return binary == BinaryServer && os.Getenv("REDIS_ADDR") == "" },
		message: "REDIS_ADDR is unset; leaderboards are read from the primary store",
	},
}

// ValidateEnv checks the schema version and the variables binary requires
func ValidateEnv(binary string) error {
	required, ok := RequiredEnvVars[binary]
	if !ok {
		return fmt.Errorf("unknown binary %q", binary)
	}

	switch v := os.Getenv("ENV_SCHEMA_VERSION"); v {
	case ExpectedEnvSchemaVersion:
	case "":
		return fmt.Errorf("ENV_SCHEMA_VERSION is not set (expected %s); compare your .env with .env.example", ExpectedEnvSchemaVersion)
	default:
		return fmt.Errorf("ENV_SCHEMA_VERSION mismatch: expected %s, got %s", ExpectedEnvSchemaVersion, v)
	}

	if binary == BinaryServer && !memoryStorage() {
		required = slices.Concat(required, databaseEnvVars)
	}

	missing := slices.DeleteFunc(slices.Clone(required), func(name string) bool {
		return os.Getenv(name) != ""
	})
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateEnvWithWarnings runs ValidateEnv and then reports suspicious values
func ValidateEnvWithWarnings(binary string) ([]string, error) {
	if err := ValidateEnv(binary); err != nil {
		return nil, err
	}

	var warnings []string
	for _, w := range envWarnings {
		if w.applies(binary) {
			warnings = append(warnings, w.message)
		}
	}
	return warnings, nil
}

func equalsEnv(name, value string) func(string) bool {
	return func(string) bool { return os.Getenv(name) == value }
}

func memoryStorage() bool {
	return strings.EqualFold(os.Getenv("STORAGE"), StorageMemory)
}
