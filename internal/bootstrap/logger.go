package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Each process writes a timestamped session log named after the binary; only the
// most recent sessions are kept. Returns the log file handle (caller must close),
// or nil when LOG_DIR=stdout.
func SetupLogger(cfg *config.Config, binary string) (*os.File, error) {
	logCfg := logger.NewConfig(cfg.LogLevel, cfg.LogFormat, binary, cfg.Version, cfg.Environment, addSource(cfg))
	if cfg.LogDir == config.LogDirStdout {
		logger.InitLogger(logCfg)
		logStartup(cfg, binary, "")
		return nil, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(cfg.LogDir, binary)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, binary, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(os.Stdout, logFile))
	logStartup(cfg, binary, logFileName)

	return logFile, nil
}

func addSource(cfg *config.Config) bool {
	return cfg.Environment == "dev" || cfg.Environment == "development"
}

func logStartup(cfg *config.Config, binary, file string) {
	slog.Info(LogMsgLoggingInitialized, "level", cfg.LogLevel, "format", cfg.LogFormat, "file", file)
	slog.Info(LogMsgStarting,
		"binary", binary,
		"environment", cfg.Environment,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"storage", cfg.Storage,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"catalog", cfg.CatalogPath)
}

// cleanupLogs removes old session logs for binary, keeping the most recent
// LogFileRetentionCount-1 so the new session brings it back to the limit.
func cleanupLogs(logDir, binary string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	prefix := binary + "_"
	var logFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if !entry.IsDir() && strings.HasPrefix(name, prefix) && strings.HasSuffix(name, LogFileExtension) {
			logFiles = append(logFiles, name)
		}
	}
	// timestamped names sort chronologically
	sort.Strings(logFiles)

	keep := LogFileRetentionCount - 1
	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i], err)
		}
	}
}
