package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/slots"
)

func memoryConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Storage:             config.StorageMemory,
		StartingBalance:     config.DefaultStartingBalance,
		DailyBonus:          config.DefaultDailyBonus,
		DailyCooldown:       config.DefaultDailyCooldown,
		LeaderboardLimit:    config.DefaultLeaderboardLimit,
		EventMaxRetries:     1,
		EventRetryDelay:     10 * time.Millisecond,
		EventDeadLetterPath: filepath.Join(t.TempDir(), "deadletter.jsonl"),
		EffectSweepInterval: time.Hour,
	}
}

func TestInitializeStorage(t *testing.T) {
	t.Run("memory backend has no pool", func(t *testing.T) {
		storage, err := InitializeStorage(context.Background(), memoryConfig(t))
		require.NoError(t, err)
		assert.NotNil(t, storage.Store)
		assert.Nil(t, storage.Pool)
		assert.Nil(t, storage.Pinger())
		assert.Empty(t, ReadinessChecks(storage, &EventHandlers{}))
		storage.Close()
	})

	t.Run("unknown backend is rejected", func(t *testing.T) {
		cfg := memoryConfig(t)
		cfg.Storage = "sqlite"

		_, err := InitializeStorage(context.Background(), cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite")
	})
}

func TestInitializeServices_EndToEndOnMemory(t *testing.T) {
	ctx := context.Background()
	cfg := memoryConfig(t)

	// ARRANGE
	storage, err := InitializeStorage(ctx, cfg)
	require.NoError(t, err)
	bus, publisher, err := InitializeEventSystem(cfg)
	require.NoError(t, err)
	handlers, err := RegisterEventHandlers(ctx, cfg, bus)
	require.NoError(t, err)

	var spins atomic.Int32
	bus.Subscribe(event.Type(domain.EventTypeSpinCompleted), func(ctx context.Context, evt event.Event) error {
		spins.Add(1)
		return nil
	})

	svc, err := InitializeServices(cfg, config.DefaultCatalog(), storage.Store, publisher, handlers.Board)
	require.NoError(t, err)

	// ACT
	player, created, err := svc.Economy.Register(ctx, domain.PlatformAPI, "u-1", "alice")
	require.NoError(t, err)
	require.True(t, created)

	bet := int64(10)
	result, err := svc.Slots.Spin(ctx, slots.SpinRequest{PlayerID: player.ID, Bet: &bet})

	// ASSERT
	require.NoError(t, err)
	assert.Equal(t, svc.Registry.DefaultKey(), result.MachineKey)
	assert.Eventually(t, func() bool { return spins.Load() == 1 }, time.Second, 10*time.Millisecond)

	winners, err := svc.Winners.TopWinners(ctx, 5)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(winners), 1)

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	GracefulShutdown(shutdownCtx, ShutdownComponents{
		Services:           svc,
		Handlers:           handlers,
		ResilientPublisher: publisher,
		Storage:            storage,
	})
}

func TestCleanupLogs_KeepsNewestSessions(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 12; i++ {
		name := filepath.Join(dir, "server_2026-01-"+twoDigits(i+1)+"_00-00-00.log")
		require.NoError(t, os.WriteFile(name, nil, 0o600))
	}
	// another binary's logs are untouched
	require.NoError(t, os.WriteFile(filepath.Join(dir, "discord_2026-01-01_00-00-00.log"), nil, 0o600))

	cleanupLogs(dir, "server")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	var server []string
	for _, e := range entries {
		if filepath.Ext(e.Name()) == LogFileExtension && e.Name()[:6] == "server" {
			server = append(server, e.Name())
		}
	}
	assert.Len(t, server, LogFileRetentionCount-1)
	assert.NotContains(t, server, "server_2026-01-01_00-00-00.log")
	assert.FileExists(t, filepath.Join(dir, "discord_2026-01-01_00-00-00.log"))
}

func twoDigits(n int) string {
	return string(rune('0'+n/10)) + string(rune('0'+n%10))
}

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	t.Run("CASE 1: session file in LOG_DIR", func(t *testing.T) {
		cfg := &config.Config{LogLevel: "debug", LogFormat: "json", LogDir: t.TempDir(), Environment: "test"}

		f, err := SetupLogger(cfg, config.BinaryTelegram)

		require.NoError(t, err)
		require.NotNil(t, f)
		defer f.Close()
		assert.Contains(t, filepath.Base(f.Name()), config.BinaryTelegram+"_")
		data, err := os.ReadFile(f.Name())
		require.NoError(t, err)
		assert.Contains(t, string(data), LogMsgLoggingInitialized)
	})

	t.Run("CASE 2: stdout only", func(t *testing.T) {
		cfg := &config.Config{LogLevel: "info", LogFormat: "text", LogDir: config.LogDirStdout}

		f, err := SetupLogger(cfg, config.BinaryServer)

		require.NoError(t, err)
		assert.Nil(t, f)
	})
}
