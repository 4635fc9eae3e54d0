package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/osse101/CasinoBot_Go/internal/config"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/kafka"
	"github.com/osse101/CasinoBot_Go/internal/leaderboard"
	"github.com/osse101/CasinoBot_Go/internal/metrics"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// EventHandlers are the subscribers created at startup. Optional members are nil
// when their backend is not configured.
type EventHandlers struct {
	Board        leaderboard.WinnersBoard
	RecorderPool *worker.Pool
	KafkaSink    *kafka.Sink
	RedisClient  *redis.Client
}

// RegisterEventHandlers sets up all event subscribers:
// - Metrics collector (event-based counters)
// - Redis winners board recorder, when REDIS_ADDR is set
// - Kafka event sink, when KAFKA_BROKERS is set
func RegisterEventHandlers(ctx context.Context, cfg *config.Config, bus event.Bus) (*EventHandlers, error) {
	handlers := &EventHandlers{}

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(bus); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if cfg.RedisAddr != "" {
		dialCtx, cancel := context.WithTimeout(ctx, RedisDialTimeout)
		client, err := leaderboard.Dial(dialCtx, cfg.RedisAddr)
		cancel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedDialRedis, err)
		}
		handlers.RedisClient = client
		handlers.Board = leaderboard.NewRedisBoard(client)

		handlers.RecorderPool = worker.NewPool(RecorderWorkers, RecorderQueueSize)
		handlers.RecorderPool.Start()
		leaderboard.NewRecorder(handlers.Board, handlers.RecorderPool).Register(bus)
		slog.Info(LogMsgRedisBoardRegistered, "addr", cfg.RedisAddr)
	} else {
		slog.Info(LogMsgRedisBoardDisabled)
	}

	if len(cfg.KafkaBrokers) > 0 {
		sink, err := kafka.NewSink(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			handlers.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateKafkaSink, err)
		}
		sink.Register(bus)
		handlers.KafkaSink = sink
		slog.Info(LogMsgKafkaSinkRegistered, "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		slog.Info(LogMsgKafkaSinkDisabled)
	}

	return handlers, nil
}

// Close releases the optional backends
func (h *EventHandlers) Close() {
	if h.RecorderPool != nil {
		h.RecorderPool.Stop()
	}
	if h.KafkaSink != nil {
		if err := h.KafkaSink.Close(); err != nil {
			slog.Error(ClosableNameKafkaSink+LogMsgCloseFailed, "error", err)
		}
	}
	if h.RedisClient != nil {
		if err := h.RedisClient.Close(); err != nil {
			slog.Error(ClosableNameRedisClient+LogMsgCloseFailed, "error", err)
		}
	}
}
