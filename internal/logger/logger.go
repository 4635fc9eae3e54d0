// Package logger configures slog and carries request and player context.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
)

type ctxKey int

const (
	requestIDKey ctxKey = iota
	playerKey
)

type player struct {
	platform   string
	platformID string
}

// InitLogger installs the default slog logger writing to stdout
func InitLogger(cfg Config) {
	InitLoggerWithWriter(cfg, os.Stdout)
}

// InitLoggerWithWriter installs the default slog logger writing to w
func InitLoggerWithWriter(cfg Config, w io.Writer) {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}

	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler).With(cfg.BaseAttributes()...))
}

// GenerateRequestID creates a new id for tracing a request
func GenerateRequestID() string {
	return uuid.NewString()
}

// NormalizeRequestID returns id when it is usable, otherwise a fresh one
func NormalizeRequestID(id string) string {
	if id == "" || len(id) > MaxRequestIDLength {
		return GenerateRequestID()
	}
	return id
}

// WithRequestID returns a context carrying requestID
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFromContext extracts the request id, if present
func RequestIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok && id != ""
}

// WithPlayer tags ctx with the chat account a request acts for
func WithPlayer(ctx context.Context, platform, platformID string) context.Context {
	return context.WithValue(ctx, playerKey, player{platform: platform, platformID: platformID})
}

// FromContext returns the default logger with the request id and player of ctx attached
func FromContext(ctx context.Context) *slog.Logger {
	log := slog.Default()
	if id, ok := RequestIDFromContext(ctx); ok {
		log = log.With(AttrKeyRequestID, id)
	}
	if p, ok := ctx.Value(playerKey).(player); ok {
		log = log.With(AttrKeyPlatform, p.platform, AttrKeyPlatformID, p.platformID)
	}
	return log
}

func Debug(msg string, args ...any) { slog.Default().Debug(msg, args...) }

func Info(msg string, args ...any) { slog.Default().Info(msg, args...) }

func Warn(msg string, args ...any) { slog.Default().Warn(msg, args...) }

func Error(msg string, args ...any) { slog.Default().Error(msg, args...) }
