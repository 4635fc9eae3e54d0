// Package delivery sends chat replies with bounded retries. A reply that still
// fails after the last attempt is dropped; ledger state is never rolled back.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/CasinoBot_Go/internal/metrics"
)

// ErrDropped wraps the last error of a reply that was given up on
var ErrDropped = errors.New("delivery dropped")

// Config bounds the retry schedule
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Deliverer retries sends for one transport
type Deliverer struct {
	transport string
	cfg       Config
	transient func(error) bool
}

// Option customizes a Deliverer
type Option func(*Deliverer)

// WithTransient sets the classifier for errors worth retrying.
// By default every error except context cancellation is retried.
func WithTransient(fn func(error) bool) Option {
	return func(d *Deliverer) {
		d.transient = fn
	}
}

// New creates a deliverer for the named transport
func New(transport string, cfg Config, opts ...Option) *Deliverer {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = DefaultBaseDelay
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = DefaultMaxDelay
	}
	d := &Deliverer{transport: transport, cfg: cfg, transient: defaultTransient}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func defaultTransient(err error) bool {
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

// Send runs op until it succeeds, fails permanently, or runs out of attempts
func (d *Deliverer) Send(ctx context.Context, op func(ctx context.Context) error) error {
	attempt := 0
	wrapped := func() error {
		attempt++
		err := op(ctx)
		if err != nil && !d.transient(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	err := backoff.RetryNotify(wrapped, d.schedule(ctx), func(err error, next time.Duration) {
		slog.Debug(LogMsgRetrying, "transport", d.transport, "attempt", attempt, "next", next, "error", err)
	})
	if err == nil {
		return nil
	}

	metrics.DeliveryDropped.WithLabelValues(d.transport).Inc()
	slog.Warn(LogMsgDropped, "transport", d.transport, "attempts", attempt, "error", err)
	return fmt.Errorf("%w: %w", ErrDropped, err)
}

func (d *Deliverer) schedule(ctx context.Context) backoff.BackOff {
	exp := backoff.NewExponentialBackOff(
		backoff.WithInitialInterval(d.cfg.BaseDelay),
		backoff.WithMaxInterval(d.cfg.MaxDelay),
		backoff.WithMaxElapsedTime(0),
	)
	return backoff.WithContext(backoff.WithMaxRetries(exp, uint64(d.cfg.MaxAttempts-1)), ctx)
}
