package delivery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CasinoBot_Go/internal/metrics"
)

var errFlaky = errors.New("gateway timeout")

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func TestSend_SucceedsFirstTry(t *testing.T) {
	d := New("test-ok", fastConfig(3))
	calls := 0

	err := d.Send(context.Background(), func(context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.DeliveryDropped.WithLabelValues("test-ok")))
}

func TestSend_RetriesTransientErrors(t *testing.T) {
	d := New("test-retry", fastConfig(3))
	calls := 0

	err := d.Send(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errFlaky
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestSend_DropsAfterMaxAttempts(t *testing.T) {
	// ARRANGE
	d := New("test-drop", fastConfig(3))
	calls := 0

	// ACT
	err := d.Send(context.Background(), func(context.Context) error {
		calls++
		return errFlaky
	})

	// ASSERT
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDropped)
	assert.ErrorIs(t, err, errFlaky)
	assert.Equal(t, 3, calls)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.DeliveryDropped.WithLabelValues("test-drop")))
}

func TestSend_PermanentErrorIsNotRetried(t *testing.T) {
	errForbidden := errors.New("missing access")
	d := New("test-permanent", fastConfig(5), WithTransient(func(err error) bool {
		return !errors.Is(err, errForbidden)
	}))
	calls := 0

	err := d.Send(context.Background(), func(context.Context) error {
		calls++
		return errForbidden
	})

	assert.ErrorIs(t, err, ErrDropped)
	assert.ErrorIs(t, err, errForbidden)
	assert.Equal(t, 1, calls)
}

func TestSend_StopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	d := New("test-cancel", Config{MaxAttempts: 10, BaseDelay: time.Hour})
	calls := 0

	err := d.Send(ctx, func(context.Context) error {
		calls++
		cancel()
		return errFlaky
	})

	assert.ErrorIs(t, err, ErrDropped)
	assert.Equal(t, 1, calls)
}

func TestNew_Defaults(t *testing.T) {
	d := New("test-defaults", Config{})

	assert.Equal(t, 1, d.cfg.MaxAttempts)
	assert.Equal(t, DefaultBaseDelay, d.cfg.BaseDelay)
	assert.Equal(t, DefaultMaxDelay, d.cfg.MaxDelay)
}
