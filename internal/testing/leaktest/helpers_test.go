package leaktest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recorder captures failures instead of failing the real test
type recorder struct {
	testing.TB
	failed bool
}

func (r *recorder) Helper() {}

func (r *recorder) Errorf(string, ...any) { r.failed = true }

func TestSnapshot(t *testing.T) {
	t.Run("CASE 1: goroutine exits in time", func(t *testing.T) {
		rec := &recorder{TB: t}
		check := Snapshot(rec)

		done := make(chan struct{})
		go func() {
			time.Sleep(50 * time.Millisecond)
			close(done)
		}()
		check(0)

		<-done
		assert.False(t, rec.failed)
	})

	t.Run("CASE 2: goroutine still running", func(t *testing.T) {
		rec := &recorder{TB: t}
		check := Snapshot(rec)

		stop := make(chan struct{})
		go func() { <-stop }()
		check(0)
		close(stop)

		assert.True(t, rec.failed)
	})

	t.Run("CASE 3: within tolerance", func(t *testing.T) {
		rec := &recorder{TB: t}
		check := Snapshot(rec)

		stop := make(chan struct{})
		go func() { <-stop }()
		check(1)
		close(stop)

		assert.False(t, rec.failed)
	})
}
