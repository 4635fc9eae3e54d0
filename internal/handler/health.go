package handler

import (
	"context"
	"net/http"
	"sort"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// ReadyTimeout bounds each dependency probe
const ReadyTimeout = 2 * time.Second

// Health states
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
)

// HealthResponse is the body of /healthz and /readyz
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Pinger reports whether a backing service answers
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingFunc adapts a function to Pinger
type PingFunc func(ctx context.Context) error

func (f PingFunc) Ping(ctx context.Context) error { return f(ctx) }

// HandleHealthz is the liveness probe
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: StatusOK})
	}
}

// HandleReadyz probes every named dependency. Nil entries are backends that
// are not configured (in-memory storage, no Redis) and count as ready.
func HandleReadyz(checks map[string]Pinger) http.HandlerFunc {
	names := make([]string, 0, len(checks))
	for name, p := range checks {
		if p != nil {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	return func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{Status: StatusOK}
		if len(names) > 0 {
			resp.Checks = make(map[string]string, len(names))
		}

		for _, name := range names {
			ctx, cancel := context.WithTimeout(r.Context(), ReadyTimeout)
			err := checks[name].Ping(ctx)
			cancel()

			if err != nil {
				logger.FromContext(r.Context()).Error("Readiness check failed", "dependency", name, "error", err)
				resp.Status = StatusUnavailable
				resp.Checks[name] = StatusUnavailable
				continue
			}
			resp.Checks[name] = StatusOK
		}

		status := http.StatusOK
		if resp.Status != StatusOK {
			status = http.StatusServiceUnavailable
		}
		respondJSON(w, status, resp)
	}
}
