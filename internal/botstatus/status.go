// Package botstatus tracks chat bot liveness and serves it over HTTP.
package botstatus

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// HealthStatus represents a bot's health status
type HealthStatus struct {
	Status           string    `json:"status"`
	Transport        string    `json:"transport"`
	Uptime           string    `json:"uptime"`
	Connected        bool      `json:"connected"`
	CommandsReceived int64     `json:"commands_received"`
	LastCommandTime  time.Time `json:"last_command_time,omitempty"`
	APIReachable     bool      `json:"api_reachable"`
}

// Tracker counts handled commands
type Tracker struct {
	transport string
	started   time.Time
	commands  atomic.Int64

	mu          sync.Mutex
	lastCommand time.Time
}

// NewTracker creates a tracker for the named transport
func NewTracker(transport string) *Tracker {
	return &Tracker{transport: transport, started: time.Now()}
}

// RecordCommand increments the command counter
func (t *Tracker) RecordCommand() {
	t.commands.Add(1)
	t.mu.Lock()
	t.lastCommand = time.Now()
	t.mu.Unlock()
}

// Commands returns the number of commands recorded
func (t *Tracker) Commands() int64 {
	return t.commands.Load()
}

// Snapshot builds the status report from the given probes
func (t *Tracker) Snapshot(connected, apiReachable bool) HealthStatus {
	t.mu.Lock()
	last := t.lastCommand
	t.mu.Unlock()

	status := StatusHealthy
	if !connected || !apiReachable {
		status = StatusDegraded
	}
	return HealthStatus{
		Status:           status,
		Transport:        t.transport,
		Uptime:           time.Since(t.started).Round(time.Second).String(),
		Connected:        connected,
		CommandsReceived: t.commands.Load(),
		LastCommandTime:  last,
		APIReachable:     apiReachable,
	}
}

// Probes report the liveness of the bot's dependencies
type Probes struct {
	Connected func() bool
	APIHealth func(ctx context.Context) error
}

// Handler serves the health report; degraded bots answer 503
func (t *Tracker) Handler(p Probes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		connected := p.Connected != nil && p.Connected()

		apiReachable := false
		if p.APIHealth != nil {
			ctx, cancel := context.WithTimeout(r.Context(), APIProbeTimeout)
			apiReachable = p.APIHealth(ctx) == nil
			cancel()
		}

		health := t.Snapshot(connected, apiReachable)
		w.Header().Set("Content-Type", "application/json")
		if health.Status != StatusHealthy {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(health)
	}
}

// HTTPServer exposes /healthz for a bot process
type HTTPServer struct {
	server *http.Server
}

// NewHTTPServer creates the health server on port
func NewHTTPServer(port int, t *Tracker, p Probes) *HTTPServer {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", t.Handler(p))
	return &HTTPServer{server: &http.Server{
		Addr:              ":" + strconv.Itoa(port),
		Handler:           mux,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}}
}

// Start starts the HTTP server in the background
func (s *HTTPServer) Start() {
	go func() {
		slog.Info(LogMsgServerStarting, "addr", s.server.Addr)
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error(LogMsgServerFailed, "error", err)
		}
	}()
}

// Stop shuts the HTTP server down
func (s *HTTPServer) Stop(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		slog.Error(LogMsgServerShutdown, "error", err)
	}
}
