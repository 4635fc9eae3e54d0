package botstatus

import "time"

const (
	StatusHealthy  = "healthy"
	StatusDegraded = "degraded"
)

const (
	APIProbeTimeout   = 2 * time.Second
	ReadHeaderTimeout = 5 * time.Second
	ShutdownTimeout   = 5 * time.Second
)

const (
	LogMsgServerStarting = "Starting bot health server"
	LogMsgServerFailed   = "Bot health server failed"
	LogMsgServerShutdown = "Bot health server shutdown failed"
)
