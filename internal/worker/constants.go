package worker

// Log messages - worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// Log messages - effect sweeper
const (
	LogMsgSweeperScheduled       = "Effect sweep scheduled"
	LogMsgSweeperReaped          = "Expired effects reaped"
	LogMsgSweeperFailed          = "Effect sweep failed"
	LogMsgSweeperShuttingDown    = "Shutting down effect sweeper"
	LogMsgSweeperShutdown        = "Effect sweeper shutdown complete"
	LogMsgSweeperShutdownTimeout = "Effect sweeper shutdown timeout, a sweep may still be running"
)

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount      = 2
	TestQueueSize        = 10
	TestExpectedJobCount = 2
)
