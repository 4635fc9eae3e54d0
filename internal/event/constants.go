package event

import "time"

// EventSchemaVersion is stamped on every event; bump it when a payload changes shape
const EventSchemaVersion = "1.0"

// Retries
const (
	RetryQueueBufferSize = 1000
	RetryInitialDelay    = 2 * time.Second
	RetryMaxDelay        = 5 * time.Minute
)

// Dead-letter log
const (
	DeadLetterFilePermissions = 0644
	DeadLetterFormat          = "casino-deadletter/1"
)

// Log and error messages
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDroppedShutdown  = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown  = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout       = "Resilient publisher shutdown timed out"
	LogMsgEventDeadLettered     = "Event written to dead-letter log"

	ErrMsgHandlersFailed = "%d handler(s) failed for %s: %w"
)

// CalculateRetryDelay doubles baseDelay per attempt (1-based), capped at RetryMaxDelay
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	d := baseDelay
	for i := 1; i < attempt && d < RetryMaxDelay; i++ {
		d *= 2
	}
	return min(d, RetryMaxDelay)
}
