package kafka

const (
	HeaderEventType    = "event_type"
	HeaderEventVersion = "event_version"
	HeaderRequestID    = "request_id"
)

// Log messages
const (
	LogMsgSinkStarted    = "Kafka event sink started"
	LogMsgPublishFailed  = "Failed to publish event to Kafka"
	LogMsgEventPublished = "Event published to Kafka"
)

// Error messages
const (
	ErrMsgNewProducer = "creating kafka producer: %w"
	ErrMsgMarshal     = "marshaling event %s: %w"
	ErrMsgSend        = "sending event %s: %w"
)
