package logger

// Log levels accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Log formats accepted in LOG_FORMAT
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Attribute keys stamped on log lines
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyPlatform    = "platform"
	AttrKeyPlatformID  = "platform_id"
)

// RequestIDHeader carries a request id from the chat bots to the API
const RequestIDHeader = "X-Request-ID"

// MaxRequestIDLength bounds ids accepted from callers
const MaxRequestIDLength = 64
