package delivery

import "time"

const (
	DefaultBaseDelay = 500 * time.Millisecond
	DefaultMaxDelay  = 10 * time.Second
)

const (
	LogMsgRetrying = "Retrying chat delivery"
	LogMsgDropped  = "Dropping chat reply after retries"
)
