package leaderboard

// Redis keys
const (
	KeyWinners = "casino:leaderboard:winners"
)

const (
	DefaultLimit = 5
	MaxLimit     = 100
)

// Log messages
const (
	LogMsgRedisUnavailable = "Redis winners board unavailable, falling back to spin log"
	LogMsgRecordWinFailed  = "Failed to record win on leaderboard"
	LogMsgRecordQueueFull  = "Leaderboard queue full, win not recorded"
)

// Error messages
const (
	ErrMsgRecordWin   = "recording win: %w"
	ErrMsgTopWinners  = "getting top winners: %w"
	ErrMsgPingRedis   = "connecting to redis: %w"
	ErrMsgFallbackErr = "loading winners from spin log: %w"
)
