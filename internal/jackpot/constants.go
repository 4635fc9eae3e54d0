package jackpot

const (
	ErrMsgContributeFailed = "failed to contribute to jackpot %s: %w"
	ErrMsgAwardFailed      = "failed to award jackpot %s: %w"
	ErrMsgPeekFailed       = "failed to read jackpot %s: %w"
)
