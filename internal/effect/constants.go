package effect

// LockKeyActivate prefixes the per-player activation lock
const LockKeyActivate = "effect:"

const (
	ErrMsgReadEffectFailed  = "failed to read effect: %w"
	ErrMsgSaveEffectFailed  = "failed to save effect: %w"
	ErrMsgClearEffectFailed = "failed to clear effect: %w"
	ErrMsgReapFailed        = "failed to reap expired effects: %w"
)

const (
	LogMsgEffectActivated = "Effect activated"
)
