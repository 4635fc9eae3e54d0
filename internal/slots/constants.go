package slots

// Payout defaults
const (
	ClassicThreeOfAKindMultiplier = 5
	ClassicPairMultiplier         = 2

	DefaultScatterThreeOfAKindMultiplier = 5
	DefaultScatterPairMultiplier         = 2

	DefaultJackpotSeed     = 1000
	MinJackpotContribution = 5

	// wild scoring weight of the triple table over the double table
	TripleScoreWeight = 10
)

// Auto-bet
const (
	AutoBetFraction = 0.05
	MinAutoBet      = 1
	MaxAutoBet      = 1000
)

// Outcome messages
const (
	MsgSpecialWin       = "Special combination! You won %d chips."
	MsgThreeOfAKind     = "Three of a kind! You won %d chips."
	MsgPair             = "Two of a kind! You won %d chips."
	MsgNoWin            = "No luck this time. Try again!"
	MsgWildJackpot      = "Three wilds! The progressive jackpot pays %d chips."
	MsgWildTriple       = "The wild completed three %s for %d chips."
	MsgWildPair         = "The wild completed a pair of %s for %d chips."
	MsgWildlessTriple   = "Three %s! You won %d chips."
	MsgWildlessPair     = "A pair of %s pays %d chips."
	MsgScatterFreeSpins = "Three %s! You earned %d free spins."
	MsgBoostBonus       = "Win boost x%g adds %d chips."
	MsgFreeSpinHeader   = "Free spin %d of %d"
	MsgBalance          = "Balance: %d chips"
	MsgJackpot          = "Jackpot: %d chips"
	MsgCreditLineUsed   = "Your credit line covered this bet and is now closed."
)

// Log messages
const (
	LogMsgSpinSettled        = "Spin settled"
	LogMsgJackpotAwarded     = "Jackpot awarded"
	LogMsgCreditLineConsumed = "Credit line consumed"
	LogMsgPublishFailed      = "Failed to publish spin event"
)

const (
	ErrMsgRecordSpinFailed = "failed to record spin: %w"
)
