package slots

import "github.com/osse101/CasinoBot_Go/internal/utils"

// AutoBet is the stake used when a player does not name one
func AutoBet(balance int64) int64 {
	return utils.ClampInt64(utils.RoundToInt64(float64(balance)*AutoBetFraction), MinAutoBet, MaxAutoBet)
}
