package slots

import (
	"fmt"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// FormatReels renders drawn symbols as a single reel line
func FormatReels(symbols [3]string) string {
	return "[ " + strings.Join(symbols[:], " | ") + " ]"
}

// RenderLines builds the plain-text transcript of a settled spin
func RenderLines(result *domain.SpinResult) []string {
	lines := make([]string, 0, len(result.Rounds)*3+3)
	freeTotal := 0
	for _, r := range result.Rounds {
		if r.FreeSpin {
			freeTotal++
		}
	}

	if result.CreditLineUsed {
		lines = append(lines, MsgCreditLineUsed)
	}

	freeIdx := 0
	for _, r := range result.Rounds {
		if r.FreeSpin {
			freeIdx++
			lines = append(lines, fmt.Sprintf(MsgFreeSpinHeader, freeIdx, freeTotal))
		}
		lines = append(lines, FormatReels(r.Symbols), r.Message)
		if r.BoostBonus > 0 {
			lines = append(lines, fmt.Sprintf(MsgBoostBonus, r.BoostMultiplier, r.BoostBonus))
		}
	}

	lines = append(lines, fmt.Sprintf(MsgBalance, result.Balance))
	if result.Jackpot != nil {
		lines = append(lines, fmt.Sprintf(MsgJackpot, *result.Jackpot))
	}
	return lines
}
