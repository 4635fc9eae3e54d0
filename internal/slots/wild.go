package slots

import (
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/utils"
)

// WildJackpot substitutes a wild symbol and pays a progressive pool on three wilds
type WildJackpot struct {
	def domain.MachineDefinition
}

// NewWildJackpot builds a wild-jackpot engine from its definition
func NewWildJackpot(def domain.MachineDefinition) *WildJackpot {
	return &WildJackpot{def: def}
}

// Definition returns the machine definition
func (w *WildJackpot) Definition() domain.MachineDefinition { return w.def }

// SupportsJackpot is always true for this family
func (w *WildJackpot) SupportsJackpot() bool { return true }

// JackpotContribution is floor(bet*pct), never below the minimum for a positive bet
func (w *WildJackpot) JackpotContribution(bet int64) int64 {
	if bet <= 0 {
		return 0
	}
	c := utils.FloorToInt64(float64(bet) * w.def.JackpotPercent)
	if c < 1 {
		c = 1
	}
	if c < MinJackpotContribution {
		c = MinJackpotContribution
	}
	return c
}

// Evaluate scores the drawn symbols against the current pool
func (w *WildJackpot) Evaluate(symbols [3]string, bet, pool int64) Outcome {
	wild := w.def.WildSymbol
	wilds := countSymbol(symbols, wild)

	if wilds == 3 {
		win := bet*w.def.JackpotMultiplier + pool
		return Outcome{
			Winnings:        win,
			Message:         fmt.Sprintf(MsgWildJackpot, win),
			JackpotConsumed: true,
		}
	}

	if wilds > 0 {
		best := w.bestSymbol(symbols)
		matches := countSymbol(symbols, best) + wilds

		var mult int64
		msg := MsgWildPair
		if matches >= 3 {
			mult = w.def.TriplePayouts[best]
			msg = MsgWildTriple
		} else if matches == 2 {
			mult = w.def.DoublePayouts[best]
		}
		if mult > 0 {
			win := bet * mult
			return Outcome{Winnings: win, Message: fmt.Sprintf(msg, best, win)}
		}
		return Outcome{Message: MsgNoWin}
	}

	if isTriple(symbols) {
		if mult := w.def.TriplePayouts[symbols[0]]; mult > 0 {
			win := bet * mult
			return Outcome{Winnings: win, Message: fmt.Sprintf(MsgWildlessTriple, symbols[0], win)}
		}
		return Outcome{Message: MsgNoWin}
	}

	if sym, ok := pairSymbol(symbols); ok {
		if mult := w.def.DoublePayouts[sym]; mult > 0 {
			win := bet * mult
			return Outcome{Winnings: win, Message: fmt.Sprintf(MsgWildlessPair, sym, win)}
		}
	}

	return Outcome{Message: MsgNoWin}
}

// bestSymbol picks the non-wild symbol with the highest score; the earliest position wins ties
func (w *WildJackpot) bestSymbol(symbols [3]string) string {
	best := ""
	bestScore := int64(-1)
	for _, s := range symbols {
		if s == w.def.WildSymbol {
			continue
		}
		score := w.def.TriplePayouts[s]*TripleScoreWeight + w.def.DoublePayouts[s]
		if score > bestScore {
			best, bestScore = s, score
		}
	}
	return best
}
