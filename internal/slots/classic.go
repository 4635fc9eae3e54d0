package slots

import (
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Classic pays special triplets first, then any three or two of a kind
type Classic struct {
	noJackpot
	def     domain.MachineDefinition
	special map[[3]string]int64
}

// NewClassic builds a classic engine from its definition
func NewClassic(def domain.MachineDefinition) *Classic {
	special := make(map[[3]string]int64, len(def.SpecialPayouts))
	for _, sp := range def.SpecialPayouts {
		if len(sp.Symbols) != 3 {
			continue
		}
		special[[3]string{sp.Symbols[0], sp.Symbols[1], sp.Symbols[2]}] = sp.Multiplier
	}
	return &Classic{def: def, special: special}
}

// Definition returns the machine definition
func (c *Classic) Definition() domain.MachineDefinition { return c.def }

// Evaluate scores the drawn symbols
func (c *Classic) Evaluate(symbols [3]string, bet, _ int64) Outcome {
	if mult, ok := c.special[symbols]; ok && mult > 0 {
		win := bet * mult
		return Outcome{Winnings: win, Message: fmt.Sprintf(MsgSpecialWin, win)}
	}

	if isTriple(symbols) {
		win := bet * ClassicThreeOfAKindMultiplier
		return Outcome{Winnings: win, Message: fmt.Sprintf(MsgThreeOfAKind, win)}
	}

	if _, ok := pairSymbol(symbols); ok {
		win := bet * ClassicPairMultiplier
		return Outcome{Winnings: win, Message: fmt.Sprintf(MsgPair, win)}
	}

	return Outcome{Message: MsgNoWin}
}
