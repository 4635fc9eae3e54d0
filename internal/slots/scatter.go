package slots

import (
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// ScatterBonus awards free spins on three scatter symbols
type ScatterBonus struct {
	noJackpot
	def domain.MachineDefinition
}

// NewScatterBonus builds a scatter-bonus engine from its definition
func NewScatterBonus(def domain.MachineDefinition) *ScatterBonus {
	if def.ThreeOfAKindMultiplier == 0 {
		def.ThreeOfAKindMultiplier = DefaultScatterThreeOfAKindMultiplier
	}
	if def.PairMultiplier == 0 {
		def.PairMultiplier = DefaultScatterPairMultiplier
	}
	return &ScatterBonus{def: def}
}

// Definition returns the machine definition
func (s *ScatterBonus) Definition() domain.MachineDefinition { return s.def }

// Evaluate scores the drawn symbols
func (s *ScatterBonus) Evaluate(symbols [3]string, bet, _ int64) Outcome {
	if countSymbol(symbols, s.def.ScatterSymbol) == 3 {
		return Outcome{
			Message:          fmt.Sprintf(MsgScatterFreeSpins, s.def.ScatterSymbol, s.def.FreeSpins),
			FreeSpinsAwarded: s.def.FreeSpins,
		}
	}

	if isTriple(symbols) {
		win := bet * s.def.ThreeOfAKindMultiplier
		return Outcome{Winnings: win, Message: fmt.Sprintf(MsgThreeOfAKind, win)}
	}

	if _, ok := pairSymbol(symbols); ok {
		win := bet * s.def.PairMultiplier
		return Outcome{Winnings: win, Message: fmt.Sprintf(MsgPair, win)}
	}

	return Outcome{Message: MsgNoWin}
}
