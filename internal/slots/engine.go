package slots

import (
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Outcome is the deterministic evaluation of three drawn symbols
type Outcome struct {
	Winnings         int64
	Message          string
	JackpotConsumed  bool
	FreeSpinsAwarded int
}

// Engine evaluates spins for one machine family
type Engine interface {
	Definition() domain.MachineDefinition
	Evaluate(symbols [3]string, bet, pool int64) Outcome
	SupportsJackpot() bool
	JackpotContribution(bet int64) int64
}

// noJackpot is embedded by engines without a progressive pool
type noJackpot struct{}

func (noJackpot) SupportsJackpot() bool             { return false }
func (noJackpot) JackpotContribution(_ int64) int64 { return 0 }

func countSymbol(symbols [3]string, s string) int {
	n := 0
	for _, v := range symbols {
		if v == s {
			n++
		}
	}
	return n
}

func isTriple(symbols [3]string) bool {
	return symbols[0] == symbols[1] && symbols[1] == symbols[2]
}

// pairSymbol returns the symbol that appears exactly twice, if any
func pairSymbol(symbols [3]string) (string, bool) {
	switch {
	case isTriple(symbols):
		return "", false
	case symbols[0] == symbols[1], symbols[0] == symbols[2]:
		return symbols[0], true
	case symbols[1] == symbols[2]:
		return symbols[1], true
	}
	return "", false
}
