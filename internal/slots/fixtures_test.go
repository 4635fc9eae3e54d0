package slots

import (
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

var (
	fruitMachine = domain.MachineDefinition{
		Key:   "fruit",
		Title: "Fruit Frenzy",
		Type:  domain.MachineTypeClassic,
		Reel:  []string{"🍒", "🍋", "🍊", "🍇", "💎", "🔔", "🍀"},
		SpecialPayouts: []domain.SpecialPayout{
			{Symbols: []string{"💎", "💎", "💎"}, Multiplier: 50},
			{Symbols: []string{"🍀", "🍀", "🍀"}, Multiplier: 20},
			{Symbols: []string{"🔔", "🔔", "🔔"}, Multiplier: 10},
		},
	}

	pharaohMachine = domain.MachineDefinition{
		Key:        "pharaoh",
		Title:      "Pharaoh's Gold",
		Type:       domain.MachineTypeWildJackpot,
		Reel:       []string{"🐍", "🐞", "👁️", "🏺", "𓇶", "🗿"},
		WildSymbol: "🗿",
		TriplePayouts: map[string]int64{
			"🐍": 20, "🐞": 16, "👁️": 12, "🏺": 10, "𓇶": 6,
		},
		DoublePayouts: map[string]int64{
			"🐍": 2, "🐞": 2, "👁️": 2, "🏺": 2, "𓇶": 1,
		},
		JackpotMultiplier: 60,
		JackpotPercent:    0.01,
		JackpotSeed:       1000,
	}

	pirateMachine = domain.MachineDefinition{
		Key:           "pirate",
		Title:         "Pirate's Plunder",
		Type:          domain.MachineTypeScatterBonus,
		Reel:          []string{"🏴‍☠️", "💰", "🦜", "⚓", "🗺️"},
		ScatterSymbol: "🗺️",
		FreeSpins:     10,
	}
)

func testMachines() []domain.MachineDefinition {
	return []domain.MachineDefinition{fruitMachine, pharaohMachine, pirateMachine}
}

// scriptedRNG returns the reel positions of symbols in order, then falls back to fallback
func scriptedRNG(reel []string, fallback int, symbols ...string) func(int) int {
	idx := make(map[string]int, len(reel))
	for i, s := range reel {
		idx[s] = i
	}
	queue := make([]int, 0, len(symbols))
	for _, s := range symbols {
		queue = append(queue, idx[s])
	}
	return func(n int) int {
		if len(queue) == 0 {
			return fallback % n
		}
		next := queue[0]
		queue = queue[1:]
		return next
	}
}
