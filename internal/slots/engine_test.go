package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassic_Evaluate(t *testing.T) {
	engine := NewClassic(fruitMachine)

	tests := []struct {
		name    string
		symbols [3]string
		bet     int64
		want    int64
	}{
		{"CASE 1: special triplet pays its multiplier", [3]string{"💎", "💎", "💎"}, 100, 5000},
		{"CASE 2: special beats plain triple", [3]string{"🔔", "🔔", "🔔"}, 10, 100},
		{"CASE 3: plain three of a kind", [3]string{"🍒", "🍒", "🍒"}, 10, 50},
		{"CASE 4: pair in first two positions", [3]string{"🍋", "🍋", "🍇"}, 10, 20},
		{"CASE 5: pair in outer positions", [3]string{"🍋", "🍇", "🍋"}, 10, 20},
		{"CASE 6: no match", [3]string{"🍒", "🍋", "🍊"}, 10, 0},
		{"CASE 7: zero bet pays nothing", [3]string{"💎", "💎", "💎"}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := engine.Evaluate(tt.symbols, tt.bet, 0)
			assert.Equal(t, tt.want, out.Winnings)
			assert.False(t, out.JackpotConsumed)
			assert.NotEmpty(t, out.Message)
		})
	}
}

func TestWildJackpot_Evaluate(t *testing.T) {
	engine := NewWildJackpot(pharaohMachine)

	tests := []struct {
		name     string
		symbols  [3]string
		bet      int64
		pool     int64
		want     int64
		consumed bool
	}{
		{"CASE 1: three wilds pay multiplier plus pool", [3]string{"🗿", "🗿", "🗿"}, 100, 5000, 11000, true},
		{"CASE 2: three wilds on a free spin pay the pool", [3]string{"🗿", "🗿", "🗿"}, 0, 1200, 1200, true},
		{"CASE 3: two wilds complete a triple", [3]string{"🗿", "🐍", "🗿"}, 10, 0, 200, false},
		{"CASE 4: one wild completes a triple", [3]string{"🏺", "🗿", "🏺"}, 10, 0, 100, false},
		{"CASE 5: one wild makes a pair with the best symbol", [3]string{"𓇶", "🗿", "🐍"}, 10, 0, 20, false},
		{"CASE 6: plain triple without wild", [3]string{"👁️", "👁️", "👁️"}, 10, 0, 120, false},
		{"CASE 7: plain pair without wild", [3]string{"𓇶", "🐞", "𓇶"}, 10, 0, 10, false},
		{"CASE 8: nothing", [3]string{"🐍", "🐞", "👁️"}, 10, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := engine.Evaluate(tt.symbols, tt.bet, tt.pool)
			assert.Equal(t, tt.want, out.Winnings)
			assert.Equal(t, tt.consumed, out.JackpotConsumed)
		})
	}
}

func TestWildJackpot_BestSymbolTieKeepsFirst(t *testing.T) {
	def := pharaohMachine
	def.TriplePayouts = map[string]int64{"🐍": 10, "🐞": 10}
	def.DoublePayouts = map[string]int64{"🐍": 3, "🐞": 1}
	engine := NewWildJackpot(def)

	// scores: 🐍=103, 🐞=101
	assert.Equal(t, "🐍", engine.bestSymbol([3]string{"🐞", "🗿", "🐍"}))

	def.DoublePayouts = map[string]int64{"🐍": 1, "🐞": 1}
	engine = NewWildJackpot(def)
	assert.Equal(t, "🐞", engine.bestSymbol([3]string{"🐞", "🗿", "🐍"}))
}

func TestWildJackpot_JackpotContribution(t *testing.T) {
	engine := NewWildJackpot(pharaohMachine)

	assert.Equal(t, int64(0), engine.JackpotContribution(0))
	assert.Equal(t, int64(0), engine.JackpotContribution(-5))
	assert.Equal(t, int64(MinJackpotContribution), engine.JackpotContribution(1))
	assert.Equal(t, int64(MinJackpotContribution), engine.JackpotContribution(100))
	assert.Equal(t, int64(10), engine.JackpotContribution(1000))
	assert.Equal(t, int64(12), engine.JackpotContribution(1299))
}

func TestScatterBonus_Evaluate(t *testing.T) {
	engine := NewScatterBonus(pirateMachine)

	t.Run("CASE 1: three scatters award free spins and nothing else", func(t *testing.T) {
		out := engine.Evaluate([3]string{"🗺️", "🗺️", "🗺️"}, 50, 0)
		assert.Zero(t, out.Winnings)
		assert.Equal(t, 10, out.FreeSpinsAwarded)
	})

	t.Run("CASE 2: default multipliers apply", func(t *testing.T) {
		assert.Equal(t, int64(250), engine.Evaluate([3]string{"💰", "💰", "💰"}, 50, 0).Winnings)
		assert.Equal(t, int64(100), engine.Evaluate([3]string{"🦜", "⚓", "🦜"}, 50, 0).Winnings)
		assert.Zero(t, engine.Evaluate([3]string{"🦜", "⚓", "💰"}, 50, 0).Winnings)
	})

	t.Run("CASE 3: two scatters are an ordinary pair", func(t *testing.T) {
		out := engine.Evaluate([3]string{"🗺️", "🗺️", "⚓"}, 50, 0)
		assert.Equal(t, int64(100), out.Winnings)
		assert.Zero(t, out.FreeSpinsAwarded)
	})

	t.Run("CASE 4: no jackpot support", func(t *testing.T) {
		assert.False(t, engine.SupportsJackpot())
		assert.Zero(t, engine.JackpotContribution(1000))
	})
}

func TestAutoBet(t *testing.T) {
	assert.Equal(t, int64(50), AutoBet(1000))
	assert.Equal(t, int64(MinAutoBet), AutoBet(0))
	assert.Equal(t, int64(MinAutoBet), AutoBet(-400))
	assert.Equal(t, int64(MaxAutoBet), AutoBet(1_000_000))
}
