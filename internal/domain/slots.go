package domain

import "time"

// MachineType selects the payout engine family of a machine
type MachineType string

// Machine families
const (
	MachineTypeClassic      MachineType = "classic"
	MachineTypeWildJackpot  MachineType = "wild_jackpot"
	MachineTypeScatterBonus MachineType = "scatter_bonus"
)

// SpecialPayout is an exact left-to-right symbol combination with its multiplier
type SpecialPayout struct {
	Symbols    []string `yaml:"symbols" json:"symbols" validate:"len=3,dive,required"`
	Multiplier int64    `yaml:"multiplier" json:"multiplier" validate:"gt=0"`
}

// MachineDefinition is the static configuration of one slot machine.
// Only the fields of the selected Type are used.
type MachineDefinition struct {
	Key         string      `yaml:"key" json:"key" validate:"required,lowercase,excludesall= "`
	Title       string      `yaml:"title" json:"title" validate:"required"`
	Description string      `yaml:"description" json:"description"`
	Type        MachineType `yaml:"type" json:"type" validate:"required,oneof=classic wild_jackpot scatter_bonus"`
	Reel        []string    `yaml:"reel" json:"reel" validate:"required,min=1,dive,required"`

	// classic
	SpecialPayouts []SpecialPayout `yaml:"special_payouts,omitempty" json:"special_payouts,omitempty" validate:"dive"`

	// wild_jackpot
	WildSymbol        string           `yaml:"wild_symbol,omitempty" json:"wild_symbol,omitempty" validate:"required_if=Type wild_jackpot"`
	TriplePayouts     map[string]int64 `yaml:"triple_payouts,omitempty" json:"triple_payouts,omitempty"`
	DoublePayouts     map[string]int64 `yaml:"double_payouts,omitempty" json:"double_payouts,omitempty"`
	JackpotMultiplier int64            `yaml:"jackpot_multiplier,omitempty" json:"jackpot_multiplier,omitempty" validate:"gte=0"`
	JackpotPercent    float64          `yaml:"jackpot_percent,omitempty" json:"jackpot_percent,omitempty" validate:"gte=0,lte=1"`
	JackpotSeed       int64            `yaml:"jackpot_seed,omitempty" json:"jackpot_seed,omitempty" validate:"gte=0"`

	// scatter_bonus
	ScatterSymbol          string `yaml:"scatter_symbol,omitempty" json:"scatter_symbol,omitempty" validate:"required_if=Type scatter_bonus"`
	FreeSpins              int    `yaml:"free_spins,omitempty" json:"free_spins,omitempty" validate:"gte=0"`
	ThreeOfAKindMultiplier int64  `yaml:"three_of_a_kind_multiplier,omitempty" json:"three_of_a_kind_multiplier,omitempty" validate:"gte=0"`
	PairMultiplier         int64  `yaml:"pair_multiplier,omitempty" json:"pair_multiplier,omitempty" validate:"gte=0"`
}

// SpinRound is the settlement of one paid spin or one free spin
type SpinRound struct {
	Symbols          [3]string `json:"symbols"`
	Bet              int64     `json:"bet"`
	Winnings         int64     `json:"winnings"`
	BoostBonus       int64     `json:"boost_bonus"`
	BoostMultiplier  float64   `json:"boost_multiplier,omitempty"`
	JackpotWon       int64     `json:"jackpot_won,omitempty"`
	FreeSpin         bool      `json:"free_spin"`
	FreeSpinsAwarded int       `json:"free_spins_awarded,omitempty"`
	Message          string    `json:"message"`
}

// TotalWin is the base winnings plus the boost bonus of the round
func (r SpinRound) TotalWin() int64 {
	return r.Winnings + r.BoostBonus
}

// SpinResult is the outcome of one spin request including its free-spin cascade
type SpinResult struct {
	PlayerID       string      `json:"player_id"`
	MachineKey     string      `json:"machine_key"`
	MachineTitle   string      `json:"machine_title"`
	Bet            int64       `json:"bet"`
	Rounds         []SpinRound `json:"rounds"`
	TotalWinnings  int64       `json:"total_winnings"`
	Balance        int64       `json:"balance"`
	CreditLineUsed bool        `json:"credit_line_used"`
	Jackpot        *int64      `json:"jackpot,omitempty"`
	Lines          []string    `json:"lines"`
	SettledAt      time.Time   `json:"settled_at"`
}

// SpinRecord is an append-only log entry of a settled round
type SpinRecord struct {
	ID          int64     `json:"id"`
	PlayerID    string    `json:"player_id"`
	MachineKey  string    `json:"machine_key"`
	Bet         int64     `json:"bet"`
	TotalWin    int64     `json:"total_win"`
	WasFreeSpin bool      `json:"was_free_spin"`
	CreatedAt   time.Time `json:"created_at"`
}

// SpinStats aggregates spin records
type SpinStats struct {
	Spins      int   `json:"spins"`
	FreeSpins  int   `json:"free_spins"`
	Wagered    int64 `json:"wagered"`
	Won        int64 `json:"won"`
	BiggestWin int64 `json:"biggest_win"`
}

// Net returns winnings minus wagers
func (s SpinStats) Net() int64 {
	return s.Won - s.Wagered
}

// Add folds one record into the stats
func (s *SpinStats) Add(rec SpinRecord) {
	s.Spins++
	if rec.WasFreeSpin {
		s.FreeSpins++
	}
	s.Wagered += rec.Bet
	s.Won += rec.TotalWin
	if rec.TotalWin > s.BiggestWin {
		s.BiggestWin = rec.TotalWin
	}
}

// Merge folds another aggregate into s
func (s *SpinStats) Merge(o SpinStats) {
	s.Spins += o.Spins
	s.FreeSpins += o.FreeSpins
	s.Wagered += o.Wagered
	s.Won += o.Won
	if o.BiggestWin > s.BiggestWin {
		s.BiggestWin = o.BiggestWin
	}
}

// PlayerAnalytics is the analytics report unlocked by ANALYTICS_ACCESS
type PlayerAnalytics struct {
	PlayerID        string               `json:"player_id"`
	Overall         SpinStats            `json:"overall"`
	ByMachine       map[string]SpinStats `json:"by_machine"`
	AccessExpiresAt time.Time            `json:"access_expires_at"`
}

// JackpotSnapshot is the display value of one jackpot pool
type JackpotSnapshot struct {
	MachineKey string `json:"machine_key"`
	Title      string `json:"title"`
	Amount     int64  `json:"amount"`
}
