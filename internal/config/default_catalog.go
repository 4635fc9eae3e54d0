package config

import (
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// DefaultCatalog is used when no catalog file is configured
func DefaultCatalog() *Catalog {
	return &Catalog{
		Machines: []domain.MachineDefinition{
			{
				Key:         "fruit",
				Title:       "Fruit Cocktail",
				Description: "A classic machine with simple rules and quick wins.",
				Type:        domain.MachineTypeClassic,
				Reel:        []string{"🍒", "🍋", "🍊", "🍇", "💎", "🔔", "🍀"},
				SpecialPayouts: []domain.SpecialPayout{
					{Symbols: []string{"💎", "💎", "💎"}, Multiplier: 50},
					{Symbols: []string{"🍀", "🍀", "🍀"}, Multiplier: 20},
					{Symbols: []string{"🔔", "🔔", "🔔"}, Multiplier: 10},
				},
			},
			{
				Key:         "pharaoh",
				Title:       "Pharaoh's Gold",
				Description: "The Pharaoh is wild: he stands in for any symbol and doubles the win.",
				Type:        domain.MachineTypeWildJackpot,
				Reel:        []string{"🐍", "🐞", "👁️", "🏺", "𓇶", "🗿"},
				WildSymbol:  "🗿",
				TriplePayouts: map[string]int64{
					"🐍": 20, "🐞": 16, "👁️": 12, "🏺": 10, "𓇶": 6,
				},
				DoublePayouts: map[string]int64{
					"🐍": 2, "🐞": 2, "👁️": 2, "🏺": 2, "𓇶": 1,
				},
				JackpotMultiplier: 60,
				JackpotPercent:    0.01,
				JackpotSeed:       1000,
			},
			{
				Key:                    "pirate",
				Title:                  "Pirate's Treasure",
				Description:            "Collect 3 maps 🗺️ to earn 10 free spins!",
				Type:                   domain.MachineTypeScatterBonus,
				Reel:                   []string{"🏴‍☠️", "💰", "🦜", "⚓", "🗺️"},
				ScatterSymbol:          "🗺️",
				FreeSpins:              10,
				ThreeOfAKindMultiplier: 5,
				PairMultiplier:         2,
			},
			{
				Key:         "space",
				Title:       "Cosmic Fortune",
				Description: "Line up 3 black holes 🌌 for the intergalactic jackpot!",
				Type:        domain.MachineTypeWildJackpot,
				Reel:        []string{"🪐", "🚀", "👽", "☄️", "✨", "🌌"},
				WildSymbol:  "🌌",
				TriplePayouts: map[string]int64{
					"🪐": 25, "🚀": 18, "👽": 14, "☄️": 10, "✨": 8,
				},
				DoublePayouts: map[string]int64{
					"🪐": 2, "🚀": 2, "👽": 2, "☄️": 2, "✨": 1,
				},
				JackpotMultiplier: 75,
				JackpotPercent:    0.015,
				JackpotSeed:       1000,
			},
		},
		Items: []domain.ShopItem{
			{
				ID:          "credit_line",
				Name:        "Credit Line",
				Description: "Lets one spin take your balance down to -500 chips.",
				Type:        domain.ItemTypeCreditLine,
				Price:       250,
				CreditLimit: 500,
			},
			{
				ID:          "lucky_charm",
				Name:        "Lucky Charm",
				Description: "Doubles every slot win for one hour.",
				Type:        domain.ItemTypeWinBoost,
				Price:       400,
				Multiplier:  2,
				Duration:    time.Hour,
			},
			{
				ID:          "high_roller",
				Name:        "High Roller",
				Description: "Triples every slot win for fifteen minutes.",
				Type:        domain.ItemTypeWinBoost,
				Price:       600,
				Multiplier:  3,
				Duration:    15 * time.Minute,
			},
			{
				ID:          "analytics_pass",
				Name:        "Analytics Pass",
				Description: "Unlocks your spin statistics for a day.",
				Type:        domain.ItemTypeAnalyticsAccess,
				Price:       150,
				Duration:    24 * time.Hour,
			},
			{
				ID:          "trophy",
				Name:        "Golden Trophy",
				Description: "A collectible for the hall of fame.",
				Type:        domain.ItemTypeCollectible,
				Price:       5000,
				Unique:      true,
			},
		},
	}
}
