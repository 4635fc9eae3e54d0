package domain

import "time"

// ItemType selects what an item does when used
type ItemType string

// Item types
const (
	ItemTypeCreditLine      ItemType = "credit_line"
	ItemTypeWinBoost        ItemType = "win_boost"
	ItemTypeAnalyticsAccess ItemType = "analytics_access"
	ItemTypeCollectible     ItemType = "collectible"
)

// EffectKind returns the effect an item of this type activates
func (t ItemType) EffectKind() (EffectKind, bool) {
	switch t {
	case ItemTypeCreditLine:
		return EffectCreditLine, true
	case ItemTypeWinBoost:
		return EffectWinBoost, true
	case ItemTypeAnalyticsAccess:
		return EffectAnalyticsAccess, true
	default:
		return "", false
	}
}

// ShopItem is a catalog entry that can be bought with chips.
// Duration, Multiplier and CreditLimit are only meaningful for their item type.
type ShopItem struct {
	ID          string        `yaml:"id" json:"id" validate:"required,lowercase,excludesall= "`
	Name        string        `yaml:"name" json:"name" validate:"required"`
	Description string        `yaml:"description" json:"description"`
	Type        ItemType      `yaml:"type" json:"type" validate:"required,oneof=credit_line win_boost analytics_access collectible"`
	Price       int64         `yaml:"price" json:"price" validate:"gt=0"`
	Unique      bool          `yaml:"unique" json:"unique"`
	Duration    time.Duration `yaml:"duration,omitempty" json:"duration,omitempty" validate:"gte=0"`
	Multiplier  float64       `yaml:"multiplier,omitempty" json:"multiplier,omitempty" validate:"gte=0"`
	CreditLimit int64         `yaml:"credit_limit,omitempty" json:"credit_limit,omitempty" validate:"gte=0"`
}
