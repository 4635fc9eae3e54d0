package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Catalog is the static game content: slot machines and shop items
type Catalog struct {
	Machines []domain.MachineDefinition `yaml:"machines" json:"machines" validate:"required,min=1,dive"`
	Items    []domain.ShopItem          `yaml:"items" json:"items" validate:"dive"`
}

// LoadCatalog reads and validates the catalog at path.
// An empty path or a missing file yields DefaultCatalog.
func LoadCatalog(path string) (*Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultCatalog(), nil
		}
		return nil, fmt.Errorf(ErrMsgReadCatalog, path, err)
	}

	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf(ErrMsgParseCatalog, path, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks struct tags and the cross-field rules tags cannot express
func (c *Catalog) Validate() error {
	if len(c.Machines) == 0 {
		return fmt.Errorf(ErrMsgInvalidCatalog, errors.New(ErrMsgEmptyCatalog))
	}
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf(ErrMsgInvalidCatalog, err)
	}

	seen := make(map[string]bool, len(c.Machines))
	for _, m := range c.Machines {
		if seen[m.Key] {
			return fmt.Errorf(ErrMsgInvalidCatalog, fmt.Errorf(ErrMsgDuplicateMachine, m.Key))
		}
		seen[m.Key] = true

		if err := validateMachineSymbols(m); err != nil {
			return fmt.Errorf(ErrMsgInvalidCatalog, err)
		}
	}

	ids := make(map[string]bool, len(c.Items))
	for _, it := range c.Items {
		if ids[it.ID] {
			return fmt.Errorf(ErrMsgInvalidCatalog, fmt.Errorf(ErrMsgDuplicateItem, it.ID))
		}
		ids[it.ID] = true

		if err := validateItemParams(it); err != nil {
			return fmt.Errorf(ErrMsgInvalidCatalog, err)
		}
	}
	return nil
}

func validateMachineSymbols(m domain.MachineDefinition) error {
	switch m.Type {
	case domain.MachineTypeClassic:
		for _, sp := range m.SpecialPayouts {
			for _, s := range sp.Symbols {
				if !slices.Contains(m.Reel, s) {
					return fmt.Errorf(ErrMsgSpecialNotOnReel, m.Key, s)
				}
			}
		}
	case domain.MachineTypeWildJackpot:
		if !slices.Contains(m.Reel, m.WildSymbol) {
			return fmt.Errorf(ErrMsgWildNotOnReel, m.Key, m.WildSymbol)
		}
	case domain.MachineTypeScatterBonus:
		if !slices.Contains(m.Reel, m.ScatterSymbol) {
			return fmt.Errorf(ErrMsgScatterNotOnReel, m.Key, m.ScatterSymbol)
		}
	}
	return nil
}

func validateItemParams(it domain.ShopItem) error {
	switch it.Type {
	case domain.ItemTypeCreditLine:
		if it.CreditLimit <= 0 {
			return fmt.Errorf(ErrMsgItemMissingParams, it.ID, "credit_limit must be positive")
		}
	case domain.ItemTypeWinBoost:
		if it.Multiplier <= 1 {
			return fmt.Errorf(ErrMsgItemMissingParams, it.ID, "multiplier must be greater than 1")
		}
		if it.Duration <= 0 {
			return fmt.Errorf(ErrMsgItemMissingParams, it.ID, "duration must be positive")
		}
	case domain.ItemTypeAnalyticsAccess:
		if it.Duration <= 0 {
			return fmt.Errorf(ErrMsgItemMissingParams, it.ID, "duration must be positive")
		}
	}
	return nil
}

// Machine returns the definition for key
func (c *Catalog) Machine(key string) (domain.MachineDefinition, bool) {
	for _, m := range c.Machines {
		if m.Key == key {
			return m, true
		}
	}
	return domain.MachineDefinition{}, false
}
