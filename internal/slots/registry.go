package slots

import (
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Registry holds one engine per machine key. It is read-only after construction.
type Registry struct {
	engines    map[string]Engine
	order      []string
	defaultKey string
}

// NewEngine builds the engine for a machine definition
func NewEngine(def domain.MachineDefinition) (Engine, error) {
	if def.Key == "" {
		return nil, fmt.Errorf("%w: missing key", domain.ErrInvalidMachine)
	}
	if len(def.Reel) == 0 {
		return nil, fmt.Errorf("%w: machine %s has an empty reel", domain.ErrInvalidMachine, def.Key)
	}

	switch def.Type {
	case domain.MachineTypeClassic:
		return NewClassic(def), nil
	case domain.MachineTypeWildJackpot:
		if def.WildSymbol == "" {
			return nil, fmt.Errorf("%w: machine %s has no wild symbol", domain.ErrInvalidMachine, def.Key)
		}
		if def.JackpotSeed == 0 {
			def.JackpotSeed = DefaultJackpotSeed
		}
		return NewWildJackpot(def), nil
	case domain.MachineTypeScatterBonus:
		if def.ScatterSymbol == "" {
			return nil, fmt.Errorf("%w: machine %s has no scatter symbol", domain.ErrInvalidMachine, def.Key)
		}
		return NewScatterBonus(def), nil
	default:
		return nil, fmt.Errorf("%w: machine %s has unknown type %q", domain.ErrInvalidMachine, def.Key, def.Type)
	}
}

// NewRegistry builds engines for every definition. The first machine is the default.
func NewRegistry(defs []domain.MachineDefinition) (*Registry, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no machines configured", domain.ErrInvalidMachine)
	}

	r := &Registry{engines: make(map[string]Engine, len(defs))}
	for _, def := range defs {
		if _, dup := r.engines[def.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate machine key %s", domain.ErrInvalidMachine, def.Key)
		}
		eng, err := NewEngine(def)
		if err != nil {
			return nil, err
		}
		r.engines[def.Key] = eng
		r.order = append(r.order, def.Key)
	}
	r.defaultKey = r.order[0]
	return r, nil
}

// Get returns the engine for key; an empty key selects the default machine
func (r *Registry) Get(key string) (Engine, error) {
	if key == "" {
		key = r.defaultKey
	}
	eng, ok := r.engines[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMachine, key)
	}
	return eng, nil
}

// Has reports whether key names a registered machine
func (r *Registry) Has(key string) bool {
	_, ok := r.engines[key]
	return ok
}

// DefaultKey returns the key used when none is given
func (r *Registry) DefaultKey() string { return r.defaultKey }

// Definitions lists machines in catalog order
func (r *Registry) Definitions() []domain.MachineDefinition {
	defs := make([]domain.MachineDefinition, 0, len(r.order))
	for _, k := range r.order {
		defs = append(defs, r.engines[k].Definition())
	}
	return defs
}

// JackpotDefinitions lists the machines that feed a jackpot pool, seeds resolved
func (r *Registry) JackpotDefinitions() []domain.MachineDefinition {
	var defs []domain.MachineDefinition
	for _, k := range r.order {
		if eng := r.engines[k]; eng.SupportsJackpot() {
			defs = append(defs, eng.Definition())
		}
	}
	return defs
}
