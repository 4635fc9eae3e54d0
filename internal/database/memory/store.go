// Package memory provides a process-local implementation of every repository
// interface. It backs dev mode and service tests.
package memory

import (
	"context"
	"maps"
	"sync"

	"github.com/osse101/CasinoBot_Go/internal/repository"
)

var (
	_ repository.Player     = (*Store)(nil)
	_ repository.Jackpot    = (*Store)(nil)
	_ repository.Inventory  = (*Store)(nil)
	_ repository.Effect     = (*Store)(nil)
	_ repository.SpinLog    = (*Store)(nil)
	_ repository.Transactor = (*Store)(nil)
)

type txKey struct{}

type effectKey struct {
	playerID string
	kind     string
}

type state struct {
	players   map[string]playerRow
	jackpots  map[string]int64
	inventory map[string]map[string]int
	effects   map[effectKey]effectRow
	spins     []spinRow
	nextSpin  int64
}

func newState() state {
	return state{
		players:   make(map[string]playerRow),
		jackpots:  make(map[string]int64),
		inventory: make(map[string]map[string]int),
		effects:   make(map[effectKey]effectRow),
	}
}

func (s state) clone() state {
	c := state{
		players:  maps.Clone(s.players),
		jackpots: maps.Clone(s.jackpots),
		effects:  maps.Clone(s.effects),
		spins:    append([]spinRow(nil), s.spins...),
		nextSpin: s.nextSpin,
	}
	c.inventory = make(map[string]map[string]int, len(s.inventory))
	for pid, items := range s.inventory {
		c.inventory[pid] = maps.Clone(items)
	}
	return c
}

// Store is a mutex-guarded in-memory database
type Store struct {
	mu    sync.Mutex
	state state
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{state: newState()}
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lock takes the store mutex unless ctx already runs inside a Do unit of this store
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

// Do runs fn with exclusive access to the store and restores the prior state if fn fails
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.state.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.state = snapshot
		return err
	}
	return nil
}
