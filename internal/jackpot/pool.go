package jackpot

import (
	"context"
	"fmt"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Pool tracks one seeded accumulator per jackpot machine
type Pool struct {
	repo     repository.Jackpot
	machines []domain.MachineDefinition
	seeds    map[string]int64
}

// NewPool creates a pool set for the given jackpot machines
func NewPool(repo repository.Jackpot, machines []domain.MachineDefinition) *Pool {
	seeds := make(map[string]int64, len(machines))
	for _, m := range machines {
		seeds[m.Key] = m.JackpotSeed
	}
	return &Pool{repo: repo, machines: machines, seeds: seeds}
}

func (p *Pool) seed(key string) (int64, error) {
	s, ok := p.seeds[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s has no jackpot", domain.ErrUnknownMachine, key)
	}
	return s, nil
}

// Contribute adds amount to the pool, creating it at max(amount, seed)
func (p *Pool) Contribute(ctx context.Context, key string, amount int64) (int64, error) {
	seed, err := p.seed(key)
	if err != nil {
		return 0, err
	}
	if amount < 0 {
		return 0, fmt.Errorf("%w: negative contribution %d", domain.ErrInvalidAmount, amount)
	}
	total, err := p.repo.AddToPool(ctx, key, amount, seed)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgContributeFailed, key, err)
	}
	return total, nil
}

// Award pays out the pool and resets it to its seed
func (p *Pool) Award(ctx context.Context, key string) (int64, error) {
	seed, err := p.seed(key)
	if err != nil {
		return 0, err
	}
	paid, err := p.repo.ResetPool(ctx, key, seed)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgAwardFailed, key, err)
	}
	return paid, nil
}

// Peek returns the current total, creating the pool at its seed
func (p *Pool) Peek(ctx context.Context, key string) (int64, error) {
	seed, err := p.seed(key)
	if err != nil {
		return 0, err
	}
	total, err := p.repo.GetPool(ctx, key, seed)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgPeekFailed, key, err)
	}
	return total, nil
}

// Snapshot lists every jackpot pool in catalog order
func (p *Pool) Snapshot(ctx context.Context) ([]domain.JackpotSnapshot, error) {
	out := make([]domain.JackpotSnapshot, 0, len(p.machines))
	for _, m := range p.machines {
		amount, err := p.Peek(ctx, m.Key)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.JackpotSnapshot{MachineKey: m.Key, Title: m.Title, Amount: amount})
	}
	return out, nil
}
