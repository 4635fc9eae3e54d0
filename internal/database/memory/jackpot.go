package memory

import "context"

// AddToPool increments a jackpot pool
func (s *Store) AddToPool(ctx context.Context, machineKey string, amount, seed int64) (int64, error) {
	defer s.lock(ctx)()

	current, ok := s.state.jackpots[machineKey]
	if !ok {
		current = max(amount, seed)
	} else {
		current += amount
	}
	s.state.jackpots[machineKey] = current
	return current, nil
}

// ResetPool pays out a pool and reseeds it
func (s *Store) ResetPool(ctx context.Context, machineKey string, seed int64) (int64, error) {
	defer s.lock(ctx)()

	current, ok := s.state.jackpots[machineKey]
	if !ok {
		current = seed
	}
	s.state.jackpots[machineKey] = seed
	return current, nil
}

// GetPool reads a pool, creating it at seed
func (s *Store) GetPool(ctx context.Context, machineKey string, seed int64) (int64, error) {
	defer s.lock(ctx)()

	current, ok := s.state.jackpots[machineKey]
	if !ok {
		current = seed
		s.state.jackpots[machineKey] = current
	}
	return current, nil
}
