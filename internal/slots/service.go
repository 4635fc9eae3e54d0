package slots

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
	"github.com/osse101/CasinoBot_Go/internal/utils"
)

// SpinRequest asks for one spin. An empty MachineKey selects the default machine;
// a nil Bet is computed from the balance.
type SpinRequest struct {
	PlayerID   string
	MachineKey string
	Bet        *int64
}

// BalanceLedger defines the ledger operations a spin needs
type BalanceLedger interface {
	Adjust(ctx context.Context, playerID string, delta int64, policy domain.OverdraftPolicy) (int64, error)
}

// JackpotPool defines the pool operations a spin needs
type JackpotPool interface {
	Contribute(ctx context.Context, key string, amount int64) (int64, error)
	Award(ctx context.Context, key string) (int64, error)
	Peek(ctx context.Context, key string) (int64, error)
	Snapshot(ctx context.Context) ([]domain.JackpotSnapshot, error)
}

// EffectStore defines the effect operations a spin needs
type EffectStore interface {
	Active(ctx context.Context, playerID string, kind domain.EffectKind) (*domain.Effect, error)
	Clear(ctx context.Context, playerID string, kind domain.EffectKind) error
}

// Service defines the interface for slots operations
type Service interface {
	Spin(ctx context.Context, req SpinRequest) (*domain.SpinResult, error)
	Machines() []domain.MachineDefinition
	DefaultMachine() string
	Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error)
	Shutdown(ctx context.Context) error
}

type service struct {
	registry  *Registry
	players   repository.Player
	spinLog   repository.SpinLog
	tx        repository.Transactor
	ledger    BalanceLedger
	pool      JackpotPool
	effects   EffectStore
	publisher event.Bus
	rng       func(int) int // Injectable for testing
	now       func() time.Time

	mu sync.Mutex // serializes every spin and its free-spin cascade
	wg sync.WaitGroup
}

// NewService creates the spin coordinator
func NewService(
	registry *Registry,
	players repository.Player,
	spinLog repository.SpinLog,
	tx repository.Transactor,
	ledger BalanceLedger,
	pool JackpotPool,
	effects EffectStore,
	publisher event.Bus,
) Service {
	return &service{
		registry:  registry,
		players:   players,
		spinLog:   spinLog,
		tx:        tx,
		ledger:    ledger,
		pool:      pool,
		effects:   effects,
		publisher: publisher,
		rng:       utils.SecureRandomIndex,
		now:       time.Now,
	}
}

// Machines lists the catalog in order
func (s *service) Machines() []domain.MachineDefinition {
	return s.registry.Definitions()
}

// DefaultMachine returns the machine used when none is named
func (s *service) DefaultMachine() string {
	return s.registry.DefaultKey()
}

// Jackpots returns the current value of every jackpot pool
func (s *service) Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error) {
	return s.pool.Snapshot(ctx)
}

// settlement accumulates state across the rounds of one spin
type settlement struct {
	engine   Engine
	def      domain.MachineDefinition
	playerID string
	result   *domain.SpinResult
	jackpots []int64
}

// Spin settles one spin end-to-end. Nothing is written unless the bet deduction succeeds;
// once it does, the settlement runs to completion regardless of ctx cancellation.
func (s *service) Spin(ctx context.Context, req SpinRequest) (*domain.SpinResult, error) {
	log := logger.FromContext(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	engine, err := s.registry.Get(req.MachineKey)
	if err != nil {
		return nil, err
	}
	def := engine.Definition()

	player, err := s.players.GetPlayer(ctx, req.PlayerID)
	if err != nil {
		return nil, err
	}

	creditLine, err := s.effects.Active(ctx, player.ID, domain.EffectCreditLine)
	if err != nil {
		return nil, err
	}
	policy := domain.OverdraftFromEffect(creditLine)

	bet, err := resolveBet(req.Bet, player.Balance)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := &settlement{
		engine:   engine,
		def:      def,
		playerID: player.ID,
		result: &domain.SpinResult{
			PlayerID:     player.ID,
			MachineKey:   def.Key,
			MachineTitle: def.Title,
			Bet:          bet,
		},
	}

	// The settlement ignores cancellation from here on.
	settleCtx := context.WithoutCancel(ctx)
	err = s.tx.Do(settleCtx, func(txCtx context.Context) error {
		st.result.Rounds = st.result.Rounds[:0]
		st.jackpots = st.jackpots[:0]

		balance, err := s.ledger.Adjust(txCtx, player.ID, -bet, policy)
		if err != nil {
			return err
		}
		st.result.Balance = balance

		if balance < 0 && creditLine != nil {
			if err := s.effects.Clear(txCtx, player.ID, domain.EffectCreditLine); err != nil {
				return err
			}
			st.result.CreditLineUsed = true
		}

		round, err := s.playRound(txCtx, st, bet, false)
		if err != nil {
			return err
		}

		// free spins never re-trigger
		for i := 0; i < round.FreeSpinsAwarded; i++ {
			if _, err := s.playRound(txCtx, st, 0, true); err != nil {
				return err
			}
		}

		if engine.SupportsJackpot() {
			current, err := s.pool.Peek(txCtx, def.Key)
			if err != nil {
				return err
			}
			st.result.Jackpot = &current
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	st.result.SettledAt = s.now()
	st.result.Lines = RenderLines(st.result)

	log.Info(LogMsgSpinSettled,
		"player_id", player.ID,
		"machine", def.Key,
		"bet", bet,
		"rounds", len(st.result.Rounds),
		"winnings", st.result.TotalWinnings,
		"balance", st.result.Balance)
	if st.result.CreditLineUsed {
		log.Info(LogMsgCreditLineConsumed, "player_id", player.ID, "balance", st.result.Balance)
	}

	s.wg.Add(1)
	go s.publishSettlement(settleCtx, st.result, st.jackpots)

	return st.result, nil
}

func resolveBet(requested *int64, balance int64) (int64, error) {
	if requested == nil {
		return AutoBet(balance), nil
	}
	if *requested <= 0 {
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidBet, *requested)
	}
	return *requested, nil
}

// playRound contributes, draws, evaluates, pays and records one round
func (s *service) playRound(ctx context.Context, st *settlement, bet int64, free bool) (domain.SpinRound, error) {
	var pool int64
	if st.engine.SupportsJackpot() {
		var err error
		if contribution := st.engine.JackpotContribution(bet); contribution > 0 {
			pool, err = s.pool.Contribute(ctx, st.def.Key, contribution)
		} else {
			pool, err = s.pool.Peek(ctx, st.def.Key)
		}
		if err != nil {
			return domain.SpinRound{}, err
		}
	}

	symbols := s.draw(st.def.Reel)
	outcome := st.engine.Evaluate(symbols, bet, pool)

	round := domain.SpinRound{
		Symbols:  symbols,
		Bet:      bet,
		Winnings: outcome.Winnings,
		FreeSpin: free,
		Message:  outcome.Message,
	}
	if !free {
		round.FreeSpinsAwarded = outcome.FreeSpinsAwarded
	}

	if outcome.Winnings > 0 {
		balance, err := s.ledger.Adjust(ctx, st.playerID, outcome.Winnings, domain.NoOverdraft)
		if err != nil {
			return domain.SpinRound{}, err
		}
		st.result.Balance = balance

		boost, err := s.effects.Active(ctx, st.playerID, domain.EffectWinBoost)
		if err != nil {
			return domain.SpinRound{}, err
		}
		if bonus := BoostBonus(outcome.Winnings, boost); bonus > 0 {
			balance, err := s.ledger.Adjust(ctx, st.playerID, bonus, domain.NoOverdraft)
			if err != nil {
				return domain.SpinRound{}, err
			}
			st.result.Balance = balance
			round.BoostBonus = bonus
			round.BoostMultiplier = boost.Magnitude
		}
	}

	if outcome.JackpotConsumed {
		paid, err := s.pool.Award(ctx, st.def.Key)
		if err != nil {
			return domain.SpinRound{}, err
		}
		round.JackpotWon = paid
		st.jackpots = append(st.jackpots, paid)
	}

	if err := s.spinLog.RecordSpin(ctx, &domain.SpinRecord{
		PlayerID:    st.playerID,
		MachineKey:  st.def.Key,
		Bet:         bet,
		TotalWin:    round.TotalWin(),
		WasFreeSpin: free,
		CreatedAt:   s.now(),
	}); err != nil {
		return domain.SpinRound{}, fmt.Errorf(ErrMsgRecordSpinFailed, err)
	}

	st.result.Rounds = append(st.result.Rounds, round)
	st.result.TotalWinnings += round.TotalWin()
	return round, nil
}

// BoostBonus is the extra credit an active win boost adds to positive winnings
func BoostBonus(winnings int64, boost *domain.Effect) int64 {
	if winnings <= 0 || boost == nil || boost.Magnitude <= 1 {
		return 0
	}
	bonus := utils.FloorToInt64(float64(winnings) * (boost.Magnitude - 1))
	if bonus < 1 {
		bonus = 1
	}
	return bonus
}

func (s *service) draw(reel []string) [3]string {
	var symbols [3]string
	for i := range symbols {
		symbols[i] = reel[s.rng(len(reel))]
	}
	return symbols
}

// publishSettlement emits the spin and jackpot events off the request path
func (s *service) publishSettlement(ctx context.Context, result *domain.SpinResult, jackpots []int64) {
	defer s.wg.Done()

	if s.publisher == nil {
		return
	}
	log := logger.FromContext(ctx)

	if err := s.publisher.Publish(ctx, event.NewSpinCompletedEvent(result)); err != nil {
		log.Warn(LogMsgPublishFailed, "type", domain.EventTypeSpinCompleted, "error", err)
	}
	for _, amount := range jackpots {
		log.Info(LogMsgJackpotAwarded, "player_id", result.PlayerID, "machine", result.MachineKey, "amount", amount)
		if err := s.publisher.Publish(ctx, event.NewJackpotWonEvent(result.PlayerID, result.MachineKey, amount)); err != nil {
			log.Warn(LogMsgPublishFailed, "type", domain.EventTypeJackpotWon, "error", err)
		}
	}
}

// Shutdown gracefully stops the service
func (s *service) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
