package economy

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/event"
	"github.com/osse101/CasinoBot_Go/internal/logger"
	"github.com/osse101/CasinoBot_Go/internal/repository"
)

// Config holds the tunable economy rules
type Config struct {
	StartingBalance  int64
	DailyBonus       int64
	DailyCooldown    time.Duration
	LeaderboardLimit int
}

// DefaultConfig returns the standard economy rules
func DefaultConfig() Config {
	return Config{
		StartingBalance:  DefaultStartingBalance,
		DailyBonus:       DefaultDailyBonus,
		DailyCooldown:    DefaultDailyCooldown,
		LeaderboardLimit: DefaultLeaderboardLimit,
	}
}

// EffectStore defines the effect operations the economy needs
type EffectStore interface {
	Active(ctx context.Context, playerID string, kind domain.EffectKind) (*domain.Effect, error)
	List(ctx context.Context, playerID string) ([]domain.Effect, error)
	Activate(ctx context.Context, playerID string, item domain.ShopItem) (*domain.Effect, error)
}

// Repos groups the storage the economy reads and writes
type Repos struct {
	Players   repository.Player
	Inventory repository.Inventory
	SpinLog   repository.SpinLog
	Tx        repository.Transactor
}

// Service defines the interface for player economy operations
type Service interface {
	// Players
	Register(ctx context.Context, platform, platformID, username string) (*domain.Player, bool, error)
	ResolvePlayer(ctx context.Context, platform, platformID string) (*domain.Player, error)
	Balance(ctx context.Context, playerID string) (*domain.BalanceView, error)
	ClaimDaily(ctx context.Context, playerID string) (*domain.DailyClaim, error)
	Transfer(ctx context.Context, senderID, recipientUsername string, amount int64) (*domain.TransferResult, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)

	// Shop
	GetShopCatalog() []domain.ShopItem
	BuyItem(ctx context.Context, playerID, itemID string) (*domain.PurchaseResult, error)
	GetInventory(ctx context.Context, playerID string) ([]domain.InventoryView, error)
	UseItem(ctx context.Context, playerID, itemID string) (*domain.Effect, error)

	// Analytics
	Analytics(ctx context.Context, playerID string) (*domain.PlayerAnalytics, error)

	Shutdown(ctx context.Context) error
}

type service struct {
	cfg       Config
	repos     Repos
	ledger    *Ledger
	effects   EffectStore
	locks     *concurrency.LockManager
	publisher event.Bus
	cache     *identityCache
	items     map[string]domain.ShopItem
	itemOrder []string
	now       func() time.Time
	wg        sync.WaitGroup
}

// NewService creates the economy service over the shop catalog
func NewService(cfg Config, repos Repos, ledger *Ledger, effects EffectStore, locks *concurrency.LockManager, publisher event.Bus, items []domain.ShopItem) Service {
	s := &service{
		cfg:       cfg,
		repos:     repos,
		ledger:    ledger,
		effects:   effects,
		locks:     locks,
		publisher: publisher,
		cache:     newIdentityCache(),
		items:     make(map[string]domain.ShopItem, len(items)),
		now:       time.Now,
	}
	for _, item := range items {
		s.items[item.ID] = item
		s.itemOrder = append(s.itemOrder, item.ID)
	}
	return s
}

// Register creates a player on first contact. A repeat call returns the existing player
// with created=false and syncs a changed username.
func (s *service) Register(ctx context.Context, platform, platformID, username string) (*domain.Player, bool, error) {
	log := logger.FromContext(ctx)

	if !domain.ValidPlatforms[platform] {
		return nil, false, fmt.Errorf("%w: %s", domain.ErrInvalidPlatform, platform)
	}
	platformID = strings.TrimSpace(platformID)
	username = strings.TrimPrefix(strings.TrimSpace(username), "@")
	if platformID == "" || username == "" {
		return nil, false, fmt.Errorf("%w: platform id and username are required", domain.ErrInvalidInput)
	}

	defer s.locks.Lock(LockKeyRegister + platform + ":" + platformID)()

	existing, err := s.repos.Players.GetPlayerByPlatformID(ctx, platform, platformID)
	switch {
	case err == nil:
		if existing.Username != username {
			if err := s.repos.Players.UpdateUsername(ctx, existing.ID, username); err != nil {
				return nil, false, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
			}
			log.Info(LogMsgUsernameSynced, "player_id", existing.ID, "old", existing.Username, "new", username)
			existing.Username = username
		}
		s.cache.Set(platform, platformID, existing.ID)
		return existing, false, nil
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, false, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	player := &domain.Player{
		ID:         uuid.NewString(),
		Platform:   platform,
		PlatformID: platformID,
		Username:   username,
		Balance:    s.cfg.StartingBalance,
		CreatedAt:  s.now(),
	}
	if err := s.repos.Players.CreatePlayer(ctx, player); err != nil {
		return nil, false, fmt.Errorf(ErrMsgCreatePlayerFailed, err)
	}
	s.cache.Set(platform, platformID, player.ID)

	log.Info(LogMsgPlayerRegistered, "player_id", player.ID, "platform", platform, "username", username)
	s.publishAsync(ctx, event.NewPlayerRegisteredEvent(player))
	return player, true, nil
}

// ResolvePlayer finds a registered player by chat identity
func (s *service) ResolvePlayer(ctx context.Context, platform, platformID string) (*domain.Player, error) {
	if id, ok := s.cache.Get(platform, platformID); ok {
		return s.getPlayer(ctx, id)
	}
	player, err := s.repos.Players.GetPlayerByPlatformID(ctx, platform, platformID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	s.cache.Set(platform, platformID, player.ID)
	return player, nil
}

func (s *service) getPlayer(ctx context.Context, id string) (*domain.Player, error) {
	player, err := s.repos.Players.GetPlayer(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}
	return player, nil
}

// Balance returns the balance together with every live effect
func (s *service) Balance(ctx context.Context, playerID string) (*domain.BalanceView, error) {
	player, err := s.getPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}
	effects, err := s.effects.List(ctx, playerID)
	if err != nil {
		return nil, err
	}
	return &domain.BalanceView{
		PlayerID: player.ID,
		Username: player.Username,
		Balance:  player.Balance,
		Effects:  effects,
	}, nil
}

// ClaimDaily credits the daily bonus once per cooldown window
func (s *service) ClaimDaily(ctx context.Context, playerID string) (*domain.DailyClaim, error) {
	defer s.locks.Lock(LockKeyDaily + playerID)()

	now := s.now()
	claim := &domain.DailyClaim{Bonus: s.cfg.DailyBonus, ClaimedAt: now}

	err := s.repos.Tx.Do(ctx, func(ctx context.Context) error {
		player, err := s.getPlayer(ctx, playerID)
		if err != nil {
			return err
		}
		if player.LastDailyClaim != nil {
			next := player.LastDailyClaim.Add(s.cfg.DailyCooldown)
			if now.Before(next) {
				return fmt.Errorf(ErrMsgCooldownRemainingFmt, domain.ErrOnCooldown, next.Sub(now).Round(time.Second))
			}
		}

		balance, err := s.ledger.Adjust(ctx, playerID, s.cfg.DailyBonus, domain.NoOverdraft)
		if err != nil {
			return err
		}
		if err := s.repos.Players.SetLastDailyClaim(ctx, playerID, now); err != nil {
			return fmt.Errorf(ErrMsgDailyClaimFailed, err)
		}
		claim.Balance = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info(LogMsgDailyClaimed, "player_id", playerID, "bonus", claim.Bonus, "balance", claim.Balance)
	s.publishAsync(ctx, event.NewDailyClaimedEvent(playerID, claim))
	return claim, nil
}

// Transfer moves chips to the player registered under recipientUsername
func (s *service) Transfer(ctx context.Context, senderID, recipientUsername string, amount int64) (*domain.TransferResult, error) {
	recipientUsername = strings.TrimPrefix(strings.TrimSpace(recipientUsername), "@")
	if recipientUsername == "" {
		return nil, fmt.Errorf("%w: recipient is required", domain.ErrInvalidInput)
	}

	recipient, err := s.repos.Players.GetPlayerByUsername(ctx, recipientUsername)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgGetPlayerFailed, err)
	}

	senderBal, recipientBal, err := s.ledger.Transfer(ctx, senderID, recipient.ID, amount)
	if err != nil {
		return nil, err
	}

	result := &domain.TransferResult{
		SenderID:         senderID,
		RecipientID:      recipient.ID,
		RecipientName:    recipient.Username,
		Amount:           amount,
		SenderBalance:    senderBal,
		RecipientBalance: recipientBal,
	}
	logger.FromContext(ctx).Info(LogMsgTransferCompleted, "from", senderID, "to", recipient.ID, "amount", amount)
	s.publishAsync(ctx, event.NewTransferCompletedEvent(result))
	return result, nil
}

// Leaderboard ranks players by balance
func (s *service) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		limit = MaxLeaderboardLimit
	}

	players, err := s.repos.Players.TopByBalance(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLeaderboardFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, len(players))
	for i, p := range players {
		entries[i] = domain.LeaderboardEntry{
			Rank:     i + 1,
			PlayerID: p.ID,
			Username: p.Username,
			Balance:  p.Balance,
		}
	}
	return entries, nil
}

func (s *service) publishAsync(ctx context.Context, evt event.Event) {
	if s.publisher == nil {
		return
	}
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.publisher.Publish(context.WithoutCancel(ctx), evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
		}
	}()
}

// Shutdown gracefully shuts down the service by waiting for all async operations to complete
func (s *service) Shutdown(ctx context.Context) error {
	logger.FromContext(ctx).Info(LogMsgShuttingDown)

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf(ErrMsgShutdownTimedOut, ctx.Err())
	}
}
