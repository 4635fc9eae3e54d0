package command

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/client"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) Register(ctx context.Context, id client.Identity) (*client.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Registration), args.Error(1)
}

func (m *MockAPI) Balance(ctx context.Context, id client.Identity) (*domain.BalanceView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceView), args.Error(1)
}

func (m *MockAPI) ClaimDaily(ctx context.Context, id client.Identity) (*domain.DailyClaim, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClaim), args.Error(1)
}

func (m *MockAPI) Transfer(ctx context.Context, id client.Identity, recipient string, amount int64) (*domain.TransferResult, error) {
	args := m.Called(ctx, id, recipient, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockAPI) Inventory(ctx context.Context, id client.Identity) ([]domain.InventoryView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryView), args.Error(1)
}

func (m *MockAPI) Analytics(ctx context.Context, id client.Identity) (*domain.PlayerAnalytics, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerAnalytics), args.Error(1)
}

func (m *MockAPI) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockAPI) Winners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WinnerEntry), args.Error(1)
}

func (m *MockAPI) Machines(ctx context.Context) (*client.MachineCatalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.MachineCatalog), args.Error(1)
}

func (m *MockAPI) Spin(ctx context.Context, id client.Identity, machine string, bet *int64) (*domain.SpinResult, error) {
	args := m.Called(ctx, id, machine, bet)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockAPI) Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JackpotSnapshot), args.Error(1)
}

func (m *MockAPI) Shop(ctx context.Context) ([]domain.ShopItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShopItem), args.Error(1)
}

func (m *MockAPI) Buy(ctx context.Context, id client.Identity, itemID string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, id, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockAPI) Use(ctx context.Context, id client.Identity, itemID string) (*domain.Effect, error) {
	args := m.Called(ctx, id, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Effect), args.Error(1)
}

var testCatalog = &client.MachineCatalog{
	DefaultMachine: "fruit",
	AutoBet:        client.AutoBetRule{Fraction: 0.05, Min: 1, Max: 1000},
	Machines: []client.Machine{
		{Key: "fruit", Title: "Fruit Cocktail", Description: "Classic fruits", Reel: []string{"🍒", "🍋", "💎"}},
		{Key: "pharaoh", Title: "Pharaoh's Gold", Description: "Wilds and a jackpot", Reel: []string{"𓂀", "🐍"}},
	},
}

func testRequest(cmd string, args ...string) Request {
	return Request{Platform: "discord", PlatformID: "123", Username: "alice", Command: cmd, Args: args}
}

var testIdentity = client.Identity{Platform: "discord", PlatformID: "123", Username: "alice"}

func testRegistration(created bool) *client.Registration {
	return &client.Registration{Created: created, Player: &domain.Player{ID: "p-1", Username: "alice", Balance: 1000}}
}
