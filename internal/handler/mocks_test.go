package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/slots"
)

// MockEconomyService mocks economy.Service
type MockEconomyService struct {
	mock.Mock
}

func (m *MockEconomyService) Register(ctx context.Context, platform, platformID, username string) (*domain.Player, bool, error) {
	args := m.Called(ctx, platform, platformID, username)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Player), args.Bool(1), args.Error(2)
}

func (m *MockEconomyService) ResolvePlayer(ctx context.Context, platform, platformID string) (*domain.Player, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Player), args.Error(1)
}

func (m *MockEconomyService) Balance(ctx context.Context, playerID string) (*domain.BalanceView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BalanceView), args.Error(1)
}

func (m *MockEconomyService) ClaimDaily(ctx context.Context, playerID string) (*domain.DailyClaim, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DailyClaim), args.Error(1)
}

func (m *MockEconomyService) Transfer(ctx context.Context, senderID, recipientUsername string, amount int64) (*domain.TransferResult, error) {
	args := m.Called(ctx, senderID, recipientUsername, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferResult), args.Error(1)
}

func (m *MockEconomyService) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaderboardEntry), args.Error(1)
}

func (m *MockEconomyService) GetShopCatalog() []domain.ShopItem {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.ShopItem)
}

func (m *MockEconomyService) BuyItem(ctx context.Context, playerID, itemID string) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockEconomyService) GetInventory(ctx context.Context, playerID string) ([]domain.InventoryView, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InventoryView), args.Error(1)
}

func (m *MockEconomyService) UseItem(ctx context.Context, playerID, itemID string) (*domain.Effect, error) {
	args := m.Called(ctx, playerID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Effect), args.Error(1)
}

func (m *MockEconomyService) Analytics(ctx context.Context, playerID string) (*domain.PlayerAnalytics, error) {
	args := m.Called(ctx, playerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PlayerAnalytics), args.Error(1)
}

func (m *MockEconomyService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockSlotsService mocks slots.Service
type MockSlotsService struct {
	mock.Mock
}

func (m *MockSlotsService) Spin(ctx context.Context, req slots.SpinRequest) (*domain.SpinResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SpinResult), args.Error(1)
}

func (m *MockSlotsService) Machines() []domain.MachineDefinition {
	return m.Called().Get(0).([]domain.MachineDefinition)
}

func (m *MockSlotsService) DefaultMachine() string {
	return m.Called().String(0)
}

func (m *MockSlotsService) Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JackpotSnapshot), args.Error(1)
}

func (m *MockSlotsService) Shutdown(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockWinnersService mocks leaderboard.Service
type MockWinnersService struct {
	mock.Mock
}

func (m *MockWinnersService) TopWinners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.WinnerEntry), args.Error(1)
}

var testPlayer = &domain.Player{
	ID:         "p-1",
	Platform:   domain.PlatformDiscord,
	PlatformID: "123",
	Username:   "alice",
	Balance:    1000,
}
