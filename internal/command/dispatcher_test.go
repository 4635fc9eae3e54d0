package command

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/CasinoBot_Go/internal/client"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func newTestDispatcher(api *MockAPI) *Dispatcher {
	return NewDispatcher(api).WithPicker(func(int) int { return 0 })
}

func TestExecute_UnknownCommand(t *testing.T) {
	api := &MockAPI{}
	d := newTestDispatcher(api)

	resp := d.Execute(context.Background(), testRequest("roulette"))

	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Body, "roulette")
	api.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestExecute_AliasesAndSlash(t *testing.T) {
	assert.Equal(t, CmdSlots, Normalize("/s"))
	assert.Equal(t, CmdStart, Normalize("start_casino"))
	assert.Equal(t, CmdTop, Normalize("Leaderboard"))
	assert.Equal(t, "balance", Normalize(" BALANCE "))

	d := newTestDispatcher(&MockAPI{})
	assert.True(t, d.Known("jackpot"))
	assert.True(t, d.Known("SLOTS"))
	assert.False(t, d.Known("roulette"))
}

func TestExecute_Start(t *testing.T) {
	// CASE 1: new player
	api := &MockAPI{}
	api.On("Register", mock.Anything, testIdentity).Return(testRegistration(true), nil).Once()
	d := newTestDispatcher(api)

	resp := d.Execute(context.Background(), testRequest("start_casino"))

	assert.False(t, resp.IsError)
	assert.Contains(t, resp.Body, "1,000 chips have been credited")

	// CASE 2: returning player
	api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil).Once()

	resp = d.Execute(context.Background(), testRequest(CmdStart))

	assert.Contains(t, resp.Body, "already registered")
	api.AssertExpectations(t)
}

func TestExecute_Slots(t *testing.T) {
	t.Run("CASE 1: machine and bet are forwarded", func(t *testing.T) {
		// ARRANGE
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Machines", mock.Anything).Return(testCatalog, nil).Once()
		bet := int64(100)
		jackpot := int64(1000)
		api.On("Spin", mock.Anything, testIdentity, "pharaoh", &bet).Return(&domain.SpinResult{
			MachineKey:    "pharaoh",
			MachineTitle:  "Pharaoh's Gold",
			Bet:           100,
			TotalWinnings: 11000,
			Balance:       11900,
			Jackpot:       &jackpot,
			Rounds:        []domain.SpinRound{{JackpotWon: 10000, Winnings: 11000}},
			Lines:         []string{"[ 𓂀 | 𓂀 | 𓂀 ]", "JACKPOT!"},
		}, nil)
		d := newTestDispatcher(api)

		// ACT
		resp := d.Execute(context.Background(), testRequest(CmdSlots, "pharaoh", "100"))

		// ASSERT
		assert.False(t, resp.IsError)
		assert.Equal(t, ColorJackpot, resp.Color)
		assert.Equal(t, "[ 𓂀 | 𓂀 | 𓂀 ]\nJACKPOT!", resp.Body)
		assert.Contains(t, resp.Footer, "11,000")
		assert.Len(t, resp.Frames, RevealFrames+1)
		assert.Equal(t, "[ 𓂀 | 𓂀 | 𓂀 ]", resp.Frames[1])
		api.AssertExpectations(t)
	})

	t.Run("CASE 2: help does not spin", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Machines", mock.Anything).Return(testCatalog, nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdSlots, "?"))

		assert.Equal(t, TitleSlotsHelp, resp.Title)
		assert.Contains(t, resp.Body, "Fruit Cocktail (`slots fruit`)")
		assert.Contains(t, resp.Body, "5% of your balance")
		api.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CASE 3: unknown machine shows help", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Machines", mock.Anything).Return(testCatalog, nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdSlots, "moon"))

		assert.Contains(t, resp.Body, "Unknown machine `moon`")
		assert.Contains(t, resp.Body, "Pharaoh's Gold")
		api.AssertNotCalled(t, "Spin", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CASE 4: insufficient funds is reported", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Machines", mock.Anything).Return(testCatalog, nil)
		api.On("Spin", mock.Anything, testIdentity, "", (*int64)(nil)).
			Return(nil, &client.APIError{Status: http.StatusBadRequest, Message: "Not enough chips"})
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdSlots))

		assert.True(t, resp.IsError)
		assert.Equal(t, "❌ Not enough chips", resp.Body)
	})

	t.Run("CASE 5: machine catalog is cached", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Machines", mock.Anything).Return(testCatalog, nil).Once()
		d := newTestDispatcher(api)

		d.Execute(context.Background(), testRequest(CmdSlots, "help"))
		d.Execute(context.Background(), testRequest(CmdSlots, "help"))

		api.AssertNumberOfCalls(t, "Machines", 1)
	})
}

func TestExecute_RegisterFailureStopsCommand(t *testing.T) {
	api := &MockAPI{}
	api.On("Register", mock.Anything, testIdentity).Return(nil, &client.APIError{Status: http.StatusServiceUnavailable})
	d := newTestDispatcher(api)

	resp := d.Execute(context.Background(), testRequest(CmdBalance))

	assert.True(t, resp.IsError)
	assert.Equal(t, MsgGenericError, resp.Body)
	api.AssertNotCalled(t, "Balance", mock.Anything, mock.Anything)
}

func TestExecute_Balance(t *testing.T) {
	api := &MockAPI{}
	api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
	api.On("Balance", mock.Anything, testIdentity).Return(&domain.BalanceView{
		Username: "alice",
		Balance:  -350,
		Effects: []domain.Effect{
			{Kind: domain.EffectWinBoost, Magnitude: 2, ExpiresAt: time.Date(2026, 1, 2, 15, 4, 0, 0, time.UTC)},
		},
	}, nil)
	d := newTestDispatcher(api)

	resp := d.Execute(context.Background(), testRequest(CmdBalance))

	assert.Contains(t, resp.Body, "@alice, your balance: 💰 -350 chips.")
	assert.Contains(t, resp.Body, "Win Boost x2 (until 2026-01-02 15:04 UTC)")
}

func TestExecute_Daily(t *testing.T) {
	// CASE 1: claimed
	api := &MockAPI{}
	api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
	api.On("ClaimDaily", mock.Anything, testIdentity).Return(&domain.DailyClaim{Bonus: 200, Balance: 1200}, nil).Once()
	d := newTestDispatcher(api)

	resp := d.Execute(context.Background(), testRequest(CmdDaily))
	assert.Contains(t, resp.Body, "daily bonus of 200 chips")
	assert.Contains(t, resp.Body, "1,200")

	// CASE 2: on cooldown
	api.On("ClaimDaily", mock.Anything, testIdentity).
		Return(nil, &client.APIError{Status: http.StatusTooManyRequests, Message: "action on cooldown: next claim in 23h0m0s"}).Once()

	resp = d.Execute(context.Background(), testRequest(CmdDaily))
	assert.True(t, resp.IsError)
	assert.Contains(t, resp.Body, "Try again in **23h**")
}

func TestExecute_Give(t *testing.T) {
	t.Run("CASE 1: valid transfer", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Transfer", mock.Anything, testIdentity, "bob", int64(150)).Return(&domain.TransferResult{
			RecipientName: "bob", Amount: 150, SenderBalance: 850,
		}, nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdGive, "150", "@bob"))

		assert.Equal(t, "Transfer complete! You sent 150 chips to @bob.\nYour new balance: 850 chips.", resp.Body)
	})

	t.Run("CASE 2: bad arguments never reach the API", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdGive, "150", "bob"))

		assert.True(t, resp.IsError)
		assert.Equal(t, "❌ "+MsgGiveBadRecipient, resp.Body)
		api.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestExecute_Boards(t *testing.T) {
	api := &MockAPI{}
	api.On("Leaderboard", mock.Anything, 0).Return([]domain.LeaderboardEntry{
		{Rank: 1, Username: "alice", Balance: 5000},
		{Rank: 4, Username: "dave", Balance: 100},
	}, nil)
	api.On("Winners", mock.Anything, 0).Return([]domain.WinnerEntry{}, nil)
	d := newTestDispatcher(api)

	top := d.Execute(context.Background(), testRequest(CmdTop))
	assert.Equal(t, "🥇 @alice - 5,000 chips\n4. @dave - 100 chips", top.Body)

	winners := d.Execute(context.Background(), testRequest(CmdWinners))
	assert.Equal(t, MsgWinnersEmpty, winners.Body)

	api.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestExecute_ShopBuyUse(t *testing.T) {
	items := []domain.ShopItem{
		{ID: "lucky_charm", Name: "Lucky Charm", Description: "Double wins", Price: 300, Type: domain.ItemTypeWinBoost},
		{ID: "trophy", Name: "Trophy", Description: "Bragging rights", Price: 5000, Unique: true, Type: domain.ItemTypeCollectible},
	}

	t.Run("CASE 1: catalog", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Shop", mock.Anything).Return(items, nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdShop))

		assert.Contains(t, resp.Body, "**Trophy** (`trophy`) - 5,000 chips [unique]")
		assert.Equal(t, MsgShopFooter, resp.Footer)
	})

	t.Run("CASE 2: buy", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Buy", mock.Anything, testIdentity, "lucky_charm").Return(&domain.PurchaseResult{ItemID: "lucky_charm", Cost: 300, Balance: 700}, nil)
		api.On("Shop", mock.Anything).Return(items, nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdBuy, "Lucky_Charm"))

		assert.Equal(t, "You bought **Lucky Charm** for 300 chips.\nYour balance: 700 chips.", resp.Body)
	})

	t.Run("CASE 3: use without item", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdUse))

		assert.True(t, resp.IsError)
		assert.Equal(t, "Usage: use <item>", resp.Body)
	})

	t.Run("CASE 4: use activates", func(t *testing.T) {
		api := &MockAPI{}
		api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
		api.On("Use", mock.Anything, testIdentity, "lucky_charm").Return(&domain.Effect{Kind: domain.EffectWinBoost, Magnitude: 2}, nil)
		api.On("Shop", mock.Anything).Return(nil, &client.APIError{Status: http.StatusInternalServerError})
		d := newTestDispatcher(api)

		resp := d.Execute(context.Background(), testRequest(CmdUse, "lucky_charm"))

		assert.Equal(t, "**lucky_charm** is now active.", resp.Body)
	})
}

func TestExecute_InventoryStatsJackpots(t *testing.T) {
	api := &MockAPI{}
	api.On("Register", mock.Anything, testIdentity).Return(testRegistration(false), nil)
	api.On("Inventory", mock.Anything, testIdentity).Return([]domain.InventoryView{
		{Item: domain.ShopItem{ID: "trophy", Name: "Trophy"}, Quantity: 1},
	}, nil)
	api.On("Analytics", mock.Anything, testIdentity).Return(nil, &client.APIError{
		Status: http.StatusForbidden, Message: "Analytics are locked. Use an analytics pass first.",
	})
	api.On("Jackpots", mock.Anything).Return([]domain.JackpotSnapshot{{MachineKey: "pharaoh", Title: "Pharaoh's Gold", Amount: 12500}}, nil)
	d := newTestDispatcher(api)

	inv := d.Execute(context.Background(), testRequest("inv"))
	assert.Equal(t, "• **Trophy** (`trophy`) x1", inv.Body)

	stats := d.Execute(context.Background(), testRequest(CmdStats))
	assert.True(t, stats.IsError)
	assert.Contains(t, stats.Body, "Analytics are locked")

	pools := d.Execute(context.Background(), testRequest(CmdJackpots))
	assert.Equal(t, "• Pharaoh's Gold: 💎 12,500 chips", pools.Body)
}

func TestRenderAnalytics(t *testing.T) {
	report := &domain.PlayerAnalytics{
		Overall: domain.SpinStats{Spins: 12, FreeSpins: 10, Wagered: 200, Won: 5900, BiggestWin: 5900},
		ByMachine: map[string]domain.SpinStats{
			"space": {Spins: 10, Wagered: 0, Won: 0},
			"fruit": {Spins: 2, Wagered: 200, Won: 5900},
		},
		AccessExpiresAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	resp := RenderAnalytics(report)

	assert.Contains(t, resp.Body, "Net: +5,700")
	assert.Less(t, strings.Index(resp.Body, "**fruit**"), strings.Index(resp.Body, "**space**"))
	assert.Equal(t, "Access until 2026-03-01 12:00 UTC", resp.Footer)
}
