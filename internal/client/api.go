package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Identity names the chat account a request is made for
type Identity struct {
	Platform   string `json:"platform"`
	PlatformID string `json:"platform_id"`
	Username   string `json:"username,omitempty"`
}

// Registration is the answer to a register call
type Registration struct {
	Message string         `json:"message"`
	Created bool           `json:"created"`
	Player  *domain.Player `json:"player"`
}

// AutoBetRule describes how the server picks a missing bet
type AutoBetRule struct {
	Fraction float64 `json:"fraction"`
	Min      int64   `json:"min"`
	Max      int64   `json:"max"`
}

// Machine is one machine of the catalog listing
type Machine struct {
	Key         string             `json:"key"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Type        domain.MachineType `json:"type"`
	Reel        []string           `json:"reel"`
}

// MachineCatalog is the machine listing with the auto-bet rule
type MachineCatalog struct {
	DefaultMachine string      `json:"default_machine"`
	AutoBet        AutoBetRule `json:"auto_bet"`
	Machines       []Machine   `json:"machines"`
}

// Find returns the machine with key, if listed
func (m *MachineCatalog) Find(key string) (Machine, bool) {
	for _, machine := range m.Machines {
		if machine.Key == key {
			return machine, true
		}
	}
	return Machine{}, false
}

type dataEnvelope[T any] struct {
	Data []T `json:"data"`
}

type playerRef struct {
	Platform   string `json:"platform"`
	PlatformID string `json:"platform_id"`
}

func refOf(id Identity) playerRef {
	return playerRef{Platform: id.Platform, PlatformID: id.PlatformID}
}

type transferRequest struct {
	playerRef
	RecipientUsername string `json:"recipient_username"`
	Amount            int64  `json:"amount"`
}

type spinRequest struct {
	playerRef
	Machine string `json:"machine,omitempty"`
	Bet     *int64 `json:"bet,omitempty"`
}

type itemRequest struct {
	playerRef
	ItemID string `json:"item_id"`
}

// Register creates the player on first contact and syncs the username afterwards
func (c *APIClient) Register(ctx context.Context, id Identity) (*Registration, error) {
	var out Registration
	if err := c.doRequest(ctx, http.MethodPost, PathRegister, nil, id, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Balance returns the balance and live effects of a player
func (c *APIClient) Balance(ctx context.Context, id Identity) (*domain.BalanceView, error) {
	var out domain.BalanceView
	if err := c.doRequest(ctx, http.MethodGet, PathBalance, playerQuery(id.Platform, id.PlatformID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ClaimDaily claims the daily bonus
func (c *APIClient) ClaimDaily(ctx context.Context, id Identity) (*domain.DailyClaim, error) {
	var out domain.DailyClaim
	if err := c.doRequest(ctx, http.MethodPost, PathDaily, nil, refOf(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Transfer sends chips to the player registered under recipient
func (c *APIClient) Transfer(ctx context.Context, id Identity, recipient string, amount int64) (*domain.TransferResult, error) {
	req := transferRequest{playerRef: refOf(id), RecipientUsername: recipient, Amount: amount}
	var out domain.TransferResult
	if err := c.doRequest(ctx, http.MethodPost, PathTransfer, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Inventory lists the items a player owns
func (c *APIClient) Inventory(ctx context.Context, id Identity) ([]domain.InventoryView, error) {
	var out dataEnvelope[domain.InventoryView]
	if err := c.doRequest(ctx, http.MethodGet, PathInventory, playerQuery(id.Platform, id.PlatformID), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Analytics returns the spin statistics unlocked by an analytics pass
func (c *APIClient) Analytics(ctx context.Context, id Identity) (*domain.PlayerAnalytics, error) {
	var out domain.PlayerAnalytics
	if err := c.doRequest(ctx, http.MethodGet, PathAnalytics, playerQuery(id.Platform, id.PlatformID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Leaderboard returns the top balances; limit 0 uses the server default
func (c *APIClient) Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error) {
	var out dataEnvelope[domain.LeaderboardEntry]
	if err := c.doRequest(ctx, http.MethodGet, PathLeaderboard, limitQuery(limit), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Winners returns the biggest cumulative winners
func (c *APIClient) Winners(ctx context.Context, limit int) ([]domain.WinnerEntry, error) {
	var out dataEnvelope[domain.WinnerEntry]
	if err := c.doRequest(ctx, http.MethodGet, PathWinners, limitQuery(limit), nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Machines lists the slot machines
func (c *APIClient) Machines(ctx context.Context) (*MachineCatalog, error) {
	var out MachineCatalog
	if err := c.doRequest(ctx, http.MethodGet, PathMachines, nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Spin plays one spin. An empty machine selects the default and a nil bet lets the server choose.
func (c *APIClient) Spin(ctx context.Context, id Identity, machine string, bet *int64) (*domain.SpinResult, error) {
	req := spinRequest{playerRef: refOf(id), Machine: machine, Bet: bet}
	var out domain.SpinResult
	if err := c.doRequest(ctx, http.MethodPost, PathSpin, nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Jackpots returns the current progressive pools
func (c *APIClient) Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error) {
	var out dataEnvelope[domain.JackpotSnapshot]
	if err := c.doRequest(ctx, http.MethodGet, PathJackpots, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Shop lists the items for sale
func (c *APIClient) Shop(ctx context.Context) ([]domain.ShopItem, error) {
	var out dataEnvelope[domain.ShopItem]
	if err := c.doRequest(ctx, http.MethodGet, PathShop, nil, nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// Buy buys one unit of an item
func (c *APIClient) Buy(ctx context.Context, id Identity, itemID string) (*domain.PurchaseResult, error) {
	var out domain.PurchaseResult
	if err := c.doRequest(ctx, http.MethodPost, PathBuy, nil, itemRequest{playerRef: refOf(id), ItemID: itemID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Use activates an owned item
func (c *APIClient) Use(ctx context.Context, id Identity, itemID string) (*domain.Effect, error) {
	var out domain.Effect
	if err := c.doRequest(ctx, http.MethodPost, PathUse, nil, itemRequest{playerRef: refOf(id), ItemID: itemID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func limitQuery(limit int) url.Values {
	if limit <= 0 {
		return nil
	}
	return url.Values{"limit": {strconv.Itoa(limit)}}
}

// Health checks that the core API answers its liveness probe
func (c *APIClient) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+PathHealth, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return &APIError{Status: resp.StatusCode}
	}
	return nil
}
