package command

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/CasinoBot_Go/internal/client"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/logger"
)

// API is the subset of the core API client the dispatcher needs
type API interface {
	Register(ctx context.Context, id client.Identity) (*client.Registration, error)
	Balance(ctx context.Context, id client.Identity) (*domain.BalanceView, error)
	ClaimDaily(ctx context.Context, id client.Identity) (*domain.DailyClaim, error)
	Transfer(ctx context.Context, id client.Identity, recipient string, amount int64) (*domain.TransferResult, error)
	Inventory(ctx context.Context, id client.Identity) ([]domain.InventoryView, error)
	Analytics(ctx context.Context, id client.Identity) (*domain.PlayerAnalytics, error)
	Leaderboard(ctx context.Context, limit int) ([]domain.LeaderboardEntry, error)
	Winners(ctx context.Context, limit int) ([]domain.WinnerEntry, error)
	Machines(ctx context.Context) (*client.MachineCatalog, error)
	Spin(ctx context.Context, id client.Identity, machine string, bet *int64) (*domain.SpinResult, error)
	Jackpots(ctx context.Context) ([]domain.JackpotSnapshot, error)
	Shop(ctx context.Context) ([]domain.ShopItem, error)
	Buy(ctx context.Context, id client.Identity, itemID string) (*domain.PurchaseResult, error)
	Use(ctx context.Context, id client.Identity, itemID string) (*domain.Effect, error)
}

// Request is one chat command from a player
type Request struct {
	Platform   string
	PlatformID string
	Username   string
	Command    string
	Args       []string
}

func (r Request) identity() client.Identity {
	return client.Identity{Platform: r.Platform, PlatformID: r.PlatformID, Username: r.Username}
}

type handlerFunc func(ctx context.Context, req Request) (Response, error)

type entry struct {
	handle   handlerFunc
	register bool // player is registered (or synced) before the handler runs
}

// Dispatcher routes chat commands to the core API and renders the replies
type Dispatcher struct {
	api      API
	pick     func(n int) int
	catalogs *expirable.LRU[string, *client.MachineCatalog]
	commands map[string]entry
}

// NewDispatcher creates a dispatcher over the given API
func NewDispatcher(api API) *Dispatcher {
	d := &Dispatcher{
		api:      api,
		pick:     rand.IntN,
		catalogs: expirable.NewLRU[string, *client.MachineCatalog](1, nil, CatalogTTL),
	}
	d.commands = map[string]entry{
		CmdStart:     {handle: d.start},
		CmdHelp:      {handle: d.help},
		CmdSlots:     {handle: d.slots, register: true},
		CmdBalance:   {handle: d.balance, register: true},
		CmdDaily:     {handle: d.daily, register: true},
		CmdGive:      {handle: d.give, register: true},
		CmdTop:       {handle: d.top},
		CmdWinners:   {handle: d.winners},
		CmdShop:      {handle: d.shop},
		CmdBuy:       {handle: d.buy, register: true},
		CmdUse:       {handle: d.use, register: true},
		CmdInventory: {handle: d.inventory, register: true},
		CmdStats:     {handle: d.stats, register: true},
		CmdJackpots:  {handle: d.jackpots},
	}
	return d
}

// WithPicker replaces the random source used for cosmetic reel frames
func (d *Dispatcher) WithPicker(pick func(n int) int) *Dispatcher {
	d.pick = pick
	return d
}

// Commands lists the canonical command names
func (d *Dispatcher) Commands() []string {
	return []string{CmdStart, CmdHelp, CmdSlots, CmdBalance, CmdDaily, CmdGive, CmdTop, CmdWinners,
		CmdShop, CmdBuy, CmdUse, CmdInventory, CmdStats, CmdJackpots}
}

// Known reports whether name, or the alias it stands for, is a command
func (d *Dispatcher) Known(name string) bool {
	_, ok := d.commands[Normalize(name)]
	return ok
}

// Normalize lowercases a command and resolves aliases
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "/")))
	if canonical, ok := Aliases[name]; ok {
		return canonical
	}
	return name
}

// Execute runs one command. Failures are rendered as error responses, never returned.
func (d *Dispatcher) Execute(ctx context.Context, req Request) Response {
	req.Command = Normalize(req.Command)
	e, ok := d.commands[req.Command]
	if !ok {
		return errorResponse(fmt.Sprintf(MsgUnknownCommand, req.Command))
	}

	ctx = logger.WithRequestID(ctx, logger.GenerateRequestID())
	ctx = logger.WithPlayer(ctx, req.Platform, req.PlatformID)
	log := logger.FromContext(ctx).With("command", req.Command)

	if e.register {
		if _, err := d.api.Register(ctx, req.identity()); err != nil {
			log.Error(LogMsgRegisterFailed, "error", err)
			return errorResponse(FriendlyError(err))
		}
	}

	resp, err := e.handle(ctx, req)
	if err != nil {
		status := client.StatusOf(err)
		if (status == 0 && !isParseError(err)) || status >= 500 {
			log.Error(LogMsgCommandFailed, "error", err)
		} else {
			log.Debug(LogMsgCommandRejected, "error", err)
		}
		return errorResponse(FriendlyError(err))
	}
	return resp
}

func (d *Dispatcher) catalog(ctx context.Context) (*client.MachineCatalog, error) {
	if cat, ok := d.catalogs.Get(catalogKey); ok {
		return cat, nil
	}
	cat, err := d.api.Machines(ctx)
	if err != nil {
		return nil, err
	}
	d.catalogs.Add(catalogKey, cat)
	return cat, nil
}

func (d *Dispatcher) start(ctx context.Context, req Request) (Response, error) {
	reg, err := d.api.Register(ctx, req.identity())
	if err != nil {
		return Response{}, err
	}
	return RenderWelcome(reg), nil
}

func (d *Dispatcher) help(_ context.Context, _ Request) (Response, error) {
	return RenderHelp(), nil
}

func (d *Dispatcher) slots(ctx context.Context, req Request) (Response, error) {
	cat, err := d.catalog(ctx)
	if err != nil {
		return Response{}, err
	}

	args, err := ParseSlotsArgs(req.Args, func(key string) bool {
		_, ok := cat.Find(key)
		return ok
	})
	if err != nil {
		var unknown *UnknownMachineError
		if errors.As(err, &unknown) {
			help := RenderSlotsHelp(cat)
			help.Body = FriendlyError(err) + "\n\n" + help.Body
			return help, nil
		}
		return Response{}, err
	}
	if args.Help {
		return RenderSlotsHelp(cat), nil
	}

	result, err := d.api.Spin(ctx, req.identity(), args.Machine, args.Bet)
	if err != nil {
		return Response{}, err
	}

	resp := RenderSpin(result)
	if machine, ok := cat.Find(result.MachineKey); ok {
		resp.Frames = d.frames(machine)
	}
	return resp, nil
}

// frames builds the cosmetic lines shown while the reels "spin"
func (d *Dispatcher) frames(m client.Machine) []string {
	if len(m.Reel) == 0 {
		return nil
	}
	out := make([]string, 0, RevealFrames+1)
	out = append(out, fmt.Sprintf(MsgSpinning, m.Title))
	for range RevealFrames {
		var symbols [3]string
		for i := range symbols {
			symbols[i] = m.Reel[d.pick(len(m.Reel))]
		}
		out = append(out, "[ "+strings.Join(symbols[:], " | ")+" ]")
	}
	return out
}

func (d *Dispatcher) balance(ctx context.Context, req Request) (Response, error) {
	view, err := d.api.Balance(ctx, req.identity())
	if err != nil {
		return Response{}, err
	}
	if view.Username == "" {
		view.Username = req.Username
	}
	return RenderBalance(view), nil
}

func (d *Dispatcher) daily(ctx context.Context, req Request) (Response, error) {
	claim, err := d.api.ClaimDaily(ctx, req.identity())
	if err != nil {
		return Response{}, err
	}
	return RenderDaily(claim), nil
}

func (d *Dispatcher) give(ctx context.Context, req Request) (Response, error) {
	args, err := ParseGiveArgs(req.Args)
	if err != nil {
		return Response{}, err
	}
	res, err := d.api.Transfer(ctx, req.identity(), args.Recipient, args.Amount)
	if err != nil {
		return Response{}, err
	}
	return RenderTransfer(res), nil
}

func (d *Dispatcher) top(ctx context.Context, _ Request) (Response, error) {
	entries, err := d.api.Leaderboard(ctx, 0)
	if err != nil {
		return Response{}, err
	}
	return RenderTop(entries), nil
}

func (d *Dispatcher) winners(ctx context.Context, _ Request) (Response, error) {
	entries, err := d.api.Winners(ctx, 0)
	if err != nil {
		return Response{}, err
	}
	return RenderWinners(entries), nil
}

func (d *Dispatcher) shop(ctx context.Context, _ Request) (Response, error) {
	items, err := d.api.Shop(ctx)
	if err != nil {
		return Response{}, err
	}
	return RenderShop(items), nil
}

func (d *Dispatcher) buy(ctx context.Context, req Request) (Response, error) {
	itemID, err := itemArg(CmdBuy, req.Args)
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	res, err := d.api.Buy(ctx, req.identity(), itemID)
	if err != nil {
		return Response{}, err
	}
	return RenderPurchase(d.itemName(ctx, itemID), res), nil
}

func (d *Dispatcher) use(ctx context.Context, req Request) (Response, error) {
	itemID, err := itemArg(CmdUse, req.Args)
	if err != nil {
		return errorResponse(err.Error()), nil
	}
	effect, err := d.api.Use(ctx, req.identity(), itemID)
	if err != nil {
		return Response{}, err
	}
	return RenderActivation(d.itemName(ctx, itemID), effect), nil
}

// itemName resolves a display name, falling back to the id
func (d *Dispatcher) itemName(ctx context.Context, itemID string) string {
	items, err := d.api.Shop(ctx)
	if err != nil {
		return itemID
	}
	for _, it := range items {
		if it.ID == itemID {
			return it.Name
		}
	}
	return itemID
}

func itemArg(cmd string, args []string) (string, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return "", fmt.Errorf(MsgItemRequired, cmd)
	}
	return strings.ToLower(strings.TrimSpace(args[0])), nil
}

func (d *Dispatcher) inventory(ctx context.Context, req Request) (Response, error) {
	items, err := d.api.Inventory(ctx, req.identity())
	if err != nil {
		return Response{}, err
	}
	return RenderInventory(items), nil
}

func (d *Dispatcher) stats(ctx context.Context, req Request) (Response, error) {
	report, err := d.api.Analytics(ctx, req.identity())
	if err != nil {
		return Response{}, err
	}
	return RenderAnalytics(report), nil
}

func (d *Dispatcher) jackpots(ctx context.Context, _ Request) (Response, error) {
	pools, err := d.api.Jackpots(ctx)
	if err != nil {
		return Response{}, err
	}
	return RenderJackpots(pools), nil
}
