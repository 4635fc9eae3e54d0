package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/osse101/CasinoBot_Go/internal/client"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// RenderWelcome greets a player after registration
func RenderWelcome(reg *client.Registration) Response {
	body := fmt.Sprintf(MsgAlreadyRegistered, Chips(reg.Player.Balance))
	if reg.Created {
		body = fmt.Sprintf(MsgRegistered, Chips(reg.Player.Balance))
	}
	return Response{
		Title: TitleWelcome,
		Body:  body + "\n\n" + strings.Join(HelpLines, "\n"),
		Color: ColorDefault,
	}
}

// RenderHelp lists every command
func RenderHelp() Response {
	return Response{Title: TitleHelp, Body: strings.Join(HelpLines, "\n"), Color: ColorDefault}
}

// RenderSlotsHelp lists the machines and explains the auto-bet rule
func RenderSlotsHelp(cat *client.MachineCatalog) Response {
	lines := make([]string, 0, len(cat.Machines)+3)
	defaultTitle := cat.DefaultMachine
	for _, m := range cat.Machines {
		lines = append(lines, fmt.Sprintf(MsgSlotsHelpLine, m.Title, m.Key, m.Description))
		if m.Key == cat.DefaultMachine {
			defaultTitle = m.Title
		}
	}
	lines = append(lines, "", MsgSlotsHelpUsage, fmt.Sprintf(MsgSlotsHelpDefault,
		defaultTitle,
		int(cat.AutoBet.Fraction*100),
		Chips(cat.AutoBet.Min),
		Chips(cat.AutoBet.Max)))

	return Response{Title: TitleSlotsHelp, Body: strings.Join(lines, "\n"), Color: ColorDefault}
}

// RenderSpin renders a settled spin
func RenderSpin(result *domain.SpinResult) Response {
	color := ColorLoss
	switch {
	case result.Jackpot != nil && anyJackpot(result.Rounds):
		color = ColorJackpot
	case result.TotalWinnings > 0:
		color = ColorWin
	}

	body := strings.Join(result.Lines, "\n")
	return Response{
		Title:  fmt.Sprintf(TitleSpin, result.MachineTitle),
		Body:   body,
		Footer: fmt.Sprintf(MsgSpinFooter, Chips(result.Bet), Chips(result.TotalWinnings)),
		Color:  color,
	}
}

func anyJackpot(rounds []domain.SpinRound) bool {
	for _, r := range rounds {
		if r.JackpotWon > 0 {
			return true
		}
	}
	return false
}

// RenderBalance shows the balance with active effects
func RenderBalance(view *domain.BalanceView) Response {
	lines := []string{fmt.Sprintf(MsgBalanceLine, DisplayName(view.Username), Chips(view.Balance))}
	for _, e := range view.Effects {
		lines = append(lines, fmt.Sprintf(MsgEffectLine, describeEffect(e), expirySuffix(e)))
	}
	return Response{Title: TitleBalance, Body: strings.Join(lines, "\n"), Color: ColorDefault}
}

func describeEffect(e domain.Effect) string {
	switch e.Kind {
	case domain.EffectCreditLine:
		return fmt.Sprintf("%s (%s chips)", EffectName(e.Kind), Chips(int64(e.Magnitude)))
	case domain.EffectWinBoost:
		return fmt.Sprintf("%s x%g", EffectName(e.Kind), e.Magnitude)
	default:
		return EffectName(e.Kind)
	}
}

func expirySuffix(e domain.Effect) string {
	if !e.HasExpiry() {
		return ""
	}
	return fmt.Sprintf(MsgEffectExpires, formatClock(e.ExpiresAt))
}

// RenderDaily confirms a daily bonus
func RenderDaily(claim *domain.DailyClaim) Response {
	return Response{
		Title: TitleDaily,
		Body:  fmt.Sprintf(MsgDailyClaimed, Chips(claim.Bonus), Chips(claim.Balance)),
		Color: ColorWin,
	}
}

// RenderTransfer confirms a chip transfer
func RenderTransfer(res *domain.TransferResult) Response {
	return Response{
		Title: TitleTransfer,
		Body:  fmt.Sprintf(MsgTransferDone, Chips(res.Amount), DisplayName(res.RecipientName), Chips(res.SenderBalance)),
		Color: ColorDefault,
	}
}

// RenderTop renders the balance leaderboard
func RenderTop(entries []domain.LeaderboardEntry) Response {
	if len(entries) == 0 {
		return Response{Title: TitleTop, Body: MsgTopEmpty, Color: ColorDefault}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(MsgTopLine, RankPrefix(e.Rank), nameOr(e.Username, e.PlayerID), Chips(e.Balance)))
	}
	return Response{Title: TitleTop, Body: strings.Join(lines, "\n"), Color: ColorJackpot}
}

// RenderWinners renders the biggest-winners board
func RenderWinners(entries []domain.WinnerEntry) Response {
	if len(entries) == 0 {
		return Response{Title: TitleWinners, Body: MsgWinnersEmpty, Color: ColorDefault}
	}
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf(MsgWinnersLine, RankPrefix(e.Rank), nameOr(e.Username, e.PlayerID), Chips(e.TotalWon)))
	}
	return Response{Title: TitleWinners, Body: strings.Join(lines, "\n"), Color: ColorJackpot}
}

func nameOr(username, fallback string) string {
	if username == "" {
		return fallback
	}
	return DisplayName(username)
}

// RenderShop lists the catalog
func RenderShop(items []domain.ShopItem) Response {
	if len(items) == 0 {
		return Response{Title: TitleShop, Body: MsgShopEmpty, Color: ColorDefault}
	}
	lines := make([]string, 0, len(items))
	for _, it := range items {
		unique := ""
		if it.Unique {
			unique = MsgShopUnique
		}
		lines = append(lines, fmt.Sprintf(MsgShopLine, it.Name, it.ID, Chips(it.Price), unique, it.Description))
	}
	return Response{Title: TitleShop, Body: strings.Join(lines, "\n"), Footer: MsgShopFooter, Color: ColorDefault}
}

// RenderInventory lists owned items
func RenderInventory(items []domain.InventoryView) Response {
	if len(items) == 0 {
		return Response{Title: TitleInventory, Body: MsgInventoryEmpty, Color: ColorDefault}
	}
	lines := make([]string, 0, len(items))
	for _, v := range items {
		lines = append(lines, fmt.Sprintf(MsgInventoryLine, v.Item.Name, v.Item.ID, v.Quantity))
	}
	return Response{Title: TitleInventory, Body: strings.Join(lines, "\n"), Footer: MsgShopFooter, Color: ColorDefault}
}

// RenderPurchase confirms a purchase
func RenderPurchase(item string, res *domain.PurchaseResult) Response {
	return Response{
		Title: TitlePurchase,
		Body:  fmt.Sprintf(MsgPurchased, item, Chips(res.Cost), Chips(res.Balance)),
		Color: ColorWin,
	}
}

// RenderActivation confirms an activated effect
func RenderActivation(item string, e *domain.Effect) Response {
	return Response{
		Title: TitleEffect,
		Body:  fmt.Sprintf(MsgActivated, item, expirySuffix(*e)),
		Color: ColorWin,
	}
}

// RenderAnalytics renders the spin statistics report
func RenderAnalytics(a *domain.PlayerAnalytics) Response {
	o := a.Overall
	lines := []string{fmt.Sprintf(MsgStatsOverall,
		o.Spins, o.FreeSpins, Chips(o.Wagered), Chips(o.Won), SignedChips(o.Net()), Chips(o.BiggestWin))}

	keys := make([]string, 0, len(a.ByMachine))
	for k := range a.ByMachine {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	if len(keys) > 0 {
		lines = append(lines, "")
	}
	for _, k := range keys {
		s := a.ByMachine[k]
		lines = append(lines, fmt.Sprintf(MsgStatsMachine, k, s.Spins, Chips(s.Wagered), Chips(s.Won), SignedChips(s.Net())))
	}

	resp := Response{Title: TitleStats, Body: strings.Join(lines, "\n"), Color: ColorDefault}
	if !a.AccessExpiresAt.IsZero() {
		resp.Footer = fmt.Sprintf(MsgStatsAccess, formatClock(a.AccessExpiresAt))
	}
	return resp
}

// RenderJackpots lists the progressive pools
func RenderJackpots(pools []domain.JackpotSnapshot) Response {
	if len(pools) == 0 {
		return Response{Title: TitleJackpots, Body: MsgJackpotsEmpty, Color: ColorDefault}
	}
	lines := make([]string, 0, len(pools))
	for _, p := range pools {
		name := p.Title
		if name == "" {
			name = p.MachineKey
		}
		lines = append(lines, fmt.Sprintf(MsgJackpotLine, name, Chips(p.Amount)))
	}
	return Response{Title: TitleJackpots, Body: strings.Join(lines, "\n"), Color: ColorJackpot}
}
