package command

import "time"

// Command names understood by every chat transport
const (
	CmdStart     = "start"
	CmdHelp      = "help"
	CmdSlots     = "slots"
	CmdBalance   = "balance"
	CmdDaily     = "daily"
	CmdGive      = "give"
	CmdTop       = "top"
	CmdWinners   = "winners"
	CmdShop      = "shop"
	CmdBuy       = "buy"
	CmdUse       = "use"
	CmdInventory = "inventory"
	CmdStats     = "stats"
	CmdJackpots  = "jackpots"
)

// Aliases map alternative spellings to their command
var Aliases = map[string]string{
	"start_casino": CmdStart,
	"s":            CmdSlots,
	"leaderboard":  CmdTop,
	"inv":          CmdInventory,
	"analytics":    CmdStats,
	"jackpot":      CmdJackpots,
}

// Embed colors
const (
	ColorDefault = 0x5865F2
	ColorWin     = 0x2ECC71
	ColorLoss    = 0xE74C3C
	ColorJackpot = 0xFFD700
	ColorError   = 0xED4245
)

// RevealFrames is the number of cosmetic frames shown before a spin result
const RevealFrames = 3

// CatalogTTL bounds how long the machine list is reused between commands
const CatalogTTL = 5 * time.Minute

const catalogKey = "machines"

const (
	LogMsgRegisterFailed  = "Failed to register player before command"
	LogMsgCommandFailed   = "Command failed"
	LogMsgCommandRejected = "Command rejected"
)

// Chat titles
const (
	TitleWelcome   = "🎰 Welcome to the Casino"
	TitleHelp      = "🎰 Casino Commands"
	TitleSlotsHelp = "🎰 Slot Machine Hall"
	TitleBalance   = "💰 Balance"
	TitleDaily     = "🎉 Daily Bonus"
	TitleTransfer  = "💸 Transfer"
	TitleTop       = "🏆 Leaderboard"
	TitleWinners   = "🤑 Biggest Winners"
	TitleShop      = "🛒 Shop"
	TitleInventory = "🎒 Inventory"
	TitleStats     = "📊 Spin Analytics"
	TitleJackpots  = "💎 Jackpots"
	TitlePurchase  = "🛍️ Purchase"
	TitleEffect    = "✨ Item Activated"
	TitleError     = "Oops"
	TitleSpin      = "🎰 %s"
)

// Chat messages
const (
	MsgRegistered        = "Welcome! %s chips have been credited to your account. Good luck!"
	MsgAlreadyRegistered = "You are already registered. Your balance: %s chips."
	MsgBalanceLine       = "👤 %s, your balance: 💰 %s chips."
	MsgEffectLine        = "• %s%s"
	MsgEffectExpires     = " (until %s)"
	MsgDailyClaimed      = "You received the daily bonus of %s chips!\nYour balance: %s chips."
	MsgTransferDone      = "Transfer complete! You sent %s chips to %s.\nYour new balance: %s chips."
	MsgTopEmpty          = "The leaderboard is empty. Be the first! 🎯"
	MsgTopLine           = "%s %s - %s chips"
	MsgWinnersEmpty      = "No winners yet. Spin to get on the board!"
	MsgWinnersLine       = "%s %s - %s chips won"
	MsgShopEmpty         = "The shop is closed."
	MsgShopLine          = "• **%s** (`%s`) - %s chips%s\n  %s"
	MsgShopUnique        = " [unique]"
	MsgShopFooter        = "Buy with `buy <item>` and activate with `use <item>`."
	MsgInventoryEmpty    = "Your inventory is empty. Visit the shop!"
	MsgInventoryLine     = "• **%s** (`%s`) x%d"
	MsgPurchased         = "You bought **%s** for %s chips.\nYour balance: %s chips."
	MsgActivated         = "**%s** is now active%s."
	MsgStatsOverall      = "Spins: %d (free: %d)\nWagered: %s\nWon: %s\nNet: %s\nBiggest win: %s"
	MsgStatsMachine      = "**%s**: %d spins, wagered %s, won %s, net %s"
	MsgStatsAccess       = "Access until %s"
	MsgJackpotsEmpty     = "No progressive jackpots are running."
	MsgJackpotLine       = "• %s: 💎 %s chips"
	MsgSpinning          = "🎰 %s: spinning the reels..."
	MsgSpinFooter        = "Bet: %s | Won: %s"
	MsgSlotsHelpLine     = "• %s (`slots %s`) - %s"
	MsgSlotsHelpUsage    = "Use `slots <machine> <bet>` or `s <machine> <bet>`."
	MsgSlotsHelpDefault  = "Without a machine, %s is used. Without a bet, %d%% of your balance is wagered (min %s, max %s)."
	MsgUnknownMachine    = "Unknown machine `%s`. Use `slots help` for the list."
	MsgUnknownCommand    = "Unknown command `%s`. Try `help`."
	MsgGiveUsage         = "Usage: give <amount> @username"
	MsgGiveBadRecipient  = "Could not recognize the recipient. Use the @username format."
	MsgBetInvalid        = "Bet must be a positive number."
	MsgAmountInvalid     = "Amount must be a positive number."
	MsgItemRequired      = "Usage: %s <item>"
	MsgCooldownActive    = "⏳ Whoa there! You need to wait a bit before doing that again."
	MsgCooldownWait      = "%s\nTry again in **%s**."
	MsgGenericError      = "❌ Something went wrong. Please try again later."
	MsgErrorPrefix       = "❌ "
)

// Help lines, in display order
var HelpLines = []string{
	"• `start` - register and receive your starting chips",
	"• `balance` - view your balance and active effects",
	"• `daily` - claim the daily bonus",
	"• `slots [machine] [bet]` - play the slots (`slots help` lists machines)",
	"• `give <amount> @username` - send chips to another player",
	"• `top` - richest players, `winners` - biggest winners",
	"• `shop`, `buy <item>`, `use <item>`, `inventory` - items and boosts",
	"• `stats` - spin analytics (needs an analytics pass)",
	"• `jackpots` - progressive jackpot pools",
}

var medals = map[int]string{1: "🥇", 2: "🥈", 3: "🥉"}
