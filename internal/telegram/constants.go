package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Long polling
const (
	PollTimeoutSeconds = 60
	HandlerTimeout     = 30 * time.Second
	UpdateWorkers      = 8
	UpdateQueueSize    = 256
)

// Chat member statuses and chat types used by the welcome message
const (
	StatusLeft      = "left"
	StatusKicked    = "kicked"
	ChatGroup       = "group"
	ChatSupergroup  = "supergroup"
	UpdateMessage   = "message"
	UpdateMyMembers = "my_chat_member"
)

// MsgGroupWelcome opens the message posted when the bot joins a group
const MsgGroupWelcome = "Welcome to the chat casino! 🤖"

// Log messages
const (
	LogMsgBotRunning        = "Telegram bot is now running"
	LogMsgBotStopping       = "Telegram bot stopping"
	LogMsgSetCommandsFailed = "Failed to publish command list"
	LogMsgUpdateDropped     = "Update queue full, update dropped"
	LogMsgReplyFailed       = "Failed to deliver reply"
	LogMsgWelcomeFailed     = "Failed to send group welcome"
)

// BotCommands is the command menu published to Telegram
var BotCommands = []tgbotapi.BotCommand{
	{Command: "start_casino", Description: "Register and get your starting chips"},
	{Command: "balance", Description: "Show your chips and active effects"},
	{Command: "daily", Description: "Claim your daily bonus"},
	{Command: "slots", Description: "Spin a slot machine: /slots <machine> <bet>"},
	{Command: "give", Description: "Give chips: /give <amount> @username"},
	{Command: "top", Description: "Show the richest players"},
	{Command: "winners", Description: "Show the biggest winners"},
	{Command: "jackpots", Description: "Show the progressive jackpots"},
	{Command: "shop", Description: "List the items for sale"},
	{Command: "buy", Description: "Buy an item: /buy <item>"},
	{Command: "use", Description: "Activate an item: /use <item>"},
	{Command: "inventory", Description: "Show the items you own"},
	{Command: "stats", Description: "Show your spin statistics"},
	{Command: "help", Description: "Show the casino commands"},
}
