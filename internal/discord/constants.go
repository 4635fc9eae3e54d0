package discord

import "time"

// Footer text for every embed
const FooterCasinoBot = "CasinoBot"

// HandlerTimeout bounds one interaction from deferral to the final edit
const HandlerTimeout = 30 * time.Second

// Option names
const (
	OptMachine = "machine"
	OptBet     = "bet"
	OptAmount  = "amount"
	OptUser    = "user"
	OptItem    = "item"
)

// Log messages
const (
	LogMsgDeferFailed     = "Failed to send deferred response"
	LogMsgEditFailed      = "Failed to edit interaction response"
	LogMsgUnknownCommand  = "Interaction for unregistered command"
	LogMsgBotReady        = "Bot is ready"
	LogMsgBotRunning      = "Discord bot is now running"
	LogMsgCheckCommands   = "Checking Discord commands..."
	LogMsgCommandsForced  = "Force update enabled - replacing all commands"
	LogMsgCommandsSame    = "Commands unchanged, skipping registration"
	LogMsgCommandsChanged = "Commands changed, updating..."
	LogMsgCommandsUpdated = "Commands updated successfully"
)
