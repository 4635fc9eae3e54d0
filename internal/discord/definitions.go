package discord

import (
	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/command"
)

var minOne = 1.0

// DefaultRegistry returns the casino slash commands
func DefaultRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdStart,
		Description: "Create your casino account",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdHelp,
		Description: "Show the casino commands",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdSlots,
		Description: "Spin a slot machine",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptMachine,
				Description: "Machine to play, or help for the list",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptBet,
				Description: "Chips to bet (default: 5% of your balance)",
				MinValue:    &minOne,
			},
		},
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdBalance,
		Description: "Show your chips and active effects",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdDaily,
		Description: "Claim your daily bonus",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdGive,
		Description: "Give chips to another player",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        OptAmount,
				Description: "Chips to give",
				Required:    true,
				MinValue:    &minOne,
			},
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        OptUser,
				Description: "Player receiving the chips",
				Required:    true,
			},
		},
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdTop,
		Description: "Show the richest players",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdWinners,
		Description: "Show the biggest winners",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdShop,
		Description: "List the items for sale",
	})
	r.Register(itemCommand(command.CmdBuy, "Buy an item from the shop"))
	r.Register(itemCommand(command.CmdUse, "Activate an item you own"))
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdInventory,
		Description: "Show the items you own",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdStats,
		Description: "Show your spin statistics (needs an analytics pass)",
	})
	r.Register(&discordgo.ApplicationCommand{
		Name:        command.CmdJackpots,
		Description: "Show the progressive jackpots",
	})

	return r
}

func itemCommand(name, description string) *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        name,
		Description: description,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        OptItem,
				Description: "Item id, as listed by /shop",
				Required:    true,
			},
		},
	}
}
