package discord

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/command"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Responder is the part of a discordgo session that answers interactions
type Responder interface {
	InteractionRespond(interaction *discordgo.Interaction, resp *discordgo.InteractionResponse, options ...discordgo.RequestOption) error
	InteractionResponseEdit(interaction *discordgo.Interaction, newresp *discordgo.WebhookEdit, options ...discordgo.RequestOption) (*discordgo.Message, error)
}

// CommandRegistry holds the registered slash commands in registration order
type CommandRegistry struct {
	Commands map[string]*discordgo.ApplicationCommand
	order    []string
}

// NewCommandRegistry creates a new registry
func NewCommandRegistry() *CommandRegistry {
	return &CommandRegistry{
		Commands: make(map[string]*discordgo.ApplicationCommand),
	}
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(cmd *discordgo.ApplicationCommand) {
	if _, ok := r.Commands[cmd.Name]; !ok {
		r.order = append(r.order, cmd.Name)
	}
	r.Commands[cmd.Name] = cmd
}

// List returns the commands in registration order
func (r *CommandRegistry) List() []*discordgo.ApplicationCommand {
	out := make([]*discordgo.ApplicationCommand, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.Commands[name])
	}
	return out
}

// RegisterCommands registers or updates the slash commands with Discord.
// Only performs updates if commands have changed to avoid rate limits.
func (b *Bot) RegisterCommands(forceUpdate bool) error {
	slog.Info(LogMsgCheckCommands, "guild", b.GuildID)

	desiredCmds := b.Registry.List()

	if forceUpdate {
		slog.Info(LogMsgCommandsForced, "count", len(desiredCmds))
		if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
			return fmt.Errorf("failed to bulk overwrite commands: %w", err)
		}
		slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
		return nil
	}

	existingCmds, err := b.Session.ApplicationCommands(b.AppID, b.GuildID)
	if err != nil {
		return fmt.Errorf("failed to fetch existing commands: %w", err)
	}

	if commandsEqual(existingCmds, desiredCmds) {
		slog.Info(LogMsgCommandsSame, "count", len(existingCmds))
		return nil
	}

	slog.Info(LogMsgCommandsChanged, "existing", len(existingCmds), "desired", len(desiredCmds))
	if _, err := b.Session.ApplicationCommandBulkOverwrite(b.AppID, b.GuildID, desiredCmds); err != nil {
		return fmt.Errorf("failed to update commands: %w", err)
	}

	slog.Info(LogMsgCommandsUpdated, "count", len(desiredCmds))
	return nil
}

// commandsEqual checks if two command sets are equivalent
func commandsEqual(existing, desired []*discordgo.ApplicationCommand) bool {
	if len(existing) != len(desired) {
		return false
	}

	existingMap := make(map[string]*discordgo.ApplicationCommand, len(existing))
	for _, cmd := range existing {
		existingMap[cmd.Name] = cmd
	}

	for _, want := range desired {
		have, ok := existingMap[want.Name]
		if !ok || !commandEqual(have, want) {
			return false
		}
	}
	return true
}

func commandEqual(a, b *discordgo.ApplicationCommand) bool {
	if a.Name != b.Name || a.Description != b.Description {
		return false
	}
	if len(a.Options) != len(b.Options) {
		return false
	}
	for i := range a.Options {
		if !optionEqual(a.Options[i], b.Options[i]) {
			return false
		}
	}
	return true
}

func optionEqual(a, b *discordgo.ApplicationCommandOption) bool {
	if a.Type != b.Type || a.Name != b.Name || a.Description != b.Description || a.Required != b.Required {
		return false
	}
	if (a.MinValue == nil) != (b.MinValue == nil) {
		return false
	}
	if a.MinValue != nil && *a.MinValue != *b.MinValue {
		return false
	}
	if len(a.Choices) != len(b.Choices) {
		return false
	}
	for i := range a.Choices {
		if a.Choices[i].Name != b.Choices[i].Name || a.Choices[i].Value != b.Choices[i].Value {
			return false
		}
	}
	return true
}

// handle runs one slash command: defer, dispatch, play the reel frames, then show the result
func (b *Bot) handle(ctx context.Context, s Responder, i *discordgo.Interaction) {
	data := i.ApplicationCommandData()
	def, ok := b.Registry.Commands[data.Name]
	if !ok {
		slog.Warn(LogMsgUnknownCommand, "name", data.Name)
		return
	}
	if b.Status != nil {
		b.Status.RecordCommand()
	}

	if !b.deferResponse(ctx, s, i) {
		return
	}

	user := getInteractionUser(i)
	resp := b.Dispatcher.Execute(ctx, command.Request{
		Platform:   domain.PlatformDiscord,
		PlatformID: user.ID,
		Username:   user.Username,
		Command:    data.Name,
		Args:       optionArgs(def, data),
	})

	for _, frame := range resp.Frames {
		// a lost frame is cosmetic; carry on to the result
		_ = b.edit(ctx, s, i, &discordgo.WebhookEdit{Content: &frame})
		if !sleep(ctx, b.FrameDelay) {
			return
		}
	}

	empty := ""
	if err := b.edit(ctx, s, i, &discordgo.WebhookEdit{
		Content: &empty,
		Embeds:  &[]*discordgo.MessageEmbed{createEmbed(resp)},
	}); err != nil {
		slog.Error(LogMsgEditFailed, "command", data.Name, "error", err)
	}
}

// deferResponse acknowledges an interaction with a deferred message.
// Returns false if deferral failed.
func (b *Bot) deferResponse(ctx context.Context, s Responder, i *discordgo.Interaction) bool {
	err := b.Deliverer.Send(ctx, func(ctx context.Context) error {
		return s.InteractionRespond(i, &discordgo.InteractionResponse{
			Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
		}, discordgo.WithContext(ctx))
	})
	if err != nil {
		slog.Error(LogMsgDeferFailed, "error", err)
		return false
	}
	return true
}

func (b *Bot) edit(ctx context.Context, s Responder, i *discordgo.Interaction, edit *discordgo.WebhookEdit) error {
	return b.Deliverer.Send(ctx, func(ctx context.Context) error {
		_, err := s.InteractionResponseEdit(i, edit, discordgo.WithContext(ctx))
		return err
	})
}

func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

// getInteractionUser extracts the user from an interaction.
// Handles both guild (Member.User) and DM (User) contexts and never returns nil.
func getInteractionUser(i *discordgo.Interaction) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	if i.User != nil {
		return i.User
	}
	return &discordgo.User{}
}

// optionArgs flattens the supplied options into chat arguments, in the
// order the command declares them
func optionArgs(def *discordgo.ApplicationCommand, data discordgo.ApplicationCommandInteractionData) []string {
	given := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(data.Options))
	for _, opt := range data.Options {
		given[opt.Name] = opt
	}

	args := make([]string, 0, len(given))
	for _, declared := range def.Options {
		opt, ok := given[declared.Name]
		if !ok || opt.Type != declared.Type {
			continue
		}
		switch opt.Type {
		case discordgo.ApplicationCommandOptionString:
			args = append(args, opt.StringValue())
		case discordgo.ApplicationCommandOptionInteger:
			args = append(args, strconv.FormatInt(opt.IntValue(), 10))
		case discordgo.ApplicationCommandOptionUser:
			args = append(args, "@"+resolvedUsername(data, opt))
		}
	}
	return args
}

// resolvedUsername looks up the username Discord resolved for a user option
func resolvedUsername(data discordgo.ApplicationCommandInteractionData, opt *discordgo.ApplicationCommandInteractionDataOption) string {
	id := opt.UserValue(nil).ID
	if data.Resolved != nil {
		if u, ok := data.Resolved.Users[id]; ok && u.Username != "" {
			return u.Username
		}
	}
	return id
}

// createEmbed renders a dispatcher response as an embed
func createEmbed(resp command.Response) *discordgo.MessageEmbed {
	footer := resp.Footer
	if footer == "" {
		footer = FooterCasinoBot
	}
	return &discordgo.MessageEmbed{
		Title:       resp.Title,
		Description: resp.Body,
		Color:       resp.Color,
		Footer: &discordgo.MessageEmbedFooter{
			Text: footer,
		},
	}
}
