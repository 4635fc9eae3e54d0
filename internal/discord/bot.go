package discord

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/osse101/CasinoBot_Go/internal/botstatus"
	"github.com/osse101/CasinoBot_Go/internal/command"
	"github.com/osse101/CasinoBot_Go/internal/delivery"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

// Executor runs a chat command and renders the reply
type Executor interface {
	Execute(ctx context.Context, req command.Request) command.Response
}

// Bot represents the Discord bot
type Bot struct {
	Session    *discordgo.Session
	Dispatcher Executor
	Deliverer  *delivery.Deliverer
	Registry   *CommandRegistry
	Status     *botstatus.Tracker
	AppID      string
	GuildID    string
	FrameDelay time.Duration

	ctx context.Context
}

// Config holds the bot configuration
type Config struct {
	Token      string
	AppID      string
	GuildID    string
	FrameDelay time.Duration
	Delivery   delivery.Config
}

// New creates a new Discord bot
func New(cfg Config, dispatcher Executor, status *botstatus.Tracker) (*Bot, error) {
	s, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &Bot{
		Session:    s,
		Dispatcher: dispatcher,
		Deliverer:  delivery.New(domain.PlatformDiscord, cfg.Delivery, delivery.WithTransient(isTransient)),
		Registry:   DefaultRegistry(),
		Status:     status,
		AppID:      cfg.AppID,
		GuildID:    cfg.GuildID,
		FrameDelay: cfg.FrameDelay,
		ctx:        context.Background(),
	}, nil
}

// Start opens the gateway connection
func (b *Bot) Start() error {
	b.Session.AddHandler(b.ready)
	b.Session.AddHandler(b.interactionCreate)

	if err := b.Session.Open(); err != nil {
		return fmt.Errorf("error opening connection: %w", err)
	}

	slog.Info(LogMsgBotRunning)
	return nil
}

// Stop closes the gateway connection
func (b *Bot) Stop() {
	if err := b.Session.Close(); err != nil {
		slog.Warn("Error closing Discord session", "error", err)
	}
}

// Run serves interactions until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()

	<-ctx.Done()
	return nil
}

// Connected reports whether the gateway session is up
func (b *Bot) Connected() bool {
	return b.Session != nil && b.Session.DataReady
}

func (b *Bot) ready(s *discordgo.Session, r *discordgo.Ready) {
	slog.Info(LogMsgBotReady, "user", r.User.Username, "guilds", len(r.Guilds))
}

func (b *Bot) interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}
	ctx, cancel := context.WithTimeout(b.ctx, HandlerTimeout)
	defer cancel()

	b.handle(ctx, s, i.Interaction)
}
