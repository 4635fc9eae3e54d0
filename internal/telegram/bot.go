// Package telegram serves the casino commands over the Telegram Bot API.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/osse101/CasinoBot_Go/internal/botstatus"
	"github.com/osse101/CasinoBot_Go/internal/command"
	"github.com/osse101/CasinoBot_Go/internal/concurrency"
	"github.com/osse101/CasinoBot_Go/internal/delivery"
	"github.com/osse101/CasinoBot_Go/internal/domain"
	"github.com/osse101/CasinoBot_Go/internal/worker"
)

// Executor runs a chat command and renders the reply
type Executor interface {
	Execute(ctx context.Context, req command.Request) command.Response
	Known(name string) bool
}

// Sender is the part of the Bot API client used to post and edit messages
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Config holds the bot configuration
type Config struct {
	Token      string
	FrameDelay time.Duration
	Delivery   delivery.Config
}

// Bot represents the Telegram bot
type Bot struct {
	api        *tgbotapi.BotAPI
	sender     Sender
	dispatcher Executor
	deliverer  *delivery.Deliverer
	status     *botstatus.Tracker
	frameDelay time.Duration

	botID    int64
	username string

	pool      *worker.Pool
	locks     *concurrency.LockManager
	connected atomic.Bool
}

// New authenticates with the Bot API and creates the bot
func New(cfg Config, dispatcher Executor, status *botstatus.Tracker) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("error creating Telegram client: %w", err)
	}

	b := newBot(api, dispatcher, status, cfg)
	b.api = api
	b.botID = api.Self.ID
	b.username = api.Self.UserName
	return b, nil
}

func newBot(sender Sender, dispatcher Executor, status *botstatus.Tracker, cfg Config) *Bot {
	return &Bot{
		sender:     sender,
		dispatcher: dispatcher,
		deliverer:  delivery.New(domain.PlatformTelegram, cfg.Delivery, delivery.WithTransient(isTransient)),
		status:     status,
		frameDelay: cfg.FrameDelay,
		pool:       worker.NewPool(UpdateWorkers, UpdateQueueSize),
		locks:      concurrency.NewLockManager(),
	}
}

// Connected reports whether the update loop is running
func (b *Bot) Connected() bool {
	return b.connected.Load()
}

// Run long-polls for updates until ctx is cancelled
func (b *Bot) Run(ctx context.Context) error {
	if err := b.publishCommands(); err != nil {
		slog.Warn(LogMsgSetCommandsFailed, "error", err)
	}

	b.pool.Start()
	defer b.pool.Stop()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = PollTimeoutSeconds
	u.AllowedUpdates = []string{UpdateMessage, UpdateMyMembers}
	updates := b.api.GetUpdatesChan(u)

	b.connected.Store(true)
	defer b.connected.Store(false)
	slog.Info(LogMsgBotRunning, "username", b.username)

	for {
		select {
		case <-ctx.Done():
			slog.Info(LogMsgBotStopping)
			b.api.StopReceivingUpdates()
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			b.enqueue(ctx, update)
		}
	}
}

func (b *Bot) enqueue(ctx context.Context, update tgbotapi.Update) {
	job := worker.JobFunc(func(context.Context) error {
		b.handleUpdate(ctx, update)
		return nil
	})
	if !b.pool.TryEnqueue(job) {
		slog.Warn(LogMsgUpdateDropped, "update_id", update.UpdateID)
	}
}

func (b *Bot) publishCommands() error {
	_, err := b.sender.Request(tgbotapi.NewSetMyCommands(BotCommands...))
	return err
}
