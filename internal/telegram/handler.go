package telegram

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/osse101/CasinoBot_Go/internal/command"
	"github.com/osse101/CasinoBot_Go/internal/domain"
)

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ctx, cancel := context.WithTimeout(ctx, HandlerTimeout)
	defer cancel()

	switch {
	case update.MyChatMember != nil:
		b.handleMembership(ctx, update.MyChatMember)
	case update.Message != nil && update.Message.IsCommand():
		b.handleCommand(ctx, update.Message)
	}
}

// handleCommand runs one "/cmd[@bot] args" message. A player's commands
// are handled one at a time so spin animations never interleave.
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil || msg.Chat == nil || !b.addressedToMe(msg) {
		return
	}
	name := msg.Command()
	if !b.dispatcher.Known(name) {
		return
	}

	defer b.locks.Lock(strconv.FormatInt(msg.From.ID, 10))()

	if b.status != nil {
		b.status.RecordCommand()
	}

	resp := b.dispatcher.Execute(ctx, command.Request{
		Platform:   domain.PlatformTelegram,
		PlatformID: strconv.FormatInt(msg.From.ID, 10),
		Username:   username(msg.From),
		Command:    name,
		Args:       strings.Fields(msg.CommandArguments()),
	})

	b.reply(ctx, msg, resp)
}

// reply posts the reel frames as one message edited in place, then the result
func (b *Bot) reply(ctx context.Context, msg *tgbotapi.Message, resp command.Response) {
	text := resp.Text()
	if len(resp.Frames) == 0 {
		if _, err := b.send(ctx, replyTo(msg, text)); err != nil {
			slog.Debug(LogMsgReplyFailed, "chat_id", msg.Chat.ID, "error", err)
		}
		return
	}

	spin, err := b.send(ctx, replyTo(msg, resp.Frames[0]))
	if err == nil {
		for _, frame := range resp.Frames[1:] {
			if !sleep(ctx, b.frameDelay) {
				return
			}
			// a lost frame is cosmetic
			_ = b.edit(ctx, tgbotapi.NewEditMessageText(msg.Chat.ID, spin.MessageID, frame))
		}
		if !sleep(ctx, b.frameDelay) {
			return
		}
		if err := b.edit(ctx, tgbotapi.NewEditMessageText(msg.Chat.ID, spin.MessageID, text)); err == nil {
			return
		}
	}

	// the animation could not be shown; still deliver the result
	if _, err := b.send(ctx, replyTo(msg, text)); err != nil {
		slog.Debug(LogMsgReplyFailed, "chat_id", msg.Chat.ID, "error", err)
	}
}

// handleMembership greets a group the bot has just been added to
func (b *Bot) handleMembership(ctx context.Context, change *tgbotapi.ChatMemberUpdated) {
	if change.NewChatMember.User == nil || change.NewChatMember.User.ID != b.botID {
		return
	}
	if change.Chat.Type != ChatGroup && change.Chat.Type != ChatSupergroup {
		return
	}
	if old := change.OldChatMember.Status; old != "" && old != StatusLeft && old != StatusKicked {
		return
	}
	if s := change.NewChatMember.Status; s == StatusLeft || s == StatusKicked {
		return
	}

	help := b.dispatcher.Execute(ctx, command.Request{Platform: domain.PlatformTelegram, Command: command.CmdHelp})
	text := MsgGroupWelcome + "\n\n" + help.Text()
	if _, err := b.send(ctx, tgbotapi.NewMessage(change.Chat.ID, text)); err != nil {
		slog.Warn(LogMsgWelcomeFailed, "chat_id", change.Chat.ID, "error", err)
	}
}

func (b *Bot) send(ctx context.Context, c tgbotapi.Chattable) (tgbotapi.Message, error) {
	var sent tgbotapi.Message
	err := b.deliverer.Send(ctx, func(ctx context.Context) error {
		m, err := b.sender.Send(c)
		if err != nil {
			sleep(ctx, retryAfter(err))
			return err
		}
		sent = m
		return nil
	})
	return sent, err
}

func (b *Bot) edit(ctx context.Context, c tgbotapi.Chattable) error {
	return b.deliverer.Send(ctx, func(ctx context.Context) error {
		_, err := b.sender.Request(c)
		if err != nil {
			sleep(ctx, retryAfter(err))
		}
		return err
	})
}

// addressedToMe drops "/cmd@otherbot" meant for another bot in the group
func (b *Bot) addressedToMe(msg *tgbotapi.Message) bool {
	full := msg.CommandWithAt()
	at := strings.Index(full, "@")
	if at < 0 || b.username == "" {
		return true
	}
	return strings.EqualFold(full[at+1:], b.username)
}

func replyTo(msg *tgbotapi.Message, text string) tgbotapi.MessageConfig {
	out := tgbotapi.NewMessage(msg.Chat.ID, text)
	out.ReplyToMessageID = msg.MessageID
	return out
}

// username is the player's handle, or their first name when they have none
func username(u *tgbotapi.User) string {
	if u.UserName != "" {
		return u.UserName
	}
	return u.FirstName
}
