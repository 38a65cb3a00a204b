package bot

import (
	"context"
	"log/slog"
	"sync"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/KNICEX/price-sentry/internal/service/command"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Bot 长轮询读取更新, 路由到 command.Handler
type Bot struct {
	api     *tgbotapi.BotAPI
	handler *command.Handler

	done chan struct{}
	wg   sync.WaitGroup
}

func New(api *tgbotapi.BotAPI, handler *command.Handler) *Bot {
	return &Bot{
		api:     api,
		handler: handler,
		done:    make(chan struct{}),
	}
}

func (b *Bot) Start(ctx context.Context) {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 30
	updates := b.api.GetUpdatesChan(cfg)

	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		for {
			select {
			case <-b.done:
				return
			case <-ctx.Done():
				return
			case update := <-updates:
				b.handleUpdate(ctx, update)
			}
		}
	}()
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	userId := msg.From.ID

	var reply string
	switch msg.Command() {
	case "start":
		reply = b.handler.Start(ctx, entity.User{
			Id:       userId,
			Username: msg.From.UserName,
		})
	case "help":
		reply = b.handler.Help(ctx)
	case "list":
		reply = b.handler.List(ctx, userId)
	case "cancel":
		reply = b.handler.Cancel(ctx, userId, msg.CommandArguments())
	case "history":
		reply = b.handler.History(ctx, userId)
	case "":
		reply = b.handler.FreeText(ctx, userId, msg.Text)
	default:
		reply = b.handler.Help(ctx)
	}

	if _, err := b.api.Send(tgbotapi.NewMessage(msg.Chat.ID, reply)); err != nil {
		slog.Error("failed to send reply", "chat", msg.Chat.ID, "error", err)
	}
}

func (b *Bot) Stop() {
	b.api.StopReceivingUpdates()
	close(b.done)
	b.wg.Wait()
}
