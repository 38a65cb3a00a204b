package notification

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var _ Service = (*TelegramService)(nil)

type TelegramService struct {
	bot *tgbotapi.BotAPI
}

func NewTelegramService(bot *tgbotapi.BotAPI) *TelegramService {
	return &TelegramService{bot: bot}
}

func (svc *TelegramService) Send(ctx context.Context, chatId int64, text string) error {
	_, err := svc.bot.Send(tgbotapi.NewMessage(chatId, text))
	return err
}
