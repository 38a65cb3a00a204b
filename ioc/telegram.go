package ioc

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/spf13/viper"
)

func InitTelegramBot() *tgbotapi.BotAPI {
	type Config struct {
		Token string `mapstructure:"token"`
	}

	var cfg Config
	if err := viper.UnmarshalKey("telegram", &cfg); err != nil {
		panic(err)
	}
	if cfg.Token == "" {
		panic("no telegram token set")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		panic(err)
	}
	return bot
}
