package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KNICEX/price-sentry/internal/bot"
	"github.com/KNICEX/price-sentry/internal/repo"
	"github.com/KNICEX/price-sentry/internal/schedule"
	"github.com/KNICEX/price-sentry/internal/service/command"
	"github.com/KNICEX/price-sentry/internal/service/monitor"
	"github.com/KNICEX/price-sentry/internal/service/notification"
	"github.com/KNICEX/price-sentry/internal/service/price"
	"github.com/KNICEX/price-sentry/internal/service/watch"
	"github.com/KNICEX/price-sentry/ioc"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func initViper() {

	// --config=./config/xxx.yaml
	file := pflag.String("config", "./config/config.dev.yaml", "specify config file")
	pflag.Parse()

	viper.SetConfigFile(*file)
	err := viper.ReadInConfig()
	if err != nil {
		panic(fmt.Errorf("fatal error config file: %s \n", err))
	}

}

func initMonitorSchedule() (interval, initialDelay time.Duration) {
	type Config struct {
		Interval     time.Duration `mapstructure:"interval"`
		InitialDelay time.Duration `mapstructure:"initial_delay"`
	}

	cfg := Config{
		Interval:     15 * time.Second,
		InitialDelay: 5 * time.Second,
	}
	if err := viper.UnmarshalKey("monitor", &cfg); err != nil {
		panic(err)
	}
	return cfg.Interval, cfg.InitialDelay
}

func main() {
	initViper()

	db := ioc.InitDB()
	if err := repo.InitTables(db); err != nil {
		panic(err)
	}
	userRepo := repo.NewUserRepo(db)
	watchRepo := repo.NewWatchRepo(db)
	watchSvc := watch.NewService(watchRepo)

	bian := ioc.InitBinanceCli()
	priceSvc := price.NewBinanceService(bian)

	tgBot := ioc.InitTelegramBot()
	notifySvc := notification.NewTelegramService(tgBot)

	watchMonitor := monitor.NewWatchMonitor(watchSvc, watchRepo, priceSvc, monitor.WithNotifier(notifySvc))
	interval, initialDelay := initMonitorSchedule()
	runner := schedule.NewRepeating(watchMonitor, interval, initialDelay)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runner.Start(ctx)
	defer runner.Stop()

	handler := command.NewHandler(userRepo, watchSvc)
	b := bot.New(tgBot, handler)
	b.Start(ctx)
	defer b.Stop()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
