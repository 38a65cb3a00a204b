package monitor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/KNICEX/price-sentry/internal/repo"
	"github.com/KNICEX/price-sentry/internal/schedule"
	"github.com/KNICEX/price-sentry/internal/service/watch"
	"github.com/samber/lo"
)

// WatchMonitor 每个 tick 扫描一遍所有 active 的监听
type WatchMonitor struct {
	watchSvc watch.Service
	priceSvc PriceService
	notifier Notifier

	repo repo.WatchRepo
}

type consoleNotifier struct {
}

func (c consoleNotifier) Send(ctx context.Context, chatId int64, text string) error {
	fmt.Println("notify", chatId, text)
	return nil
}

type Option func(m *WatchMonitor)

func WithNotifier(notifier Notifier) Option {
	return func(m *WatchMonitor) {
		m.notifier = notifier
	}
}

func NewWatchMonitor(watchSvc watch.Service, watchRepo repo.WatchRepo, priceSvc PriceService, opts ...Option) *WatchMonitor {
	monitor := &WatchMonitor{
		watchSvc: watchSvc,
		priceSvc: priceSvc,
		repo:     watchRepo,
		notifier: consoleNotifier{},
	}
	for _, opt := range opts {
		opt(monitor)
	}
	return monitor
}

var _ schedule.Task = (*WatchMonitor)(nil)

func (m *WatchMonitor) Run(ctx context.Context) error {
	watches, err := m.repo.FindAllActive(ctx)
	if err != nil {
		return err
	}

	// one fetch per symbol per tick
	bySymbol := lo.GroupBy(watches, func(item entity.Watch) string {
		return item.Symbol
	})

	for symbol, group := range bySymbol {
		price, ok := m.priceSvc.LatestPrice(ctx, symbol)
		if !ok {
			// next tick retries
			continue
		}

		for _, w := range group {
			triggered, err := m.watchSvc.EvaluateAndTrigger(ctx, w, price)
			if err != nil {
				slog.Error("failed to evaluate watch", "id", w.Id, "symbol", symbol, "error", err)
				continue
			}
			if !triggered {
				continue
			}

			text := fmt.Sprintf("🔔 %s reached range %s-%s\nCurrent price: %s",
				symbol, w.PriceMin, w.PriceMax, price)
			if err = m.notifier.Send(ctx, w.UserId, text); err != nil {
				// the watch stays triggered, delivery is at most once
				slog.Error("failed to notify triggered watch", "id", w.Id, "user", w.UserId, "error", err)
			}
		}
	}
	return nil
}

func (m *WatchMonitor) Name() string {
	return "price watch monitor task"
}
