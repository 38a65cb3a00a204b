package monitor

import (
	"context"

	"github.com/shopspring/decimal"
)

type PriceService interface {
	LatestPrice(ctx context.Context, symbol string) (decimal.Decimal, bool)
}

type Notifier interface {
	Send(ctx context.Context, chatId int64, text string) error
}
