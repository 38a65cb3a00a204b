package price

import (
	"context"
	"log/slog"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/shopspring/decimal"
)

const fetchTimeout = 5 * time.Second

// Service 行情价格服务接口
type Service interface {
	// LatestPrice returns the current price for a symbol.
	// The second result is false when the feed is unavailable for any
	// reason; failures are logged, never returned.
	LatestPrice(ctx context.Context, symbol string) (decimal.Decimal, bool)
}

type BinanceService struct {
	cli *binance.Client
}

func NewBinanceService(cli *binance.Client) *BinanceService {
	return &BinanceService{cli: cli}
}

func (svc *BinanceService) LatestPrice(ctx context.Context, symbol string) (decimal.Decimal, bool) {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	prices, err := svc.cli.NewListPricesService().Symbol(symbol).Do(ctx)
	if err != nil {
		slog.Warn("failed to fetch price", "symbol", symbol, "error", err)
		return decimal.Zero, false
	}
	if len(prices) == 0 {
		slog.Warn("no price returned", "symbol", symbol)
		return decimal.Zero, false
	}

	p, err := decimal.NewFromString(prices[0].Price)
	if err != nil {
		slog.Warn("fail to parse price", "symbol", symbol, "price", prices[0].Price, "error", err)
		return decimal.Zero, false
	}
	return p, true
}
