package watch

import (
	"context"
	"errors"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/shopspring/decimal"
)

// ErrParse 用户输入格式错误
var ErrParse = errors.New("invalid watch format")

// Service 监听生命周期服务接口
type Service interface {
	// Register parses "SYMBOL min-max" and creates an active watch.
	// Malformed input fails with an error wrapping ErrParse.
	Register(ctx context.Context, userId int64, text string) (entity.Watch, error)
	ListActive(ctx context.Context, userId int64) ([]entity.Watch, error)
	// Cancel is fire-and-forget: it only fails on storage errors,
	// never because no matching active watch existed.
	Cancel(ctx context.Context, userId, id int64) error
	History(ctx context.Context, userId int64) ([]entity.Watch, error)
	// EvaluateAndTrigger reports whether this call moved the watch to
	// triggered. Bounds are inclusive on both ends.
	EvaluateAndTrigger(ctx context.Context, w entity.Watch, price decimal.Decimal) (bool, error)
}
