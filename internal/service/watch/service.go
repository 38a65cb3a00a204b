package watch

import (
	"context"
	"time"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/KNICEX/price-sentry/internal/repo"
	"github.com/shopspring/decimal"
)

type watchService struct {
	repo repo.WatchRepo
	now  func() time.Time
}

type Option func(s *watchService)

func WithClock(now func() time.Time) Option {
	return func(s *watchService) {
		s.now = now
	}
}

func NewService(watchRepo repo.WatchRepo, opts ...Option) Service {
	svc := &watchService{
		repo: watchRepo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

func (s *watchService) Register(ctx context.Context, userId int64, text string) (entity.Watch, error) {
	spec, err := parseWatch(text)
	if err != nil {
		return entity.Watch{}, err
	}

	w := entity.Watch{
		UserId:    userId,
		Symbol:    spec.Symbol,
		PriceMin:  spec.Min,
		PriceMax:  spec.Max,
		Status:    entity.WatchStatusActive,
		CreatedAt: s.now(),
	}
	id, err := s.repo.Create(ctx, w)
	if err != nil {
		return entity.Watch{}, err
	}
	w.Id = id
	return w, nil
}

func (s *watchService) ListActive(ctx context.Context, userId int64) ([]entity.Watch, error) {
	return s.repo.FindActiveByUser(ctx, userId)
}

func (s *watchService) Cancel(ctx context.Context, userId, id int64) error {
	return s.repo.Cancel(ctx, userId, id)
}

func (s *watchService) History(ctx context.Context, userId int64) ([]entity.Watch, error) {
	return s.repo.FindTriggeredByUser(ctx, userId)
}

func (s *watchService) EvaluateAndTrigger(ctx context.Context, w entity.Watch, price decimal.Decimal) (bool, error) {
	if w.Status != entity.WatchStatusActive {
		return false, nil
	}
	if price.LessThan(w.PriceMin) || price.GreaterThan(w.PriceMax) {
		return false, nil
	}
	return s.repo.MarkTriggered(ctx, w.Id, s.now())
}
