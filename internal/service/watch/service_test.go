package watch

import (
	"context"
	"testing"
	"time"

	"github.com/KNICEX/price-sentry/internal/entity"
	"github.com/KNICEX/price-sentry/pkg/decimalx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ============ Mock 定义 ============

type MockWatchRepo struct {
	mock.Mock
}

func (m *MockWatchRepo) Create(ctx context.Context, watch entity.Watch) (int64, error) {
	args := m.Called(ctx, watch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockWatchRepo) FindActiveByUser(ctx context.Context, userId int64) ([]entity.Watch, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]entity.Watch), args.Error(1)
}

func (m *MockWatchRepo) FindAllActive(ctx context.Context) ([]entity.Watch, error) {
	args := m.Called(ctx)
	return args.Get(0).([]entity.Watch), args.Error(1)
}

func (m *MockWatchRepo) MarkTriggered(ctx context.Context, id int64, when time.Time) (bool, error) {
	args := m.Called(ctx, id, when)
	return args.Bool(0), args.Error(1)
}

func (m *MockWatchRepo) Cancel(ctx context.Context, userId, id int64) error {
	args := m.Called(ctx, userId, id)
	return args.Error(0)
}

func (m *MockWatchRepo) FindTriggeredByUser(ctx context.Context, userId int64) ([]entity.Watch, error) {
	args := m.Called(ctx, userId)
	return args.Get(0).([]entity.Watch), args.Error(1)
}

// ============ 测试用例 ============

func TestService_Register(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := new(MockWatchRepo)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(w entity.Watch) bool {
		return w.Symbol == "BTCUSDT" &&
			w.Status == entity.WatchStatusActive &&
			w.UserId == 42 &&
			w.PriceMin.Equal(decimalx.MustFromString("90000")) &&
			w.PriceMax.Equal(decimalx.MustFromString("90500")) &&
			w.CreatedAt.Equal(now) &&
			w.TriggeredAt == nil
	})).Return(int64(7), nil)

	svc := NewService(repo, WithClock(func() time.Time { return now }))
	w, err := svc.Register(context.Background(), 42, "btcusdt 90000-90500")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), w.Id)
	assert.Equal(t, "BTCUSDT", w.Symbol)
	repo.AssertExpectations(t)
}

func TestService_RegisterMalformed(t *testing.T) {
	inputs := []string{
		"BTCUSDT",
		"BTCUSDT 90000 90500",
		"BTCUSDT 90000:90500",
		"BTCUSDT abc-90500",
		"",
	}
	for _, input := range inputs {
		repo := new(MockWatchRepo)
		svc := NewService(repo)
		_, err := svc.Register(context.Background(), 42, input)
		assert.ErrorIs(t, err, ErrParse, "input %q", input)
		repo.AssertNotCalled(t, "Create")
	}
}

func TestService_EvaluateAndTrigger(t *testing.T) {
	activeWatch := func() entity.Watch {
		return entity.Watch{
			Id:       3,
			UserId:   42,
			Symbol:   "BTCUSDT",
			PriceMin: decimalx.MustFromString("90000"),
			PriceMax: decimalx.MustFromString("90500"),
			Status:   entity.WatchStatusActive,
		}
	}

	tests := []struct {
		name          string
		watch         entity.Watch
		price         string
		expectAttempt bool
		markResult    bool
		wantTriggered bool
	}{
		{
			name:          "inside range",
			watch:         activeWatch(),
			price:         "90200",
			expectAttempt: true,
			markResult:    true,
			wantTriggered: true,
		},
		{
			name:          "equal to min counts",
			watch:         activeWatch(),
			price:         "90000",
			expectAttempt: true,
			markResult:    true,
			wantTriggered: true,
		},
		{
			name:          "equal to max counts",
			watch:         activeWatch(),
			price:         "90500",
			expectAttempt: true,
			markResult:    true,
			wantTriggered: true,
		},
		{
			name:  "below range",
			watch: activeWatch(),
			price: "89999.99",
		},
		{
			name:  "above range",
			watch: activeWatch(),
			price: "90500.01",
		},
		{
			name: "inverted range never matches",
			watch: entity.Watch{
				Id:       4,
				Status:   entity.WatchStatusActive,
				PriceMin: decimalx.MustFromString("90500"),
				PriceMax: decimalx.MustFromString("90000"),
			},
			price: "90200",
		},
		{
			name: "non active watch not evaluated",
			watch: entity.Watch{
				Id:       5,
				Status:   entity.WatchStatusCancelled,
				PriceMin: decimalx.MustFromString("90000"),
				PriceMax: decimalx.MustFromString("90500"),
			},
			price: "90200",
		},
		{
			name:          "lost race reports not triggered",
			watch:         activeWatch(),
			price:         "90200",
			expectAttempt: true,
			markResult:    false,
			wantTriggered: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWatchRepo)
			if tt.expectAttempt {
				repo.On("MarkTriggered", mock.Anything, tt.watch.Id, mock.Anything).Return(tt.markResult, nil)
			}
			svc := NewService(repo)

			triggered, err := svc.EvaluateAndTrigger(context.Background(), tt.watch, decimalx.MustFromString(tt.price))
			assert.NoError(t, err)
			assert.Equal(t, tt.wantTriggered, triggered)
			if !tt.expectAttempt {
				repo.AssertNotCalled(t, "MarkTriggered")
			}
			repo.AssertExpectations(t)
		})
	}
}

func TestService_CancelDelegates(t *testing.T) {
	repo := new(MockWatchRepo)
	repo.On("Cancel", mock.Anything, int64(42), int64(9)).Return(nil)

	svc := NewService(repo)
	assert.NoError(t, svc.Cancel(context.Background(), 42, 9))
	repo.AssertExpectations(t)
}
