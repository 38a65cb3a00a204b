package repo

import (
	"context"
	"time"

	"github.com/KNICEX/price-sentry/internal/entity"
	"gorm.io/gorm"
)

const historyLimit = 10

type WatchRepo interface {
	Create(ctx context.Context, watch entity.Watch) (int64, error)
	FindActiveByUser(ctx context.Context, userId int64) ([]entity.Watch, error)
	FindAllActive(ctx context.Context) ([]entity.Watch, error)
	// MarkTriggered flips the watch to triggered only while it is still active.
	// Returns false without error when another transition already won.
	MarkTriggered(ctx context.Context, id int64, when time.Time) (bool, error)
	Cancel(ctx context.Context, userId, id int64) error
	FindTriggeredByUser(ctx context.Context, userId int64) ([]entity.Watch, error)
}

type watchRepo struct {
	db *gorm.DB
}

func NewWatchRepo(db *gorm.DB) WatchRepo {
	return &watchRepo{
		db: db,
	}
}

func (r *watchRepo) Create(ctx context.Context, watch entity.Watch) (int64, error) {
	err := r.db.WithContext(ctx).Create(&watch).Error
	if err != nil {
		return 0, err
	}
	return watch.Id, nil
}

func (r *watchRepo) FindActiveByUser(ctx context.Context, userId int64) ([]entity.Watch, error) {
	var watches []entity.Watch
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userId, entity.WatchStatusActive).
		Order("id").
		Find(&watches).Error
	if err != nil {
		return nil, err
	}
	return watches, nil
}

func (r *watchRepo) FindAllActive(ctx context.Context) ([]entity.Watch, error) {
	var watches []entity.Watch
	err := r.db.WithContext(ctx).Where("status = ?", entity.WatchStatusActive).Find(&watches).Error
	if err != nil {
		return nil, err
	}
	return watches, nil
}

// MarkTriggered 单条带条件 UPDATE, 与 Cancel 竞争时至多一方生效
func (r *watchRepo) MarkTriggered(ctx context.Context, id int64, when time.Time) (bool, error) {
	res := r.db.WithContext(ctx).Model(&entity.Watch{}).
		Where("id = ? AND status = ?", id, entity.WatchStatusActive).
		Updates(map[string]any{
			"status":       entity.WatchStatusTriggered,
			"triggered_at": when,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *watchRepo) Cancel(ctx context.Context, userId, id int64) error {
	return r.db.WithContext(ctx).Model(&entity.Watch{}).
		Where("id = ? AND user_id = ? AND status = ?", id, userId, entity.WatchStatusActive).
		Update("status", entity.WatchStatusCancelled).Error
}

func (r *watchRepo) FindTriggeredByUser(ctx context.Context, userId int64) ([]entity.Watch, error) {
	var watches []entity.Watch
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userId, entity.WatchStatusTriggered).
		Order("triggered_at DESC, id DESC").
		Limit(historyLimit).
		Find(&watches).Error
	if err != nil {
		return nil, err
	}
	return watches, nil
}
