package repo

import (
	"context"

	"github.com/KNICEX/price-sentry/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepo interface {
	Create(ctx context.Context, user entity.User) error
	FindById(ctx context.Context, id int64) (entity.User, error)
}

type userRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) UserRepo {
	return &userRepo{
		db: db,
	}
}

// Create 重复创建直接忽略
func (r *userRepo) Create(ctx context.Context, user entity.User) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&user).Error
}

func (r *userRepo) FindById(ctx context.Context, id int64) (entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		return entity.User{}, err
	}
	return user, nil
}
