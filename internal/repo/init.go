package repo

import (
	"github.com/KNICEX/price-sentry/internal/entity"
	"gorm.io/gorm"
)

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(&entity.User{}, &entity.Watch{})
}
