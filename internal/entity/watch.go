package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Watch 价格区间监听
type Watch struct {
	Id          int64           `gorm:"primaryKey;autoIncrement"`
	UserId      int64           `gorm:"index"`
	Symbol      string          `gorm:"index"`
	PriceMin    decimal.Decimal `gorm:"type:decimal(32,12)"`
	PriceMax    decimal.Decimal `gorm:"type:decimal(32,12)"`
	Status      int             `gorm:"index"`
	CreatedAt   time.Time
	TriggeredAt *time.Time `gorm:"index"` // 仅在因价格命中退出 active 时设置
}

const (
	WatchStatusActive    = 0
	WatchStatusCancelled = 1
	WatchStatusTriggered = 2
)
