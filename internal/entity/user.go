package entity

import (
	"time"
)

// User 每个聊天对应一个用户, 首次交互时创建
type User struct {
	Id        int64 `gorm:"primaryKey"`
	Username  string
	CreatedAt time.Time
}
