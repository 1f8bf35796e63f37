package model

import (
	"time"
)

// User 后台登录账号
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	PasswordBcrypt string    `json:"-" gorm:"column:password_bcrypt"`
	RestaurantId   int       `json:"restaurant_id" gorm:"column:restaurant_id"` // 0 表示平台超级账号
	Enable         bool      `json:"enable"`
	CreateTime     time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime     time.Time `json:"update_time" gorm:"column:update_time"`
}

func (User) TableName() string {
	return "user"
}
