package admin_model

import "time"

// Restaurant 餐厅（租户）
type Restaurant struct {
	Id         int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name       string    `json:"name" gorm:"column:name"`
	Phone      string    `json:"phone"`
	Address    string    `json:"address"`
	Intro      string    `json:"intro"` // 落地页展示的简介
	Status     string    `json:"status"`
	CreateTime time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time `json:"update_time" gorm:"column:update_time"`
}

func (Restaurant) TableName() string {
	return "restaurant"
}
