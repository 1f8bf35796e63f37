package admin_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Dish 菜品
type Dish struct {
	Id           int             `json:"id"`
	DishName     string          `json:"dish_name" gorm:"column:dish_name"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Content      string          `json:"content"`
	Cover        string          `json:"cover"`
	Status       string          `json:"status"` // available / soldout / hidden
	CategoryId   int             `json:"category_id" gorm:"column:category_id"`
	RestaurantId int             `json:"restaurant_id" gorm:"column:restaurant_id"`
	Sort         int             `json:"sort"`
	Isdelete     int             `json:"isdelete"`
	CreateTime   time.Time       `json:"create_time" gorm:"column:create_time"`
	UpdateTime   time.Time       `json:"update_time" gorm:"column:update_time"`
}

// DishCategory 菜品分类
type DishCategory struct {
	Id           int       `json:"id"`
	Name         string    `json:"name" gorm:"column:name"`
	Status       string    `json:"status" gorm:"column:status"`
	RestaurantId int       `json:"restaurant_id" gorm:"column:restaurant_id"`
	Description  string    `json:"description" gorm:"column:description"`
	Sort         int       `json:"sort"`
	CreateTime   time.Time `json:"create_time" gorm:"column:create_time"`
	UpdateTime   time.Time `json:"update_time" gorm:"column:update_time"`
}

func (Dish) TableName() string {
	return "dish"
}

func (DishCategory) TableName() string {
	return "dish_category"
}
