package admin_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// 订单状态
const (
	OrderStatusPending   = "pending"
	OrderStatusPaid      = "paid"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order 订单记录，统计只读不改
type Order struct {
	Id int `json:"id" gorm:"primaryKey;autoIncrement"`
	// 订单号
	No           string `json:"no"`
	RestaurantId int    `json:"restaurant_id" gorm:"column:restaurant_id"`
	// 下单顾客，堂食匿名单可能为空
	CustomerId *int   `json:"customer_id" gorm:"column:customer_id"`
	Status     string `json:"status"`
	// 订单金额
	Amount     decimal.Decimal `json:"amount" gorm:"type:decimal(12,2)"`
	Remark     string          `json:"remark"`
	CreateTime time.Time       `json:"create_time" gorm:"column:create_time"`
	UpdateTime time.Time       `json:"update_time" gorm:"column:update_time"`
}

// OrderItem 订单明细行
type OrderItem struct {
	Id         int             `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderId    int             `json:"order_id" gorm:"column:order_id"`
	DishId     int             `json:"dish_id" gorm:"column:dish_id"`
	DishName   string          `json:"dish_name" gorm:"column:dish_name"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(12,2)"`
	Num        int             `json:"num"`
	CreateTime time.Time       `json:"create_time" gorm:"column:create_time"`
}

func (Order) TableName() string {
	return "order"
}

func (OrderItem) TableName() string {
	return "order_item"
}
