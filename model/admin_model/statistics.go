package admin_model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyStatistics 每餐厅每自然日（UTC）一行的订单统计
// (restaurant_id, stat_date) 唯一键保证一键一行，写入走 upsert
type DailyStatistics struct {
	Id                int             `json:"id" gorm:"primaryKey;autoIncrement"`
	RestaurantId      int             `json:"restaurant_id" gorm:"column:restaurant_id;uniqueIndex:uk_restaurant_date;not null"`
	StatDate          string          `json:"stat_date" gorm:"column:stat_date;uniqueIndex:uk_restaurant_date;not null;type:date"`
	TotalOrders       int             `json:"total_orders" gorm:"not null;default:0"`
	TotalRevenue      decimal.Decimal `json:"total_revenue" gorm:"not null;default:0;type:decimal(12,2)"`
	TotalCustomers    int             `json:"total_customers" gorm:"not null;default:0"`
	AverageOrderValue decimal.Decimal `json:"average_order_value" gorm:"not null;default:0;type:decimal(12,2)"`
	CreateTime        time.Time       `json:"create_time" gorm:"column:create_time"`
	UpdateTime        time.Time       `json:"update_time" gorm:"column:update_time"`
}

func (DailyStatistics) TableName() string {
	return "daily_statistics"
}
