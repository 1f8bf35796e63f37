package inout

import "github.com/shopspring/decimal"

// GetStatisticsListReq 日统计列表查询
type GetStatisticsListReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Start    string `form:"start"` // 2006-01-02
	End      string `form:"end"`
}

// StatisticsItem 日统计列表项
type StatisticsItem struct {
	Id                int             `json:"id"`
	RestaurantId      int             `json:"restaurant_id"`
	StatDate          string          `json:"stat_date"`
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCustomers    int             `json:"total_customers"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	UpdateTime        string          `json:"update_time"`
}

// StatisticsListResp 日统计列表响应
type StatisticsListResp struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []StatisticsItem `json:"items"`
}

// RecomputeStatisticsReq 手动重算某天统计
type RecomputeStatisticsReq struct {
	Date string `json:"date" form:"date"` // 2006-01-02，缺省为当天
}

// RecomputeForOrderReq 按订单触发重算
type RecomputeForOrderReq struct {
	OrderId int `json:"order_id" binding:"required"`
}

// StatisticsSummaryResp 仪表盘汇总
type StatisticsSummaryResp struct {
	Today     StatisticsItem   `json:"today"`
	Week      []StatisticsItem `json:"week"`
	WeekTotal decimal.Decimal  `json:"week_total"`
}
