package inout

import "github.com/shopspring/decimal"

// OrderListReq 订单列表查询
type OrderListReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	No       string `form:"no"`
	Status   string `form:"status"`
	Start    string `form:"start"` // 2006-01-02
	End      string `form:"end"`
}

// OrderListItem 订单列表项
type OrderListItem struct {
	Id         int             `json:"id"`
	No         string          `json:"no"`
	CustomerId *int            `json:"customer_id"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	Remark     string          `json:"remark"`
	CreateTime string          `json:"create_time"`
	UpdateTime string          `json:"update_time"`
}

// OrderListResp 订单列表响应
type OrderListResp struct {
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Items    []OrderListItem `json:"items"`
}

// CreateOrderItemReq 录单明细行
type CreateOrderItemReq struct {
	DishId int `json:"dish_id" binding:"required"`
	Num    int `json:"num" binding:"required,min=1"`
}

// CreateOrderReq 收银台录单
type CreateOrderReq struct {
	CustomerId *int                 `json:"customer_id"`
	Remark     string               `json:"remark"`
	Items      []CreateOrderItemReq `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusReq 订单状态变更
type UpdateOrderStatusReq struct {
	Id     int    `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending paid completed cancelled"`
}
