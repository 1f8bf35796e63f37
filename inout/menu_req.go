package inout

import "github.com/shopspring/decimal"

// AddDishReq 添加菜品
type AddDishReq struct {
	DishName   string          `json:"dish_name" form:"dish_name" binding:"required"`
	Price      decimal.Decimal `json:"price" form:"price" binding:"required"`
	Content    string          `json:"content" form:"content"`
	Cover      string          `json:"cover" form:"cover"`
	Status     string          `json:"status" form:"status"`
	CategoryId int             `json:"category_id" form:"category_id" binding:"required"`
	Sort       int             `json:"sort" form:"sort"`
}

// UpdateDishReq 更新菜品
type UpdateDishReq struct {
	Id         int             `json:"id" binding:"required"`
	DishName   string          `json:"dish_name"`
	Price      decimal.Decimal `json:"price"`
	Content    string          `json:"content"`
	Cover      string          `json:"cover"`
	Status     string          `json:"status"`
	CategoryId int             `json:"category_id"`
	Sort       int             `json:"sort"`
}

// GetDishListReq 菜品列表查询
type GetDishListReq struct {
	Page       int    `form:"page"`
	PageSize   int    `form:"page_size"`
	DishName   string `form:"dish_name"`
	Status     string `form:"status"`
	CategoryId int    `form:"category_id"`
}

// DishListItem 菜品列表项
type DishListItem struct {
	Id         int             `json:"id"`
	DishName   string          `json:"dish_name"`
	Price      decimal.Decimal `json:"price"`
	Content    string          `json:"content"`
	Cover      string          `json:"cover"`
	Status     string          `json:"status"`
	CategoryId int             `json:"category_id"`
	Sort       int             `json:"sort"`
	CreateTime string          `json:"create_time"`
	UpdateTime string          `json:"update_time"`
}

// GetDishListResp 菜品列表响应
type GetDishListResp struct {
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
	Items    []DishListItem `json:"items"`
}

// AddDishCategoryReq 添加菜品分类
type AddDishCategoryReq struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Status      string `json:"status" form:"status"`
	Description string `json:"description" form:"description"`
	Sort        int    `json:"sort" form:"sort"`
}

// UpdateDishCategoryReq 更新菜品分类
type UpdateDishCategoryReq struct {
	Id          int    `json:"id" binding:"required"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Description string `json:"description"`
	Sort        int    `json:"sort"`
}

// GetDishCategoryListReq 分类列表查询
type GetDishCategoryListReq struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Name     string `form:"name"`
	Status   string `form:"status"`
}
