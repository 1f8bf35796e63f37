package inout

import "github.com/shopspring/decimal"

// PublicMenuDish 落地页菜单里的单个菜品
type PublicMenuDish struct {
	Id       int             `json:"id"`
	DishName string          `json:"dish_name"`
	Price    decimal.Decimal `json:"price"`
	Content  string          `json:"content"`
	Cover    string          `json:"cover"`
}

// PublicMenuCategory 落地页菜单分类（含上架菜品）
type PublicMenuCategory struct {
	Id          int              `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Dishes      []PublicMenuDish `json:"dishes"`
}

// PublicRestaurantRes 落地页展示的餐厅信息
type PublicRestaurantRes struct {
	Id      int    `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Intro   string `json:"intro"`
}
