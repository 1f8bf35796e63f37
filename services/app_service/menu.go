package app_service

import (
	"fmt"

	"resto-admin/db"
	"resto-admin/inout"
	"resto-admin/model/admin_model"

	"github.com/gin-gonic/gin"
)

type PublicMenuService struct{}

// GetRestaurant 落地页餐厅信息
func (s *PublicMenuService) GetRestaurant(c *gin.Context, restaurantId int) (interface{}, error) {
	var restaurant admin_model.Restaurant
	err := db.Dao.WithContext(c).
		Where("id = ? AND status = ?", restaurantId, "open").
		First(&restaurant).Error
	if err != nil {
		return nil, fmt.Errorf("餐厅不存在或未开放")
	}

	return inout.PublicRestaurantRes{
		Id:      restaurant.Id,
		Name:    restaurant.Name,
		Phone:   restaurant.Phone,
		Address: restaurant.Address,
		Intro:   restaurant.Intro,
	}, nil
}

// GetMenu 落地页菜单，按分类分组，只含上架菜品
func (s *PublicMenuService) GetMenu(c *gin.Context, restaurantId int) (interface{}, error) {
	var categories []admin_model.DishCategory
	err := db.Dao.WithContext(c).
		Where("restaurant_id = ? AND status = ?", restaurantId, "enabled").
		Order("sort ASC").
		Find(&categories).Error
	if err != nil {
		return nil, err
	}

	var dishes []admin_model.Dish
	err = db.Dao.WithContext(c).
		Where("restaurant_id = ? AND status = ? AND isdelete != ?", restaurantId, "available", 1).
		Order("sort ASC").
		Find(&dishes).Error
	if err != nil {
		return nil, err
	}

	// 按分类分组
	dishesByCategory := make(map[int][]inout.PublicMenuDish)
	for _, dish := range dishes {
		dishesByCategory[dish.CategoryId] = append(dishesByCategory[dish.CategoryId], inout.PublicMenuDish{
			Id:       dish.Id,
			DishName: dish.DishName,
			Price:    dish.Price,
			Content:  dish.Content,
			Cover:    dish.Cover,
		})
	}

	result := make([]inout.PublicMenuCategory, 0, len(categories))
	for _, category := range categories {
		categoryDishes := dishesByCategory[category.Id]
		if len(categoryDishes) == 0 {
			// 空分类不展示
			continue
		}
		result = append(result, inout.PublicMenuCategory{
			Id:          category.Id,
			Name:        category.Name,
			Description: category.Description,
			Dishes:      categoryDishes,
		})
	}

	return result, nil
}
