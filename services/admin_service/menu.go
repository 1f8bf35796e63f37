package admin_service

import (
	"fmt"
	"time"

	"resto-admin/db"
	"resto-admin/inout"
	"resto-admin/model/admin_model"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MenuService struct{}

// AddDish 添加菜品
func (s *MenuService) AddDish(c *gin.Context, dish admin_model.Dish) (int, error) {
	dish.CreateTime = time.Now()
	dish.UpdateTime = time.Now()
	err := db.Dao.Create(&dish).Error
	if err != nil {
		return 0, err
	}
	return dish.Id, nil
}

// GetDishList 获取菜品列表
func (s *MenuService) GetDishList(c *gin.Context, params inout.GetDishListReq) (interface{}, error) {
	var data []admin_model.Dish
	var total int64

	// 设置默认分页参数
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	query := db.Dao.Model(&admin_model.Dish{}).Scopes(
		applyRestaurantIdFilter(restaurantId),
		applyDishNameFilter(params.DishName),
		applyStatusFilter(params.Status),
		applyCategoryFilter(params.CategoryId),
	).Where("isdelete != ?", 1).Order("sort ASC, create_time DESC")

	offset := (params.Page - 1) * params.PageSize
	err = query.Count(&total).Offset(offset).Limit(params.PageSize).Find(&data).Error
	if err != nil {
		return nil, err
	}

	response := inout.GetDishListResp{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    formatDishData(data),
	}
	return response, nil
}

// GetDishDetail 菜品详情
func (s *MenuService) GetDishDetail(c *gin.Context, id int) (interface{}, error) {
	var dish admin_model.Dish
	err := db.Dao.Where("id = ? AND isdelete != ?", id, 1).First(&dish).Error
	if err != nil {
		return nil, err
	}
	return dish, nil
}

// UpdateDish 更新菜品
func (s *MenuService) UpdateDish(c *gin.Context, dish admin_model.Dish) (int, error) {
	dish.UpdateTime = time.Now()
	err := db.Dao.Model(&dish).Updates(&dish).Error
	if err != nil {
		return 0, err
	}
	return dish.Id, nil
}

// DeleteDish 删除菜品（软删除）
func (s *MenuService) DeleteDish(c *gin.Context, ids []int) error {
	var dishes []admin_model.Dish
	err := db.Dao.Where("id IN ?", ids).Find(&dishes).Error
	if err != nil {
		return err
	}
	if len(dishes) == 0 {
		return fmt.Errorf("未找到要删除的菜品")
	}

	err = db.Dao.Model(&admin_model.Dish{}).Where("id IN ?", ids).Update("isdelete", 1).Error
	if err != nil {
		return err
	}
	return nil
}

// AddDishCategory 添加菜品分类
func (s *MenuService) AddDishCategory(c *gin.Context, category admin_model.DishCategory) (int, error) {
	category.CreateTime = time.Now()
	category.UpdateTime = time.Now()
	err := db.Dao.Create(&category).Error
	if err != nil {
		return 0, err
	}
	return category.Id, nil
}

// GetDishCategoryList 获取菜品分类列表
func (s *MenuService) GetDishCategoryList(c *gin.Context, params inout.GetDishCategoryListReq) (interface{}, error) {
	var data []admin_model.DishCategory
	var total int64

	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	query := db.Dao.Model(&admin_model.DishCategory{}).Scopes(
		applyRestaurantIdFilter(restaurantId),
		applyNameFilter(params.Name),
		applyStatusFilter(params.Status),
	).Order("sort ASC, create_time DESC")

	offset := (params.Page - 1) * params.PageSize
	err = query.Count(&total).Offset(offset).Limit(params.PageSize).Find(&data).Error
	if err != nil {
		return nil, err
	}

	response := map[string]interface{}{
		"total":    total,
		"items":    data,
		"page":     params.Page,
		"pageSize": params.PageSize,
	}
	return response, nil
}

// GetDishCategoryDetail 菜品分类详情
func (s *MenuService) GetDishCategoryDetail(c *gin.Context, id int) (interface{}, error) {
	var category admin_model.DishCategory
	err := db.Dao.Where("id = ?", id).First(&category).Error
	if err != nil {
		return nil, err
	}
	return category, nil
}

// UpdateDishCategory 更新菜品分类
func (s *MenuService) UpdateDishCategory(c *gin.Context, category admin_model.DishCategory) (int, error) {
	category.UpdateTime = time.Now()
	err := db.Dao.Model(&category).Updates(&category).Error
	if err != nil {
		return 0, err
	}
	return category.Id, nil
}

// DeleteDishCategory 删除菜品分类
func (s *MenuService) DeleteDishCategory(c *gin.Context, ids []int) error {
	// 分类下还有菜品时不允许删除
	var count int64
	err := db.Dao.Model(&admin_model.Dish{}).
		Where("category_id IN ? AND isdelete != ?", ids, 1).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("分类下还有 %d 个菜品，无法删除", count)
	}

	return db.Dao.Where("id IN ?", ids).Delete(&admin_model.DishCategory{}).Error
}

// applyDishNameFilter 应用菜品名称过滤器
func applyDishNameFilter(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name != "" {
			return db.Where("dish_name LIKE ?", "%"+name+"%")
		}
		return db
	}
}

// applyNameFilter 应用名称过滤器
func applyNameFilter(name string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if name != "" {
			return db.Where("name LIKE ?", "%"+name+"%")
		}
		return db
	}
}

// applyStatusFilter 应用状态过滤器
func applyStatusFilter(status string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if status != "" {
			return db.Where("status = ?", status)
		}
		return db
	}
}

// applyCategoryFilter 应用分类过滤器
func applyCategoryFilter(categoryId int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if categoryId > 0 {
			return db.Where("category_id = ?", categoryId)
		}
		return db
	}
}

// formatDishData 格式化菜品数据
func formatDishData(data []admin_model.Dish) []inout.DishListItem {
	formatted := []inout.DishListItem{}
	for _, item := range data {
		formatted = append(formatted, inout.DishListItem{
			Id:         item.Id,
			DishName:   item.DishName,
			Price:      item.Price,
			Content:    item.Content,
			Cover:      item.Cover,
			Status:     item.Status,
			CategoryId: item.CategoryId,
			Sort:       item.Sort,
			CreateTime: utils.FormatTime(item.CreateTime),
			UpdateTime: utils.FormatTime(item.UpdateTime),
		})
	}
	return formatted
}

// max 返回两个整数中的较大值
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
