package admin

import (
	"strconv"

	"resto-admin/inout"
	"resto-admin/model/admin_model"
	"resto-admin/services/admin_service"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
)

var menuService = &admin_service.MenuService{}

// AddDish 添加菜品
func AddDish(c *gin.Context) {
	var params inout.AddDishReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	dish := admin_model.Dish{
		DishName:     params.DishName,
		Price:        params.Price,
		Content:      params.Content,
		Cover:        params.Cover,
		Status:       params.Status,
		CategoryId:   params.CategoryId,
		RestaurantId: restaurantId,
		Sort:         params.Sort,
	}

	id, err := menuService.AddDish(c, dish)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, id)
}

// GetDishList 菜品列表
func GetDishList(c *gin.Context) {
	var params inout.GetDishListReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	list, err := menuService.GetDishList(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, list)
}

// GetDishDetail 菜品详情
func GetDishDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, 20001, "无效的菜品ID")
		return
	}

	detail, err := menuService.GetDishDetail(c, id)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, detail)
}

// UpdateDish 更新菜品
func UpdateDish(c *gin.Context) {
	var params inout.UpdateDishReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	dish := admin_model.Dish{
		Id:         params.Id,
		DishName:   params.DishName,
		Price:      params.Price,
		Content:    params.Content,
		Cover:      params.Cover,
		Status:     params.Status,
		CategoryId: params.CategoryId,
		Sort:       params.Sort,
	}

	id, err := menuService.UpdateDish(c, dish)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, id)
}

// DeleteDish 删除菜品
func DeleteDish(c *gin.Context) {
	var params struct {
		Ids []int `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	if err := menuService.DeleteDish(c, params.Ids); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, nil)
}

// AddDishCategory 添加菜品分类
func AddDishCategory(c *gin.Context) {
	var params inout.AddDishCategoryReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	category := admin_model.DishCategory{
		Name:         params.Name,
		Status:       params.Status,
		Description:  params.Description,
		RestaurantId: restaurantId,
		Sort:         params.Sort,
	}

	id, err := menuService.AddDishCategory(c, category)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, id)
}

// GetDishCategoryList 菜品分类列表
func GetDishCategoryList(c *gin.Context) {
	var params inout.GetDishCategoryListReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	list, err := menuService.GetDishCategoryList(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, list)
}

// GetDishCategoryDetail 菜品分类详情
func GetDishCategoryDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, 20001, "无效的分类ID")
		return
	}

	detail, err := menuService.GetDishCategoryDetail(c, id)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, detail)
}

// UpdateDishCategory 更新菜品分类
func UpdateDishCategory(c *gin.Context) {
	var params inout.UpdateDishCategoryReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	category := admin_model.DishCategory{
		Id:          params.Id,
		Name:        params.Name,
		Status:      params.Status,
		Description: params.Description,
		Sort:        params.Sort,
	}

	id, err := menuService.UpdateDishCategory(c, category)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, id)
}

// DeleteDishCategory 删除菜品分类
func DeleteDishCategory(c *gin.Context) {
	var params struct {
		Ids []int `json:"ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	if err := menuService.DeleteDishCategory(c, params.Ids); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, nil)
}
