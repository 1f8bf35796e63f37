package app

import (
	"strconv"

	"resto-admin/pkg/response"
	"resto-admin/services/app_service"

	"github.com/gin-gonic/gin"
)

var publicMenuService = &app_service.PublicMenuService{}

// GetRestaurant 落地页餐厅信息
func GetRestaurant(c *gin.Context) {
	restaurantId, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restaurantId <= 0 {
		response.Error(c, response.INVALID_PARAMS, "无效的餐厅ID")
		return
	}

	data, err := publicMenuService.GetRestaurant(c, restaurantId)
	if err != nil {
		response.Error(c, response.NOT_FOUND, err.Error())
		return
	}
	response.Success(c, data)
}

// GetMenu 落地页菜单
func GetMenu(c *gin.Context) {
	restaurantId, err := strconv.Atoi(c.Query("restaurant_id"))
	if err != nil || restaurantId <= 0 {
		response.Error(c, response.INVALID_PARAMS, "无效的餐厅ID")
		return
	}

	data, err := publicMenuService.GetMenu(c, restaurantId)
	if err != nil {
		response.Error(c, response.ERROR, err.Error())
		return
	}
	response.Success(c, data)
}
