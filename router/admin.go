package router

import (
	"resto-admin/api"
	"resto-admin/controllers/admin"
	"resto-admin/inout"
	"resto-admin/middleware"

	"github.com/gin-gonic/gin"
)

// InitAdmin 注册后台管理路由，整组走JWT鉴权和请求审计
func InitAdmin(r *gin.Engine) {
	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AdminJWTAuth())
	adminGroup.Use(middleware.RequestLogger("logs/admin"))
	adminGroup.Use(middleware.AuditLogger("request_log"))
	{
		adminGroup.POST("/auth/logout", api.Auth.Logout)
		adminGroup.GET("/user/detail", api.Auth.UserDetail)

		// 菜品
		adminGroup.POST("/dish", admin.AddDish)
		adminGroup.GET("/dish/list", admin.GetDishList)
		adminGroup.GET("/dish/detail", admin.GetDishDetail)
		adminGroup.PUT("/dish", admin.UpdateDish)
		adminGroup.DELETE("/dish", admin.DeleteDish)

		// 菜品分类
		adminGroup.POST("/dish/category", admin.AddDishCategory)
		adminGroup.GET("/dish/category/list", admin.GetDishCategoryList)
		adminGroup.GET("/dish/category/detail", admin.GetDishCategoryDetail)
		adminGroup.PUT("/dish/category", admin.UpdateDishCategory)
		adminGroup.DELETE("/dish/category", admin.DeleteDishCategory)

		// 订单
		adminGroup.POST("/order", admin.CreateOrder)
		adminGroup.GET("/order/list", middleware.ValidationMiddleware(&inout.OrderListReq{}), admin.GetOrderList)
		adminGroup.GET("/order/detail", admin.GetOrderDetail)
		adminGroup.POST("/order/status", admin.UpdateOrderStatus)

		// 经营统计
		adminGroup.GET("/statistics/list", admin.GetStatisticsList)
		adminGroup.GET("/statistics/summary", admin.GetStatisticsSummary)
		adminGroup.POST("/statistics/recompute", admin.RecomputeStatistics)
		adminGroup.POST("/statistics/recompute/order", admin.RecomputeStatisticsForOrder)

		// 系统
		adminGroup.GET("/system/log", admin.GetSystemLog)
	}
}
