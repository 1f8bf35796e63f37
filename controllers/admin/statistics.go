package admin

import (
	"errors"

	"resto-admin/inout"
	"resto-admin/pkg/response"
	"resto-admin/services/admin_service"
	"resto-admin/services/stats"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
)

var statisticsService = &admin_service.StatisticsService{}

// GetStatisticsList 日统计列表
func GetStatisticsList(c *gin.Context) {
	var params inout.GetStatisticsListReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	list, err := statisticsService.GetStatisticsList(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, list)
}

// RecomputeStatistics 重算某日统计，日期缺省为当天
func RecomputeStatistics(c *gin.Context) {
	var params inout.RecomputeStatisticsReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	summary, err := statisticsService.RecomputeDaily(c, restaurantId, params.Date)
	if err != nil {
		respondStatsError(c, err)
		return
	}
	Resp.Succ(c, summary)
}

// RecomputeStatisticsForOrder 按订单重算其所在日的统计
func RecomputeStatisticsForOrder(c *gin.Context) {
	var params inout.RecomputeForOrderReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	summary, err := statisticsService.RecomputeForOrder(c, params.OrderId)
	if err != nil {
		respondStatsError(c, err)
		return
	}
	Resp.Succ(c, summary)
}

// GetStatisticsSummary 仪表盘概览：今日实时 + 最近七天
func GetStatisticsSummary(c *gin.Context) {
	summary, err := statisticsService.GetSummary(c)
	if err != nil {
		respondStatsError(c, err)
		return
	}
	Resp.Succ(c, summary)
}

// respondStatsError 统计错误到响应码的映射
func respondStatsError(c *gin.Context, err error) {
	var fetchErr *stats.FetchError
	var persistErr *stats.PersistError

	switch {
	case errors.Is(err, stats.ErrOrderNotFound):
		response.Error(c, response.NOT_FOUND, "订单不存在")
	case errors.Is(err, stats.ErrInvalidRestaurant):
		response.Error(c, response.INVALID_PARAMS, "无效的餐厅ID")
	case errors.As(err, &fetchErr):
		response.Error(c, response.INTERNAL_ERROR, "统计数据读取失败")
	case errors.As(err, &persistErr):
		response.Error(c, response.INTERNAL_ERROR, "统计数据写入失败")
	default:
		response.Error(c, response.INVALID_PARAMS, err.Error())
	}
}
