package admin_service

import (
	"fmt"
	"sync"
	"time"

	"resto-admin/db"
	"resto-admin/inout"
	"resto-admin/model/admin_model"
	"resto-admin/pkg/monitoring"
	"resto-admin/services/stats"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type StatisticsService struct {
	once       sync.Once
	aggregator *stats.Aggregator
}

// getAggregator 延迟构建，保证 db.Dao 已初始化
func (s *StatisticsService) getAggregator() *stats.Aggregator {
	s.once.Do(func() {
		s.aggregator = stats.NewAggregator(
			stats.NewGormOrderSource(db.Dao),
			stats.NewGormStatsStore(db.Dao),
		)
	})
	return s.aggregator
}

// GetStatisticsList 获取日统计列表
func (s *StatisticsService) GetStatisticsList(c *gin.Context, params inout.GetStatisticsListReq) (interface{}, error) {
	var data []admin_model.DailyStatistics
	var total int64

	// 设置默认分页参数
	params.Page = max(params.Page, 1)
	params.PageSize = max(params.PageSize, 10)

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	query := db.Dao.Model(&admin_model.DailyStatistics{}).Scopes(
		applyRestaurantIdFilter(restaurantId),
		applyStatDateFilter(params.Start, params.End),
	).Order("stat_date DESC")

	offset := (params.Page - 1) * params.PageSize
	err = query.Count(&total).Offset(offset).Limit(params.PageSize).Find(&data).Error
	if err != nil {
		return nil, err
	}

	response := inout.StatisticsListResp{
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
		Items:    formatStatisticsData(data),
	}
	return response, nil
}

// RecomputeDaily 重算某天的日统计，dateStr 为空时取当天
func (s *StatisticsService) RecomputeDaily(c *gin.Context, restaurantId int, dateStr string) (stats.Summary, error) {
	var day time.Time
	if dateStr != "" {
		parsed, err := utils.ParseDate(dateStr)
		if err != nil {
			return stats.Summary{}, err
		}
		day = parsed
	}

	start := time.Now()
	summary, err := s.getAggregator().RecomputeDaily(c.Request.Context(), restaurantId, day)
	if err != nil {
		monitoring.RecordStatsRecompute("error", time.Since(start))
		return stats.Summary{}, err
	}
	monitoring.RecordStatsRecompute("ok", time.Since(start))
	return summary, nil
}

// RecomputeForOrder 按订单触发重算，落在订单自己的日期上
func (s *StatisticsService) RecomputeForOrder(c *gin.Context, orderId int) (stats.Summary, error) {
	start := time.Now()
	summary, err := s.getAggregator().RecomputeForOrder(c.Request.Context(), orderId)
	if err != nil {
		monitoring.RecordStatsRecompute("error", time.Since(start))
		return stats.Summary{}, err
	}
	monitoring.RecordStatsRecompute("ok", time.Since(start))
	return summary, nil
}

// GetSummary 仪表盘汇总：当天先重算一遍再取最近7天
func (s *StatisticsService) GetSummary(c *gin.Context) (interface{}, error) {
	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	// 当天数据可能滞后，先同步重算
	if _, err := s.RecomputeDaily(c, restaurantId, ""); err != nil {
		return nil, fmt.Errorf("重算当天统计失败: %w", err)
	}

	todayKey := utils.DateKeyUTC(time.Now())
	weekStart, _ := utils.DayWindowUTC(time.Now().AddDate(0, 0, -6))

	var records []admin_model.DailyStatistics
	err = db.Dao.Model(&admin_model.DailyStatistics{}).
		Where("restaurant_id = ? AND stat_date >= ?", restaurantId, weekStart.Format(utils.DateFormat)).
		Order("stat_date ASC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}

	resp := inout.StatisticsSummaryResp{
		Week:      formatStatisticsData(records),
		WeekTotal: decimal.Zero,
	}
	for _, rec := range records {
		resp.WeekTotal = resp.WeekTotal.Add(rec.TotalRevenue)
		if rec.StatDate == todayKey {
			resp.Today = formatStatisticsItem(rec)
		}
	}
	return resp, nil
}

// applyRestaurantIdFilter 应用餐厅ID过滤器
func applyRestaurantIdFilter(restaurantId int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("restaurant_id = ?", restaurantId)
	}
}

// applyStatDateFilter 应用统计日期过滤器
func applyStatDateFilter(start, end string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != "" && end != "" {
			return db.Where("stat_date BETWEEN ? AND ?", start, end)
		}
		return db
	}
}

// formatStatisticsData 格式化日统计数据
func formatStatisticsData(data []admin_model.DailyStatistics) []inout.StatisticsItem {
	formatted := []inout.StatisticsItem{}
	for _, item := range data {
		formatted = append(formatted, formatStatisticsItem(item))
	}
	return formatted
}

func formatStatisticsItem(item admin_model.DailyStatistics) inout.StatisticsItem {
	return inout.StatisticsItem{
		Id:                item.Id,
		RestaurantId:      item.RestaurantId,
		StatDate:          item.StatDate,
		TotalOrders:       item.TotalOrders,
		TotalRevenue:      item.TotalRevenue,
		TotalCustomers:    item.TotalCustomers,
		AverageOrderValue: item.AverageOrderValue,
		UpdateTime:        utils.FormatTime(item.UpdateTime),
	}
}
