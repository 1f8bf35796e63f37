package stats

import (
	"context"
	"errors"
	"time"

	"resto-admin/model/admin_model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderSource 基于 gorm 的订单数据源
type GormOrderSource struct {
	db *gorm.DB
}

func NewGormOrderSource(db *gorm.DB) *GormOrderSource {
	return &GormOrderSource{db: db}
}

func (s *GormOrderSource) ListOrders(ctx context.Context, restaurantId int, from, to time.Time) ([]admin_model.Order, error) {
	var orders []admin_model.Order
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ? AND create_time >= ? AND create_time < ?", restaurantId, from, to).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (s *GormOrderSource) GetOrder(ctx context.Context, orderId int) (*admin_model.Order, error) {
	var order admin_model.Order
	err := s.db.WithContext(ctx).Where("id = ?", orderId).First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GormStatsStore 基于 gorm 的日统计存储
type GormStatsStore struct {
	db *gorm.DB
}

func NewGormStatsStore(db *gorm.DB) *GormStatsStore {
	return &GormStatsStore{db: db}
}

func (s *GormStatsStore) GetStatistics(ctx context.Context, restaurantId int, statDate string) (*admin_model.DailyStatistics, error) {
	var record admin_model.DailyStatistics
	err := s.db.WithContext(ctx).
		Where("restaurant_id = ? AND stat_date = ?", restaurantId, statDate).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// UpsertStatistics 以唯一键 (restaurant_id, stat_date) 落库
// 进程内的按键锁之外再靠 ON DUPLICATE KEY 兜底跨进程并发
func (s *GormStatsStore) UpsertStatistics(ctx context.Context, record *admin_model.DailyStatistics) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "restaurant_id"}, {Name: "stat_date"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_orders", "total_revenue", "total_customers", "average_order_value", "update_time",
			}),
		}).
		Create(record).Error
}
