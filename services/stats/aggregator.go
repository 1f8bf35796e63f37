package stats

import (
	"context"
	"strconv"
	"sync"
	"time"

	"resto-admin/model/admin_model"
	"resto-admin/utils"

	"github.com/shopspring/decimal"
)

// OrderSource 订单数据源，取数窗口为半开区间 [from, to)
type OrderSource interface {
	ListOrders(ctx context.Context, restaurantId int, from, to time.Time) ([]admin_model.Order, error)
	GetOrder(ctx context.Context, orderId int) (*admin_model.Order, error)
}

// StatsStore 日统计存储，按 (restaurant_id, stat_date) 一键一行
type StatsStore interface {
	GetStatistics(ctx context.Context, restaurantId int, statDate string) (*admin_model.DailyStatistics, error)
	UpsertStatistics(ctx context.Context, record *admin_model.DailyStatistics) error
}

// Summary 单次重算的计算结果
type Summary struct {
	TotalOrders       int             `json:"total_orders"`
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalCustomers    int             `json:"total_customers"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
}

// Aggregator 把某餐厅某天的订单聚合成日统计并幂等落库
// 所有日界都按 UTC 截断，取数窗口和 stat_date 键来自同一次截断
type Aggregator struct {
	orders OrderSource
	store  StatsStore

	// 同一 (餐厅, 日期) 的重算串行化，避免两次读写互相穿插
	mu    sync.Mutex
	locks map[string]*sync.Mutex

	// 测试注入用
	now func() time.Time
}

// NewAggregator 创建聚合器
func NewAggregator(orders OrderSource, store StatsStore) *Aggregator {
	return &Aggregator{
		orders: orders,
		store:  store,
		locks:  make(map[string]*sync.Mutex),
		now:    time.Now,
	}
}

// RecomputeDaily 重算某餐厅某天的日统计并落库
// day 为零值时取当天；返回本次计算出的聚合值
func (a *Aggregator) RecomputeDaily(ctx context.Context, restaurantId int, day time.Time) (Summary, error) {
	if restaurantId <= 0 {
		return Summary{}, ErrInvalidRestaurant
	}
	if day.IsZero() {
		day = a.now()
	}

	from, to := utils.DayWindowUTC(day)
	statDate := from.Format(utils.DateFormat)

	unlock := a.lockKey(restaurantId, statDate)
	defer unlock()

	orders, err := a.orders.ListOrders(ctx, restaurantId, from, to)
	if err != nil {
		return Summary{}, &FetchError{Op: "list_orders", Err: err}
	}

	summary := computeSummary(orders)

	existing, err := a.store.GetStatistics(ctx, restaurantId, statDate)
	if err != nil {
		return Summary{}, &FetchError{Op: "get_statistics", Err: err}
	}

	now := a.now().UTC()
	record := &admin_model.DailyStatistics{
		RestaurantId:      restaurantId,
		StatDate:          statDate,
		TotalOrders:       summary.TotalOrders,
		TotalRevenue:      summary.TotalRevenue,
		TotalCustomers:    summary.TotalCustomers,
		AverageOrderValue: summary.AverageOrderValue,
		CreateTime:        now,
		UpdateTime:        now,
	}
	if existing != nil {
		// 原地覆盖已有记录，不新增行
		record.Id = existing.Id
		record.CreateTime = existing.CreateTime
	}

	if err := a.store.UpsertStatistics(ctx, record); err != nil {
		return Summary{}, &PersistError{Err: err}
	}

	return summary, nil
}

// RecomputeForOrder 按单个订单触发重算，总是整天重算而不是增量修正
func (a *Aggregator) RecomputeForOrder(ctx context.Context, orderId int) (Summary, error) {
	order, err := a.orders.GetOrder(ctx, orderId)
	if err != nil {
		if err == ErrOrderNotFound {
			return Summary{}, err
		}
		return Summary{}, &FetchError{Op: "get_order", Err: err}
	}
	if order == nil {
		return Summary{}, ErrOrderNotFound
	}

	return a.RecomputeDaily(ctx, order.RestaurantId, order.CreateTime)
}

// computeSummary 对订单集合做一次纯计算
func computeSummary(orders []admin_model.Order) Summary {
	totalRevenue := decimal.Zero
	customers := make(map[int]struct{})

	for _, o := range orders {
		totalRevenue = totalRevenue.Add(o.Amount)
		if o.CustomerId != nil {
			customers[*o.CustomerId] = struct{}{}
		}
	}

	average := decimal.Zero
	if len(orders) > 0 {
		average = totalRevenue.Div(decimal.NewFromInt(int64(len(orders)))).Round(2)
	}

	return Summary{
		TotalOrders:       len(orders),
		TotalRevenue:      totalRevenue.Round(2),
		TotalCustomers:    len(customers),
		AverageOrderValue: average,
	}
}

// lockKey 获取 (餐厅, 日期) 粒度的互斥锁
func (a *Aggregator) lockKey(restaurantId int, statDate string) func() {
	key := statDate + "#" + strconv.Itoa(restaurantId)

	a.mu.Lock()
	lock, ok := a.locks[key]
	if !ok {
		lock = &sync.Mutex{}
		a.locks[key] = lock
	}
	a.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}
