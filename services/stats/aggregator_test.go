package stats

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"resto-admin/model/admin_model"

	"github.com/shopspring/decimal"
)

// fakeOrderSource 内存订单数据源
type fakeOrderSource struct {
	mu      sync.Mutex
	orders  []admin_model.Order
	listErr error
	getErr  error
}

func (f *fakeOrderSource) ListOrders(ctx context.Context, restaurantId int, from, to time.Time) ([]admin_model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []admin_model.Order
	for _, o := range f.orders {
		if o.RestaurantId != restaurantId {
			continue
		}
		// 半开区间 [from, to)
		if o.CreateTime.Before(from) || !o.CreateTime.Before(to) {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (f *fakeOrderSource) GetOrder(ctx context.Context, orderId int) (*admin_model.Order, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	for i := range f.orders {
		if f.orders[i].Id == orderId {
			o := f.orders[i]
			return &o, nil
		}
	}
	return nil, ErrOrderNotFound
}

func (f *fakeOrderSource) add(o admin_model.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.orders = append(f.orders, o)
}

// fakeStatsStore 内存日统计存储，模拟唯一键 upsert 语义
type fakeStatsStore struct {
	mu        sync.Mutex
	records   map[string]admin_model.DailyStatistics
	nextId    int
	upserts   int
	getErr    error
	upsertErr error
}

func newFakeStatsStore() *fakeStatsStore {
	return &fakeStatsStore{records: make(map[string]admin_model.DailyStatistics), nextId: 1}
}

func statsKey(restaurantId int, statDate string) string {
	return fmt.Sprintf("%d#%s", restaurantId, statDate)
}

func (f *fakeStatsStore) GetStatistics(ctx context.Context, restaurantId int, statDate string) (*admin_model.DailyStatistics, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if rec, ok := f.records[statsKey(restaurantId, statDate)]; ok {
		out := rec
		return &out, nil
	}
	return nil, nil
}

func (f *fakeStatsStore) UpsertStatistics(ctx context.Context, record *admin_model.DailyStatistics) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	key := statsKey(record.RestaurantId, record.StatDate)
	stored := *record
	if existing, ok := f.records[key]; ok {
		// 唯一键冲突时原地覆盖，主键和创建时间不变
		stored.Id = existing.Id
		stored.CreateTime = existing.CreateTime
	} else {
		stored.Id = f.nextId
		f.nextId++
	}
	f.records[key] = stored
	return nil
}

func (f *fakeStatsStore) get(restaurantId int, statDate string) (admin_model.DailyStatistics, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	rec, ok := f.records[statsKey(restaurantId, statDate)]
	return rec, ok
}

func (f *fakeStatsStore) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func order(id, restaurantId int, customerId *int, amount string, at time.Time) admin_model.Order {
	amt, _ := decimal.NewFromString(amount)
	return admin_model.Order{
		Id:           id,
		No:           fmt.Sprintf("NO%06d", id),
		RestaurantId: restaurantId,
		CustomerId:   customerId,
		Status:       admin_model.OrderStatusPaid,
		Amount:       amt,
		CreateTime:   at,
	}
}

func customer(id int) *int { return &id }

func newTestAggregator(src *fakeOrderSource, store *fakeStatsStore) *Aggregator {
	a := NewAggregator(src, store)
	a.now = func() time.Time {
		return time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)
	}
	return a
}

func TestRecomputeDailyScenario(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(101), "50", day.Add(9*time.Hour)),
		order(2, 1, customer(102), "30", day.Add(12*time.Hour)),
		order(3, 1, customer(101), "20", day.Add(20*time.Hour)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	summary, err := agg.RecomputeDaily(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("RecomputeDaily: %v", err)
	}

	if summary.TotalOrders != 3 {
		t.Errorf("TotalOrders = %d, want 3", summary.TotalOrders)
	}
	if !summary.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("TotalRevenue = %s, want 100", summary.TotalRevenue)
	}
	if summary.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", summary.TotalCustomers)
	}
	if want, _ := decimal.NewFromString("33.33"); !summary.AverageOrderValue.Equal(want) {
		t.Errorf("AverageOrderValue = %s, want 33.33", summary.AverageOrderValue)
	}

	rec, ok := store.get(1, "2024-05-01")
	if !ok {
		t.Fatal("statistics record not persisted")
	}
	if rec.TotalOrders != 3 || rec.TotalCustomers != 2 {
		t.Errorf("stored record = %+v", rec)
	}
	if !rec.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("stored TotalRevenue = %s, want 100", rec.TotalRevenue)
	}
}

func TestRecomputeDailyNoOrders(t *testing.T) {
	src := &fakeOrderSource{}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	summary, err := agg.RecomputeDaily(context.Background(), 7, day)
	if err != nil {
		t.Fatalf("RecomputeDaily: %v", err)
	}

	if summary.TotalOrders != 0 || summary.TotalCustomers != 0 {
		t.Errorf("summary = %+v, want all zero", summary)
	}
	if !summary.TotalRevenue.IsZero() || !summary.AverageOrderValue.IsZero() {
		t.Errorf("revenue=%s average=%s, want zero", summary.TotalRevenue, summary.AverageOrderValue)
	}

	// 空天也要落一行全零记录
	if rec, ok := store.get(7, "2024-05-01"); !ok || rec.TotalOrders != 0 {
		t.Errorf("zero-day record = %+v, ok=%v", rec, ok)
	}
}

func TestRecomputeDailyIdempotent(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(101), "25.50", day.Add(8*time.Hour)),
		order(2, 1, nil, "14.50", day.Add(10*time.Hour)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	if _, err := agg.RecomputeDaily(context.Background(), 1, day); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, _ := store.get(1, "2024-05-01")

	if _, err := agg.RecomputeDaily(context.Background(), 1, day); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, _ := store.get(1, "2024-05-01")

	if store.count() != 1 {
		t.Fatalf("record count = %d, want 1", store.count())
	}
	if first.Id != second.Id {
		t.Errorf("record id changed: %d -> %d", first.Id, second.Id)
	}
	// 除更新时间外字段完全一致
	if first.TotalOrders != second.TotalOrders ||
		!first.TotalRevenue.Equal(second.TotalRevenue) ||
		first.TotalCustomers != second.TotalCustomers ||
		!first.AverageOrderValue.Equal(second.AverageOrderValue) {
		t.Errorf("records differ: %+v vs %+v", first, second)
	}
}

func TestUniqueCustomerCounting(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "10", day.Add(1*time.Hour)),
		order(2, 1, customer(1), "10", day.Add(2*time.Hour)),
		order(3, 1, customer(2), "10", day.Add(3*time.Hour)),
		order(4, 1, nil, "10", day.Add(4*time.Hour)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	summary, err := agg.RecomputeDaily(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("RecomputeDaily: %v", err)
	}
	if summary.TotalOrders != 4 {
		t.Errorf("TotalOrders = %d, want 4", summary.TotalOrders)
	}
	// 匿名单不计入去重顾客数
	if summary.TotalCustomers != 2 {
		t.Errorf("TotalCustomers = %d, want 2", summary.TotalCustomers)
	}
}

func TestDayBoundary(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "10", day),                                          // 当天 00:00:00 含
		order(2, 1, customer(2), "10", day.Add(24*time.Hour-time.Second)),            // 23:59:59 含
		order(3, 1, customer(3), "10", day.Add(24*time.Hour)),                        // 次日 00:00:00 不含
		order(4, 1, customer(4), "10", day.Add(-time.Second)),                        // 前一天 23:59:59 不含
		order(5, 1, customer(5), "10", day.Add(30*time.Hour)),                        // 次日日内 不含
		order(6, 2, customer(6), "10", day.Add(time.Hour)),                           // 其他餐厅 不含
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	summary, err := agg.RecomputeDaily(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("RecomputeDaily: %v", err)
	}
	if summary.TotalOrders != 2 {
		t.Errorf("TotalOrders = %d, want 2", summary.TotalOrders)
	}
}

func TestAverageTimesCountEqualsRevenue(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cases := [][]string{
		{"10"},
		{"50", "30", "20"},
		{"9.99", "0.01", "33.33"},
		{"7", "7", "7", "7", "7", "7", "7"},
	}

	for i, amounts := range cases {
		src := &fakeOrderSource{}
		for j, amt := range amounts {
			src.add(order(j+1, 1, customer(j+1), amt, day.Add(time.Duration(j)*time.Minute)))
		}
		store := newFakeStatsStore()
		agg := newTestAggregator(src, store)

		summary, err := agg.RecomputeDaily(context.Background(), 1, day)
		if err != nil {
			t.Fatalf("case %d: %v", i, err)
		}

		// 平均值×单数与总额的偏差不超过舍入误差（每单半分钱）
		product := summary.AverageOrderValue.Mul(decimal.NewFromInt(int64(summary.TotalOrders)))
		diff := product.Sub(summary.TotalRevenue).Abs()
		tolerance := decimal.NewFromFloat(0.005).Mul(decimal.NewFromInt(int64(summary.TotalOrders)))
		if diff.GreaterThan(tolerance) {
			t.Errorf("case %d: average %s * %d = %s, revenue %s, diff %s",
				i, summary.AverageOrderValue, summary.TotalOrders, product, summary.TotalRevenue, diff)
		}
	}
}

func TestRecomputeForOrderUsesOrderDate(t *testing.T) {
	orderDay := time.Date(2024, 5, 2, 15, 30, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(42, 1, customer(9), "88", orderDay),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)
	// now 固定在 2024-05-10，重算必须落在订单自己的日期上

	summary, err := agg.RecomputeForOrder(context.Background(), 42)
	if err != nil {
		t.Fatalf("RecomputeForOrder: %v", err)
	}
	if summary.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", summary.TotalOrders)
	}

	if _, ok := store.get(1, "2024-05-02"); !ok {
		t.Error("expected record keyed at (1, 2024-05-02)")
	}
	if _, ok := store.get(1, "2024-05-10"); ok {
		t.Error("record must not be keyed at the current date")
	}
}

func TestRecomputeForOrderNotFound(t *testing.T) {
	src := &fakeOrderSource{}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	_, err := agg.RecomputeForOrder(context.Background(), 999)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Errorf("err = %v, want ErrOrderNotFound", err)
	}
	if store.upserts != 0 {
		t.Errorf("upserts = %d, want 0", store.upserts)
	}
}

func TestUpdateInPlace(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "40", day.Add(9*time.Hour)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	if _, err := agg.RecomputeDaily(context.Background(), 1, day); err != nil {
		t.Fatalf("first run: %v", err)
	}

	// 两次重算之间新来一单
	src.add(order(2, 1, customer(2), "60", day.Add(11*time.Hour)))

	summary, err := agg.RecomputeDaily(context.Background(), 1, day)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if store.count() != 1 {
		t.Fatalf("record count = %d, want exactly 1", store.count())
	}
	rec, _ := store.get(1, "2024-05-01")
	if rec.TotalOrders != 2 || !rec.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("stored record = %+v, want 2 orders / 100 revenue", rec)
	}
	if summary.TotalOrders != 2 {
		t.Errorf("summary.TotalOrders = %d, want 2", summary.TotalOrders)
	}
}

func TestFetchErrorNoPartialWrite(t *testing.T) {
	src := &fakeOrderSource{listErr: errors.New("backend unavailable")}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	_, err := agg.RecomputeDaily(context.Background(), 1, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	var fe *FetchError
	if !errors.As(err, &fe) {
		t.Fatalf("err = %v, want *FetchError", err)
	}
	if store.upserts != 0 {
		t.Errorf("upserts = %d, want 0 after fetch failure", store.upserts)
	}
}

func TestPersistError(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "10", day.Add(time.Hour)),
	}}
	store := newFakeStatsStore()
	store.upsertErr = errors.New("write refused")
	agg := newTestAggregator(src, store)

	_, err := agg.RecomputeDaily(context.Background(), 1, day)
	var pe *PersistError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want *PersistError", err)
	}
	if store.count() != 0 {
		t.Errorf("record count = %d, want 0", store.count())
	}
}

func TestInvalidRestaurant(t *testing.T) {
	agg := newTestAggregator(&fakeOrderSource{}, newFakeStatsStore())
	if _, err := agg.RecomputeDaily(context.Background(), 0, time.Time{}); !errors.Is(err, ErrInvalidRestaurant) {
		t.Errorf("err = %v, want ErrInvalidRestaurant", err)
	}
}

func TestDefaultDateIsToday(t *testing.T) {
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "10", time.Date(2024, 5, 10, 8, 0, 0, 0, time.UTC)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store) // now = 2024-05-10 12:00 UTC

	summary, err := agg.RecomputeDaily(context.Background(), 1, time.Time{})
	if err != nil {
		t.Fatalf("RecomputeDaily: %v", err)
	}
	if summary.TotalOrders != 1 {
		t.Errorf("TotalOrders = %d, want 1", summary.TotalOrders)
	}
	if _, ok := store.get(1, "2024-05-10"); !ok {
		t.Error("expected record keyed at today's date")
	}
}

func TestConcurrentRecomputeSameKey(t *testing.T) {
	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	src := &fakeOrderSource{orders: []admin_model.Order{
		order(1, 1, customer(1), "50", day.Add(9*time.Hour)),
		order(2, 1, customer(2), "50", day.Add(10*time.Hour)),
	}}
	store := newFakeStatsStore()
	agg := newTestAggregator(src, store)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := agg.RecomputeDaily(context.Background(), 1, day); err != nil {
				t.Errorf("concurrent recompute: %v", err)
			}
		}()
	}
	wg.Wait()

	if store.count() != 1 {
		t.Fatalf("record count = %d, want 1", store.count())
	}
	rec, _ := store.get(1, "2024-05-01")
	if rec.TotalOrders != 2 || !rec.TotalRevenue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("stored record = %+v", rec)
	}
}
