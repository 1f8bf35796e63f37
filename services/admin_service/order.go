package admin_service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"resto-admin/db"
	"resto-admin/inout"
	"resto-admin/model/admin_model"
	"resto-admin/pkg/monitoring"
	"resto-admin/redis"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct{}

const (
	// 缓存过期时间
	orderCacheTTL = 5 * time.Minute
	// 查询超时时间
	queryTimeout = 5 * time.Second
)

// 合法的状态流转
var orderStatusFlow = map[string][]string{
	admin_model.OrderStatusPending:   {admin_model.OrderStatusPaid, admin_model.OrderStatusCancelled},
	admin_model.OrderStatusPaid:      {admin_model.OrderStatusCompleted, admin_model.OrderStatusCancelled},
	admin_model.OrderStatusCompleted: {},
	admin_model.OrderStatusCancelled: {},
}

// CreateOrder 收银台录单，订单和明细同一事务写入
func (s *OrderService) CreateOrder(c *gin.Context, params inout.CreateOrderReq) (*admin_model.Order, error) {
	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	dishIds := make([]int, 0, len(params.Items))
	for _, item := range params.Items {
		dishIds = append(dishIds, item.DishId)
	}

	var dishes []admin_model.Dish
	err = db.Dao.WithContext(c).
		Where("id IN ? AND restaurant_id = ? AND status = ? AND isdelete != ?",
			dishIds, restaurantId, "available", 1).
		Find(&dishes).Error
	if err != nil {
		return nil, fmt.Errorf("查询菜品失败: %w", err)
	}

	dishMap := make(map[int]admin_model.Dish, len(dishes))
	for _, dish := range dishes {
		dishMap[dish.Id] = dish
	}

	now := time.Now()
	amount := decimal.Zero
	orderItems := make([]admin_model.OrderItem, 0, len(params.Items))
	for _, item := range params.Items {
		dish, ok := dishMap[item.DishId]
		if !ok {
			return nil, fmt.Errorf("菜品 %d 不存在或已下架", item.DishId)
		}
		amount = amount.Add(dish.Price.Mul(decimal.NewFromInt(int64(item.Num))))
		orderItems = append(orderItems, admin_model.OrderItem{
			DishId:     dish.Id,
			DishName:   dish.DishName,
			Price:      dish.Price,
			Num:        item.Num,
			CreateTime: now,
		})
	}

	order := admin_model.Order{
		No:           generateOrderNo(restaurantId),
		RestaurantId: restaurantId,
		CustomerId:   params.CustomerId,
		Status:       admin_model.OrderStatusPending,
		Amount:       amount,
		Remark:       params.Remark,
		CreateTime:   now,
		UpdateTime:   now,
	}

	err = db.Dao.WithContext(c).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return fmt.Errorf("创建订单失败: %w", err)
		}
		for i := range orderItems {
			orderItems[i].OrderId = order.Id
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("创建订单明细失败: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateListCache(restaurantId)

	return &order, nil
}

// generateOrderNo 生成唯一的订单号
func generateOrderNo(restaurantId int) string {
	timestamp := time.Now().Format("20060102150405")
	suffix := uuid.NewString()[:8]
	return fmt.Sprintf("%s%d%s", timestamp, restaurantId, suffix)
}

// GetOrderList 获取订单列表
func (s *OrderService) GetOrderList(c *gin.Context, params inout.OrderListReq) (interface{}, error) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), queryTimeout)
	defer cancel()

	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	params = sanitizeOrderParams(params)

	// 尝试从缓存获取结果
	cacheKey := generateOrderCacheKey(restaurantId, params)
	if cachedResult, found := s.getFromCache(ctx, cacheKey); found {
		return cachedResult, nil
	}

	result, err := s.executeOrderQuery(c, restaurantId, params)
	if err != nil {
		return nil, fmt.Errorf("订单查询失败: %w", err)
	}

	s.saveToCache(cacheKey, result, orderCacheTTL)

	return result, nil
}

// 净化参数，保证参数有效性
func sanitizeOrderParams(params inout.OrderListReq) inout.OrderListReq {
	if params.Page <= 0 {
		params.Page = 1
	}
	if params.PageSize <= 0 || params.PageSize > 100 {
		params.PageSize = 10
	}
	return params
}

func (s *OrderService) executeOrderQuery(c *gin.Context, restaurantId int, params inout.OrderListReq) (inout.OrderListResp, error) {
	query := db.Dao.WithContext(c).Model(&admin_model.Order{}).
		Select("id, no, customer_id, status, amount, remark, create_time, update_time").
		Scopes(
			applyRestaurantIdFilter(restaurantId),
			applyOrderNoFilter(params.No),
			applyStatusFilter(params.Status),
			applyCreateTimeFilter(params.Start, params.End),
		).Order("create_time DESC")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return inout.OrderListResp{}, fmt.Errorf("统计总数失败: %w", err)
	}

	if total == 0 {
		return inout.OrderListResp{
			Items:    []inout.OrderListItem{},
			Total:    0,
			Page:     params.Page,
			PageSize: params.PageSize,
		}, nil
	}

	offset := (params.Page - 1) * params.PageSize

	var data []admin_model.Order
	if err := query.Offset(offset).Limit(params.PageSize).Find(&data).Error; err != nil {
		return inout.OrderListResp{}, fmt.Errorf("查询订单列表失败: %w", err)
	}

	return inout.OrderListResp{
		Items:    formatOrderData(data),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}

// GetOrderDetail 订单详情，带明细行
func (s *OrderService) GetOrderDetail(c *gin.Context, id int) (interface{}, error) {
	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	var order admin_model.Order
	err = db.Dao.WithContext(c).
		Where("id = ? AND restaurant_id = ?", id, restaurantId).
		First(&order).Error
	if err != nil {
		return nil, err
	}

	var items []admin_model.OrderItem
	err = db.Dao.WithContext(c).
		Where("order_id = ?", order.Id).
		Order("id ASC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("查询订单明细失败: %w", err)
	}

	return map[string]interface{}{
		"order": order,
		"items": items,
	}, nil
}

// UpdateOrderStatus 订单状态流转
func (s *OrderService) UpdateOrderStatus(c *gin.Context, params inout.UpdateOrderStatusReq) (*admin_model.Order, error) {
	restaurantId, err := utils.GetRestaurantId(c)
	if err != nil {
		return nil, err
	}

	var order admin_model.Order
	err = db.Dao.WithContext(c).
		Where("id = ? AND restaurant_id = ?", params.Id, restaurantId).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("订单不存在")
		}
		return nil, err
	}

	if !isValidStatusTransition(order.Status, params.Status) {
		return nil, fmt.Errorf("订单状态不允许从 %s 变更为 %s", order.Status, params.Status)
	}

	now := time.Now()
	err = db.Dao.WithContext(c).Model(&admin_model.Order{}).
		Where("id = ?", order.Id).
		Updates(map[string]interface{}{
			"status":      params.Status,
			"update_time": now,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("更新订单状态失败: %w", err)
	}

	order.Status = params.Status
	order.UpdateTime = now

	// 订单变更后列表缓存失效
	s.invalidateListCache(restaurantId)

	return &order, nil
}

// isValidStatusTransition 校验状态流转是否合法
func isValidStatusTransition(from, to string) bool {
	for _, next := range orderStatusFlow[from] {
		if next == to {
			return true
		}
	}
	return false
}

func applyOrderNoFilter(no string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if no != "" {
			return db.Where("no = ?", no)
		}
		return db
	}
}

// applyCreateTimeFilter 按下单日期过滤，左闭右开
func applyCreateTimeFilter(start, end string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if start != "" {
			if t, err := utils.ParseDate(start); err == nil {
				db = db.Where("create_time >= ?", t)
			}
		}
		if end != "" {
			if t, err := utils.ParseDate(end); err == nil {
				db = db.Where("create_time < ?", t.AddDate(0, 0, 1))
			}
		}
		return db
	}
}

// formatOrderData 格式化订单数据
func formatOrderData(data []admin_model.Order) []inout.OrderListItem {
	formatted := make([]inout.OrderListItem, 0, len(data))
	for _, item := range data {
		formatted = append(formatted, inout.OrderListItem{
			Id:         item.Id,
			No:         item.No,
			CustomerId: item.CustomerId,
			Status:     item.Status,
			Amount:     item.Amount,
			Remark:     item.Remark,
			CreateTime: utils.FormatTime(item.CreateTime),
			UpdateTime: utils.FormatTime(item.UpdateTime),
		})
	}
	return formatted
}

// 生成缓存键
func generateOrderCacheKey(restaurantId int, params inout.OrderListReq) string {
	return fmt.Sprintf("order:list:%d:%d:%d:%s:%s:%s:%s",
		restaurantId,
		params.Page,
		params.PageSize,
		params.Status,
		params.No,
		params.Start,
		params.End)
}

// 从缓存获取结果
func (s *OrderService) getFromCache(ctx context.Context, key string) (interface{}, bool) {
	client := redis.GetClient()
	if client == nil {
		return nil, false
	}

	cachedJSON, err := client.Get(ctx, key).Result()
	if err != nil {
		monitoring.RecordRedisCommand("get", "miss")
		return nil, false
	}

	var result inout.OrderListResp
	if err := json.Unmarshal([]byte(cachedJSON), &result); err != nil {
		return nil, false
	}

	monitoring.RecordRedisCommand("get", "hit")
	return result, true
}

// 保存结果到缓存
func (s *OrderService) saveToCache(key string, value interface{}, ttl time.Duration) {
	client := redis.GetClient()
	if client == nil {
		return
	}

	jsonData, err := json.Marshal(value)
	if err != nil {
		return
	}

	// 异步写缓存，不阻塞主流程
	go func() {
		saveCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Set(saveCtx, key, jsonData, ttl).Err(); err != nil {
			monitoring.RecordRedisCommand("set", "error")
			return
		}
		monitoring.RecordRedisCommand("set", "ok")
	}()
}

// invalidateListCache 订单变更后清理该餐厅的列表缓存
func (s *OrderService) invalidateListCache(restaurantId int) {
	client := redis.GetClient()
	if client == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		pattern := fmt.Sprintf("order:list:%d:*", restaurantId)
		iter := client.Scan(ctx, 0, pattern, 100).Iterator()
		for iter.Next(ctx) {
			if err := redis.DeleteKey(iter.Val()); err != nil {
				monitoring.RecordRedisCommand("del", "error")
				continue
			}
			monitoring.RecordRedisCommand("del", "ok")
		}
	}()
}
