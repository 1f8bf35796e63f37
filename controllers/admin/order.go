package admin

import (
	"log"
	"strconv"
	"time"

	"resto-admin/inout"
	"resto-admin/model/admin_model"
	"resto-admin/pkg/monitoring"
	"resto-admin/pkg/websocket"
	"resto-admin/services"
	"resto-admin/services/admin_service"
	"resto-admin/services/public_service"
	"resto-admin/utils"

	"github.com/gin-gonic/gin"
)

var orderService = &admin_service.OrderService{}

// CreateOrder 收银台录单
func CreateOrder(c *gin.Context) {
	var params inout.CreateOrderReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	order, err := orderService.CreateOrder(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	monitoring.RecordOrderCreated()

	// 新订单计入当日统计
	if _, err := statisticsService.RecomputeForOrder(c, order.Id); err != nil {
		log.Printf("订单 %d 统计重算失败: %v", order.Id, err)
	}

	notifyOrderChange(order, "order_created")

	Resp.Succ(c, formatOrderResult(order))
}

// GetOrderList 订单列表
func GetOrderList(c *gin.Context) {
	var params inout.OrderListReq
	if err := c.ShouldBind(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	list, err := orderService.GetOrderList(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, list)
}

// GetOrderDetail 订单详情
func GetOrderDetail(c *gin.Context) {
	id, err := strconv.Atoi(c.Query("id"))
	if err != nil {
		Resp.Err(c, 20001, "无效的订单ID")
		return
	}

	detail, err := orderService.GetOrderDetail(c, id)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}
	Resp.Succ(c, detail)
}

// UpdateOrderStatus 更新订单状态，并联动统计、仪表盘推送与订单事件
func UpdateOrderStatus(c *gin.Context) {
	var params inout.UpdateOrderStatusReq
	if err := c.ShouldBindJSON(&params); err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	order, err := orderService.UpdateOrderStatus(c, params)
	if err != nil {
		Resp.Err(c, 20001, err.Error())
		return
	}

	// 状态变更后重算当日统计
	if _, err := statisticsService.RecomputeForOrder(c, order.Id); err != nil {
		log.Printf("订单 %d 统计重算失败: %v", order.Id, err)
	}

	notifyOrderChange(order, "order_status_changed")

	Resp.Succ(c, formatOrderResult(order))
}

// notifyOrderChange 发布订单事件，仪表盘推送由队列消费端完成
// 消息队列不可用或发布失败时退化为进程内直接广播
func notifyOrderChange(order *admin_model.Order, eventType string) {
	if ns := services.GetNotificationService(); ns != nil {
		event := services.OrderEvent{
			Type:         eventType,
			OrderId:      order.Id,
			OrderNo:      order.No,
			RestaurantId: order.RestaurantId,
			Status:       order.Status,
			Amount:       order.Amount.StringFixed(2),
			OccurredAt:   time.Now().UTC().Format(time.RFC3339),
		}
		err := ns.PublishOrderEvent(event)
		if err == nil {
			return
		}
		log.Printf("订单事件发布失败，改为进程内广播: %v", err)
	}

	msg := websocket.OrderMessage{
		Type:    eventType,
		OrderId: order.Id,
		OrderNo: order.No,
		Status:  order.Status,
		Amount:  order.Amount.StringFixed(2),
		Time:    utils.FormatTime(order.UpdateTime),
	}
	public_service.GetWebSocketService().BroadcastOrderUpdate(order.RestaurantId, msg)
}

func formatOrderResult(order *admin_model.Order) map[string]interface{} {
	return map[string]interface{}{
		"id":          order.Id,
		"no":          order.No,
		"status":      order.Status,
		"amount":      order.Amount.StringFixed(2),
		"update_time": utils.FormatTime(order.UpdateTime),
	}
}
