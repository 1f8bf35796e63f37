package public_service

import (
	"log"
	"sync"

	"resto-admin/pkg/websocket"
	"resto-admin/services"
)

// WebSocketService 管理仪表盘推送的Hub生命周期
type WebSocketService struct {
	hub  *websocket.Hub
	once sync.Once
}

var (
	wsService     *WebSocketService
	wsServiceOnce sync.Once
)

// GetWebSocketService 获取全局WebSocket服务实例
func GetWebSocketService() *WebSocketService {
	wsServiceOnce.Do(func() {
		wsService = &WebSocketService{}
	})
	return wsService
}

// GetHub 获取Hub，首次调用时启动消息循环
func (s *WebSocketService) GetHub() *websocket.Hub {
	s.once.Do(func() {
		s.hub = websocket.NewHub()
		go s.hub.Run()
		log.Println("WebSocket Hub已初始化并启动")
	})
	return s.hub
}

// BroadcastOrderUpdate 向餐厅仪表盘推送订单动态
func (s *WebSocketService) BroadcastOrderUpdate(restaurantId int, message websocket.OrderMessage) {
	s.GetHub().BroadcastToRestaurant(restaurantId, message.Encode())
}

// BroadcastOrderEvent 把队列中消费到的订单事件转成仪表盘消息后推送
func (s *WebSocketService) BroadcastOrderEvent(event services.OrderEvent) {
	s.BroadcastOrderUpdate(event.RestaurantId, orderMessageFromEvent(event))
}

func orderMessageFromEvent(event services.OrderEvent) websocket.OrderMessage {
	return websocket.OrderMessage{
		Type:    event.Type,
		OrderId: event.OrderId,
		OrderNo: event.OrderNo,
		Status:  event.Status,
		Amount:  event.Amount,
		Time:    event.OccurredAt,
	}
}
