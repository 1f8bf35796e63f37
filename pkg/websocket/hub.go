package websocket

import (
	"log"
	"sync"
)

// Hub 维护仪表盘连接并按餐厅推送订单动态
type Hub struct {
	// 所有活跃的客户端
	Clients map[*Client]bool

	// 餐厅ID到客户端的映射，用于定向推送
	RestaurantClients map[int][]*Client

	// 注册请求
	Register chan *Client

	// 注销请求
	Unregister chan *Client

	// 读写锁，保护RestaurantClients
	mu sync.RWMutex
}

// NewHub 创建一个新的Hub实例
func NewHub() *Hub {
	return &Hub{
		Register:          make(chan *Client),
		Unregister:        make(chan *Client),
		Clients:           make(map[*Client]bool),
		RestaurantClients: make(map[int][]*Client),
	}
}

// Run 启动hub的消息处理循环
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.mu.Lock()
			h.Clients[client] = true
			h.RestaurantClients[client.RestaurantID] = append(h.RestaurantClients[client.RestaurantID], client)
			connCount := len(h.RestaurantClients[client.RestaurantID])
			h.mu.Unlock()

			log.Printf("仪表盘客户端接入: RestaurantID=%d, ConnectionID=%s, 该餐厅连接数=%d",
				client.RestaurantID, client.ConnectionID, connCount)

		case client := <-h.Unregister:
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.removeLocked(client)
			}
			h.mu.Unlock()

			log.Printf("仪表盘客户端离线: RestaurantID=%d, ConnectionID=%s",
				client.RestaurantID, client.ConnectionID)
		}
	}
}

// BroadcastToRestaurant 向某餐厅的所有仪表盘连接推送消息
func (h *Hub) BroadcastToRestaurant(restaurantID int, message []byte) {
	h.mu.RLock()
	clients := make([]*Client, len(h.RestaurantClients[restaurantID]))
	copy(clients, h.RestaurantClients[restaurantID])
	h.mu.RUnlock()

	for _, client := range clients {
		select {
		case client.Send <- message:
		default:
			// 缓冲区已满，断开该连接
			h.mu.Lock()
			if _, ok := h.Clients[client]; ok {
				delete(h.Clients, client)
				close(client.Send)
				h.removeLocked(client)
			}
			h.mu.Unlock()
		}
	}
}

// GetStats 连接统计
func (h *Hub) GetStats() map[string]interface{} {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return map[string]interface{}{
		"total_connections":  len(h.Clients),
		"online_restaurants": len(h.RestaurantClients),
	}
}

// removeLocked 从餐厅映射中移除客户端，调用方需持有写锁
func (h *Hub) removeLocked(client *Client) {
	clients := h.RestaurantClients[client.RestaurantID]
	for i, c := range clients {
		if c == client {
			h.RestaurantClients[client.RestaurantID] = append(clients[:i], clients[i+1:]...)
			break
		}
	}
	if len(h.RestaurantClients[client.RestaurantID]) == 0 {
		delete(h.RestaurantClients, client.RestaurantID)
	}
}
