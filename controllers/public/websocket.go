package public

import (
	"log"
	"net/http"

	"resto-admin/middleware"
	"resto-admin/services/public_service"

	ws "resto-admin/pkg/websocket"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// 跨域由Cors中间件统一控制
		return true
	},
	EnableCompression: true,
}

// WebSocketConnect 仪表盘订单动态推送连接
func WebSocketConnect(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "缺少token"})
		return
	}

	_, restaurantId, err := middleware.ParseTokenGetIdentity(token)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "token无效"})
		return
	}
	if restaurantId <= 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "餐厅信息缺失"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket升级失败: %v", err)
		return
	}

	hub := public_service.GetWebSocketService().GetHub()
	client := &ws.Client{
		Hub:          hub,
		Conn:         conn,
		Send:         make(chan []byte, 256),
		RestaurantID: restaurantId,
		ConnectionID: uuid.NewString(),
	}
	hub.Register <- client

	go client.WritePump()
	go client.ReadPump()
}

// WebSocketStats 连接统计
func WebSocketStats(c *gin.Context) {
	c.JSON(http.StatusOK, public_service.GetWebSocketService().GetHub().GetStats())
}
