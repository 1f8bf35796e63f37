package router

import (
	"resto-admin/api"
	"resto-admin/controllers/app"
	"resto-admin/controllers/public"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

// Init 注册公开路由：登录、落地页接口、仪表盘推送
func Init(r *gin.Engine) {
	// 验证码存会话，cookie存储
	r.Use(sessions.Sessions("mysession", cookie.NewStore([]byte("captch"))))

	authGroup := r.Group("")
	{
		authGroup.GET("/auth/captcha", api.Auth.Captcha)
		authGroup.POST("/auth/login", api.Auth.Login)
	}

	// 落地页公开接口
	publicGroup := r.Group("/api/public")
	{
		publicGroup.GET("/restaurant", app.GetRestaurant)
		publicGroup.GET("/menu", app.GetMenu)
	}

	// 仪表盘订单动态推送
	r.GET("/ws/orders", public.WebSocketConnect)
	r.GET("/ws/stats", public.WebSocketStats)
}
