package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"resto-admin/config"
	"resto-admin/db"
	"resto-admin/middleware"
	"resto-admin/mongodb"
	pkgconfig "resto-admin/pkg/config"
	"resto-admin/pkg/monitoring"
	"resto-admin/redis"
	"resto-admin/router"
	"resto-admin/services"
	"resto-admin/services/public_service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 构建时注入的变量
var (
	Version            = "dev"
	BuildTime          = "unknown"
	GitCommit          = "unknown"
	DefaultServiceName = "resto-admin"
	DefaultPort        = "8801"
)

// getEnv 获取环境变量，如果不存在则返回默认值
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "-version", "--version", "-v":
			fmt.Printf("Resto Admin\n")
			fmt.Printf("Version: %s\n", Version)
			fmt.Printf("Build Time: %s\n", BuildTime)
			fmt.Printf("Git Commit: %s\n", GitCommit)
			return
		case "-help", "--help", "-h":
			fmt.Printf("Resto Admin - 餐厅管理系统\n\n")
			fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
			fmt.Printf("Options:\n")
			fmt.Printf("  -version, -v     显示版本信息\n")
			fmt.Printf("  -help, -h        显示帮助信息\n\n")
			fmt.Printf("Environment Variables:\n")
			fmt.Printf("  SERVICE_NAME     服务名称 (默认: %s)\n", DefaultServiceName)
			fmt.Printf("  PORT             服务端口 (默认: %s)\n", DefaultPort)
			return
		}
	}

	serviceName := getEnv("SERVICE_NAME", DefaultServiceName)
	port := getEnv("PORT", DefaultPort)

	log.Printf("启动 %s (端口: %s)...", serviceName, port)

	// 初始化配置
	if err := pkgconfig.InitConfig(); err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	// 初始化 Redis 客户端
	redisConfig := config.LoadConfig()
	if err := redis.InitRedis(redisConfig); err != nil {
		log.Fatalf("Redis初始化失败: %v", err)
	}

	// 初始化数据库
	db.Init()

	// 初始化 MongoDB 客户端，未配置时审计日志自动降级
	mongodb.InitMongoDB()

	// 初始化消息队列并启动订单事件消费端，失败时订单变更改为进程内广播
	if err := services.InitNotificationService(); err != nil {
		log.Printf("消息队列初始化失败，订单事件改为进程内广播: %v", err)
	} else if err := services.GetNotificationService().ConsumeOrderEvents(
		public_service.GetWebSocketService().BroadcastOrderEvent); err != nil {
		log.Printf("订单事件消费启动失败: %v", err)
	}

	// 初始化 WebSocket 服务
	public_service.GetWebSocketService().GetHub()

	gin.SetMode(gin.ReleaseMode)
	app := gin.New()

	// 全局中间件
	app.Use(middleware.Recovery())
	app.Use(middleware.ErrorHandler())
	app.Use(middleware.RequestID())
	app.Use(middleware.Performance())
	app.Use(middleware.Cors())
	app.Use(monitoring.PrometheusMiddleware())

	// 监控指标端点
	app.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 健康检查端点
	app.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service":   serviceName,
			"status":    "healthy",
			"timestamp": time.Now(),
			"database":  db.GetDBStats(),
			"redis":     redis.IsConnected(),
		})
	})

	router.Init(app)
	router.InitAdmin(app)

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      app,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("服务器启动在端口 :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("服务启动失败: %v", err)
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Printf("正在关闭服务器...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("服务器强制关闭: %v", err)
	}

	services.CloseNotificationService()
	redis.CloseRedis()
	mongodb.CloseMongoDB()

	log.Printf("服务器已安全关闭")
}
