package monitoring

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus 指标定义
var (
	// HTTP 请求相关指标
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP请求总数",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP请求耗时分布",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	// 数据库相关指标
	dbConnectionsInUse = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "db_connections_in_use",
			Help: "当前使用中的数据库连接数",
		},
	)

	// Redis 相关指标
	redisCommandsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_commands_total",
			Help: "Redis命令执行总数",
		},
		[]string{"command", "status"},
	)

	// 业务相关指标
	ordersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "创建订单总数",
		},
	)

	statsRecomputeTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "daily_stats_recompute_total",
			Help: "日统计重算次数",
		},
		[]string{"status"},
	)

	statsRecomputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "daily_stats_recompute_duration_seconds",
			Help:    "日统计重算耗时分布",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.5, 1.0, 2.5, 5.0},
		},
	)
)

// PrometheusMiddleware Gin中间件，用于收集HTTP指标
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		// 处理请求
		c.Next()

		// 记录指标
		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())

		httpRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			statusCode,
		).Inc()

		httpRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

// 业务指标记录函数
func RecordOrderCreated() {
	ordersCreated.Inc()
}

func RecordStatsRecompute(status string, duration time.Duration) {
	statsRecomputeTotal.WithLabelValues(status).Inc()
	statsRecomputeDuration.Observe(duration.Seconds())
}

func UpdateDBConnections(inUse int) {
	dbConnectionsInUse.Set(float64(inUse))
}

func RecordRedisCommand(command, status string) {
	redisCommandsTotal.WithLabelValues(command, status).Inc()
}
