package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"time"

	"resto-admin/mongodb"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AuditLogger 把后台请求审计日志异步写入 MongoDB
// Mongo 不可用时静默降级，不影响请求本身
func AuditLogger(collectionKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Next()

		if !mongodb.IsInitialized() {
			return
		}

		doc := auditDocument(c, bodyBytes, time.Since(start))

		// 异步写入，失败只记日志
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if _, err := mongodb.GetCollection(collectionKey).InsertOne(ctx, doc); err != nil {
				log.Printf("审计日志写入失败: %v", err)
			}
		}()
	}
}

// auditDocument 组装审计日志文档
// 字段名与 GetSystemLog 的关键字过滤和 timestamp 排序保持一致
func auditDocument(c *gin.Context, body []byte, latency time.Duration) bson.M {
	return bson.M{
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"query":      c.Request.URL.RawQuery,
		"body":       string(body),
		"client_ip":  c.ClientIP(),
		"user_agent": c.Request.UserAgent(),
		"status":     c.Writer.Status(),
		"uid":        c.GetInt("uid"),
		"rid":        c.GetInt("rid"),
		"request_id": c.GetString("request_id"),
		"latency_ms": latency.Milliseconds(),
		"timestamp":  time.Now(),
	}
}
