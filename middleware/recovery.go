package middleware

import (
	"fmt"
	"log"
	"runtime/debug"

	"resto-admin/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Recovery 自定义恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// 记录panic详细信息
		err := fmt.Sprintf("panic recovered: %v", recovered)
		stack := string(debug.Stack())

		log.Printf("[PANIC RECOVERY] %s\n%s", err, stack)

		// 根据环境返回不同的错误信息
		if gin.Mode() == gin.DebugMode {
			response.ErrorWithData(c, response.INTERNAL_ERROR, gin.H{
				"panic": recovered,
				"stack": stack,
			}, "服务器内部错误")
		} else {
			response.Error(c, response.INTERNAL_ERROR, "服务器内部错误")
		}
	})
}

// ErrorHandler 统一错误处理中间件
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last()

			log.Printf("[ERROR] %s %s - %v", c.Request.Method, c.Request.URL.Path, err.Err)

			// 如果还没有响应，则发送错误响应
			if !c.Writer.Written() {
				switch err.Type {
				case gin.ErrorTypeBind:
					response.Error(c, response.INVALID_PARAMS, "请求参数错误: "+err.Error())
				case gin.ErrorTypePublic:
					response.Error(c, response.ERROR, err.Error())
				default:
					response.Error(c, response.INTERNAL_ERROR, "内部服务错误")
				}
			}
		}
	}
}

// RequestID 为每个请求生成唯一ID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Header("X-Request-ID", requestID)
		c.Set("request_id", requestID)
		c.Next()
	}
}
