package middleware

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// SetupLogFile 设置日志输出文件
func SetupLogFile(logDir string) *os.File {
	// 创建日志文件夹
	if err := os.MkdirAll(logDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create log directory: %v", err)
	}

	// 创建日志文件，文件名包含日期
	logFile := filepath.Join(logDir, time.Now().Format("2006-01-02")+".log")
	file, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	return file
}

// RequestLogger 通用请求日志中间件
func RequestLogger(logDir string) gin.HandlerFunc {
	logFile := SetupLogFile(logDir)
	logger := log.New(logFile, "", log.LstdFlags)

	return func(c *gin.Context) {
		start := time.Now()

		// 读取请求体
		bodyBytes, _ := io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		c.Next()

		latency := time.Since(start)
		method := c.Request.Method
		path := c.Request.URL.Path
		params := c.Request.URL.RawQuery
		clientIP := c.ClientIP()
		requestBody := string(bodyBytes)

		logger.Printf("%s %s %s %s %s %s", method, path, clientIP, params, requestBody, latency)
	}
}
