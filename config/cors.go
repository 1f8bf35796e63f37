package config

import (
	"os"
	"strings"
)

// CorsSettings CORS相关配置
type CorsSettings struct {
	AllowedOrigins   []string `json:"allowed_origins"`
	AllowedMethods   []string `json:"allowed_methods"`
	AllowedHeaders   []string `json:"allowed_headers"`
	ExposedHeaders   []string `json:"exposed_headers"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

// GetCorsConfig 获取CORS配置
func GetCorsConfig() CorsSettings {
	var allowedOrigins []string

	// 从环境变量获取
	if envOrigins := os.Getenv("ALLOWED_ORIGINS"); envOrigins != "" {
		allowedOrigins = strings.Split(envOrigins, ",")
		// 清理空格
		for i, origin := range allowedOrigins {
			allowedOrigins[i] = strings.TrimSpace(origin)
		}
	} else {
		// 默认配置 - 本地开发的落地页和后台前端
		allowedOrigins = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://localhost:8080",
			"https://localhost:3000",
			"https://localhost:5173",
		}

		// 开发环境允许所有域名
		if os.Getenv("GIN_MODE") != "release" {
			allowedOrigins = append(allowedOrigins, "*")
		}
	}

	return CorsSettings{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS", "HEAD",
		},
		AllowedHeaders: []string{
			"Origin",
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"X-CSRF-Token",
			"Authorization",
			"X-Request-ID",
			"Accept",
			"Cache-Control",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"X-Request-ID",
			"X-Total-Count",
		},
		AllowCredentials: true,
		MaxAge:           86400, // 24小时
	}
}
