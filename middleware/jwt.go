package middleware

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"resto-admin/pkg/config"
	"resto-admin/pkg/jwt"
	"resto-admin/pkg/response"
	"resto-admin/redis"

	"github.com/gin-gonic/gin"
	jwtLib "github.com/golang-jwt/jwt/v5"
)

// 简单的令牌缓存
var (
	tokenCache = make(map[string]tokenCacheEntry)
	cacheMutex = &sync.RWMutex{}
)

type tokenCacheEntry struct {
	UserID       int
	RestaurantID int
	ExpiresAt    time.Time
}

// AdminJWTAuth 后台JWT中间件，解析token并注入 uid / rid
func AdminJWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Request.Header.Get("Authorization")
		if token == "" {
			response.Abort(c, response.AUTH_ERROR, "请求未携带token，无权限访问")
			return
		}
		// 去掉Bearer前缀
		if len(token) > 7 && token[:7] == "Bearer " {
			token = token[7:]
		}

		claims, err := jwt.ParseAdminToken(token)
		if err != nil {
			if err == jwt.ErrTokenExpired {
				response.Abort(c, response.AUTH_ERROR, "授权已过期")
				return
			}
			response.Abort(c, response.AUTH_ERROR, err.Error())
			return
		}

		// 对照登录时存入Redis的token，登出或重新登录后旧token随即失效
		stored, storeErr := redis.GetToken(strconv.Itoa(claims.UID))
		if tokenRevoked(token, stored, storeErr) {
			response.Abort(c, response.AUTH_ERROR, "登录已失效，请重新登录")
			return
		}

		// 继续交由下一个路由处理，并将解析出的信息传递下去
		c.Set("uid", claims.UID)
		c.Set("rid", claims.RID)
		c.Next()
	}
}

// tokenRevoked 判断token是否已登出或被新登录顶替
// Redis 查询故障（非键不存在）时放行，不让缓存故障挡住后台
func tokenRevoked(presented, stored string, err error) bool {
	if err != nil {
		return errors.Is(err, redis.ErrNil)
	}
	return stored != presented
}

// ParseTokenGetIdentity 从token字符串解析出账号ID和餐厅ID，使用缓存提高性能
// 用于websocket握手等拿不到完整中间件链的场景
func ParseTokenGetIdentity(tokenString string) (int, int, error) {
	if tokenString == "" {
		return 0, 0, fmt.Errorf("token不能为空")
	}
	if len(tokenString) > 7 && tokenString[:7] == "Bearer " {
		tokenString = tokenString[7:]
	}

	// 检查缓存
	cacheMutex.RLock()
	entry, found := tokenCache[tokenString]
	cacheMutex.RUnlock()

	if found && time.Now().Before(entry.ExpiresAt) {
		return entry.UserID, entry.RestaurantID, nil
	}

	signingKey := config.GetConfig().JWT.SigningKey
	if signingKey == "" {
		signingKey = "default-secret-key"
	}

	token, err := jwtLib.Parse(tokenString, func(token *jwtLib.Token) (interface{}, error) {
		// 验证签名算法
		if _, ok := token.Method.(*jwtLib.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return 0, 0, fmt.Errorf("无效令牌: %w", err)
	}

	claims, ok := token.Claims.(jwtLib.MapClaims)
	if !ok || !token.Valid {
		return 0, 0, fmt.Errorf("无效令牌")
	}

	userID, ok := claims["uid"].(float64)
	if !ok {
		return 0, 0, fmt.Errorf("令牌中无法找到用户ID")
	}

	restaurantID, _ := claims["rid"].(float64)

	// 缓存结果
	expiresAt := time.Now().Add(30 * time.Minute)
	if exp, ok := claims["exp"].(float64); ok {
		expTime := time.Unix(int64(exp), 0)
		if expTime.Before(expiresAt) {
			expiresAt = expTime
		}
	}

	cacheMutex.Lock()
	tokenCache[tokenString] = tokenCacheEntry{
		UserID:       int(userID),
		RestaurantID: int(restaurantID),
		ExpiresAt:    expiresAt,
	}
	cacheMutex.Unlock()

	return int(userID), int(restaurantID), nil
}

// 定期清理过期缓存项的协程
func init() {
	go func() {
		for {
			time.Sleep(15 * time.Minute)
			cleanExpiredTokens()
		}
	}()
}

// 清理过期的令牌
func cleanExpiredTokens() {
	now := time.Now()
	cacheMutex.Lock()
	defer cacheMutex.Unlock()

	for token, entry := range tokenCache {
		if now.After(entry.ExpiresAt) {
			delete(tokenCache, token)
		}
	}
}
