package utils

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// GetRestaurantId 从 gin.Context 中获取当前账号所属的餐厅ID
// JWT中间件会把 rid 写入上下文；后台超级账号 rid 为 0
func GetRestaurantId(c *gin.Context) (int, error) {
	rid := c.GetInt("rid")
	if rid > 0 {
		return rid, nil
	}

	// 兼容通过查询参数显式指定餐厅的场景（仅超级账号）
	if v, ok := c.GetQuery("restaurant_id"); ok && v != "" {
		var parsed int
		if _, err := fmt.Sscanf(v, "%d", &parsed); err != nil || parsed <= 0 {
			return 0, fmt.Errorf("invalid restaurant_id: %s", v)
		}
		return parsed, nil
	}

	return 0, fmt.Errorf("餐厅信息缺失")
}
