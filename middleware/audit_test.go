package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

// 审计文档必须携带查询端依赖的字段：
// timestamp 用于倒序排序，path/method/client_ip/user_agent 用于关键字过滤
func TestAuditDocumentFields(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req := httptest.NewRequest(http.MethodPost, "/api/admin/order?id=1", nil)
	req.Header.Set("User-Agent", "dashboard-test/1.0")
	c.Request = req
	c.Set("uid", 7)
	c.Set("rid", 3)

	doc := auditDocument(c, []byte(`{"status":"paid"}`), 25*time.Millisecond)

	for _, key := range []string{"timestamp", "path", "method", "client_ip", "user_agent"} {
		if _, ok := doc[key]; !ok {
			t.Errorf("审计文档缺少字段 %s", key)
		}
	}

	if _, ok := doc["timestamp"].(time.Time); !ok {
		t.Errorf("timestamp 应为时间类型，实际 %T", doc["timestamp"])
	}
	if got := doc["user_agent"]; got != "dashboard-test/1.0" {
		t.Errorf("user_agent = %v", got)
	}
	if got := doc["method"]; got != http.MethodPost {
		t.Errorf("method = %v", got)
	}
	if got := doc["path"]; got != "/api/admin/order" {
		t.Errorf("path = %v", got)
	}
	if got := doc["uid"]; got != 7 {
		t.Errorf("uid = %v", got)
	}
	if got := doc["latency_ms"]; got != int64(25) {
		t.Errorf("latency_ms = %v", got)
	}
}
