package middleware

import (
	"errors"
	"testing"

	"resto-admin/pkg/config"
	"resto-admin/pkg/jwt"
	"resto-admin/redis"
)

func TestTokenRevoked(t *testing.T) {
	tests := []struct {
		name      string
		presented string
		stored    string
		err       error
		want      bool
	}{
		{"token匹配", "abc", "abc", nil, false},
		{"token被新登录顶替", "abc", "def", nil, true},
		{"已登出", "abc", "", redis.ErrNil, true},
		{"Redis故障降级放行", "abc", "", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tokenRevoked(tt.presented, tt.stored, tt.err); got != tt.want {
				t.Errorf("tokenRevoked() = %v, want %v", got, tt.want)
			}
		})
	}
}

// 签发端与websocket握手解析端必须使用同一签名密钥来源
func TestParseTokenGetIdentitySharesSigningKey(t *testing.T) {
	old := config.AppConfig
	defer func() { config.AppConfig = old }()

	config.AppConfig = &config.Config{}
	config.AppConfig.JWT.SigningKey = "yaml-only-key"

	token, err := jwt.NewJWTManager().GenerateToken(42, 7)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	uid, rid, err := ParseTokenGetIdentity(token)
	if err != nil {
		t.Fatalf("解析token失败: %v", err)
	}
	if uid != 42 || rid != 7 {
		t.Errorf("uid, rid = %d, %d, want 42, 7", uid, rid)
	}
}
