package jwt

import (
	"errors"
	"fmt"
	"time"

	"resto-admin/pkg/config"

	"github.com/golang-jwt/jwt/v4"
)

// JWT错误定义
var (
	ErrTokenExpired     = errors.New("token已过期")
	ErrTokenNotValidYet = errors.New("token尚未激活")
	ErrTokenMalformed   = errors.New("token格式错误")
	ErrTokenInvalid     = errors.New("token无效")
)

// CustomClaims JWT载荷
type CustomClaims struct {
	UID int `json:"uid"` // 账号ID
	RID int `json:"rid"` // 所属餐厅ID
	jwt.RegisteredClaims
}

// JWTManager JWT管理器
type JWTManager struct {
	signingKey []byte
}

// NewJWTManager 创建JWT管理器
// 签名密钥与 middleware.ParseTokenGetIdentity 同源，yaml 与环境变量都生效
func NewJWTManager() *JWTManager {
	signingKey := config.GetConfig().JWT.SigningKey
	if signingKey == "" {
		signingKey = "default-secret-key" // 开发环境默认值，生产环境必须设置
	}

	return &JWTManager{
		signingKey: []byte(signingKey),
	}
}

// GenerateToken 生成token
func (j *JWTManager) GenerateToken(uid, rid int, duration ...time.Duration) (string, error) {
	expiry := 24 * time.Hour
	if len(duration) > 0 {
		expiry = duration[0]
	}

	claims := CustomClaims{
		UID: uid,
		RID: rid,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "resto-admin",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.signingKey)
}

// ParseToken 解析token
func (j *JWTManager) ParseToken(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名方法
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("意外的签名方法: %v", token.Header["alg"])
		}
		return j.signingKey, nil
	})

	if err != nil {
		if ve, ok := err.(*jwt.ValidationError); ok {
			if ve.Errors&jwt.ValidationErrorMalformed != 0 {
				return nil, ErrTokenMalformed
			} else if ve.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, ErrTokenExpired
			} else if ve.Errors&jwt.ValidationErrorNotValidYet != 0 {
				return nil, ErrTokenNotValidYet
			} else {
				return nil, ErrTokenInvalid
			}
		}
		return nil, err
	}

	if claims, ok := token.Claims.(*CustomClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, ErrTokenInvalid
}

// ParseAdminToken 使用默认管理器解析token
func ParseAdminToken(tokenString string) (*CustomClaims, error) {
	return NewJWTManager().ParseToken(tokenString)
}
