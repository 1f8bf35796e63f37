package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestGenerateAndParseToken(t *testing.T) {
	manager := NewJWTManager()

	token, err := manager.GenerateToken(42, 7)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	claims, err := manager.ParseToken(token)
	if err != nil {
		t.Fatalf("解析token失败: %v", err)
	}

	if claims.UID != 42 {
		t.Errorf("UID = %d, want 42", claims.UID)
	}
	if claims.RID != 7 {
		t.Errorf("RID = %d, want 7", claims.RID)
	}
	if claims.Issuer != "resto-admin" {
		t.Errorf("Issuer = %s, want resto-admin", claims.Issuer)
	}
}

func TestParseExpiredToken(t *testing.T) {
	manager := NewJWTManager()

	token, err := manager.GenerateToken(1, 1, -time.Hour)
	if err != nil {
		t.Fatalf("生成token失败: %v", err)
	}

	_, err = manager.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("err = %v, want ErrTokenExpired", err)
	}
}

func TestParseMalformedToken(t *testing.T) {
	manager := NewJWTManager()

	_, err := manager.ParseToken("not-a-token")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Errorf("err = %v, want ErrTokenMalformed", err)
	}
}
