package security

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	if err != nil {
		t.Fatalf("哈希密码失败: %v", err)
	}

	if !CheckPasswordHash("secret123", hash) {
		t.Error("正确密码校验应通过")
	}
	if CheckPasswordHash("wrong-password", hash) {
		t.Error("错误密码校验应失败")
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	cases := []struct {
		password string
		wantErr  bool
	}{
		{"", true},
		{"short", true},
		{"abcdef", false},
		{"this-password-is-way-too-long-to-be-accepted", true},
	}

	for _, tc := range cases {
		err := ValidatePasswordStrength(tc.password)
		if (err != nil) != tc.wantErr {
			t.Errorf("ValidatePasswordStrength(%q) err = %v, wantErr = %v", tc.password, err, tc.wantErr)
		}
	}
}

func TestValidateInput(t *testing.T) {
	if err := ValidateInput("normal_user"); err != nil {
		t.Errorf("普通用户名不应报错: %v", err)
	}
	if err := ValidateInput("admin' OR '1'='1"); err == nil {
		t.Error("注入输入应被拒绝")
	}
	if err := ValidateInput("x; drop table user"); err == nil {
		t.Error("注入输入应被拒绝")
	}
}
