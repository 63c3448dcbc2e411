package jwt

import (
	"errors"
	"testing"
	"time"
)

func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-at-least-16", time.Hour)

	token, err := m.GenerateSessionToken("sess-001", "ADMIN")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("解析应成功: %v", err)
	}
	if claims.SessionID != "sess-001" {
		t.Errorf("期望 SessionID=sess-001，实际 %s", claims.SessionID)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("期望 Role=ADMIN，实际 %s", claims.Role)
	}
}

func TestManager_ParseExpired(t *testing.T) {
	m := NewManager("test-secret-at-least-16", -time.Minute)

	token, err := m.GenerateSessionToken("sess-002", "USER")
	if err != nil {
		t.Fatalf("签发应成功: %v", err)
	}

	_, err = m.ParseToken(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("期望 ErrTokenExpired，实际: %v", err)
	}
}

func TestManager_ParseWrongSecret(t *testing.T) {
	m1 := NewManager("test-secret-at-least-16", time.Hour)
	m2 := NewManager("another-secret-16bytes!", time.Hour)

	token, _ := m1.GenerateSessionToken("sess-003", "USER")

	_, err := m2.ParseToken(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}
