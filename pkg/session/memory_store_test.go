package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &Session{ID: "s1", APIToken: "tok", UserID: 7, UserName: "Muda", Role: "USER"}
	if err := store.Save(ctx, sess, time.Minute); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	got, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if got.APIToken != "tok" || got.UserID != 7 {
		t.Errorf("读取结果不正确: %+v", got)
	}

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("删除后期望 ErrNotFound，实际: %v", err)
	}
}

func TestMemoryStore_Expired(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	sess := &Session{ID: "s2", APIToken: "tok"}
	if err := store.Save(ctx, sess, -time.Second); err != nil {
		t.Fatalf("Save 应成功: %v", err)
	}

	if _, err := store.Get(ctx, "s2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("过期会话期望 ErrNotFound，实际: %v", err)
	}
}
