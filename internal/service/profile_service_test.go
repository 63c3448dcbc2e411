package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

func TestProfileChangePassword(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewProfileService(testConfig(), repo, session.NewMemoryStore(), zap.NewNop())

	// 确认不匹配
	err := svc.ChangePassword(context.Background(), "tok", &dto.ChangePasswordRequest{
		CurrentPassword: "old", NewPassword: "newpass1", ConfirmPassword: "newpass2",
	})
	if !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("确认不匹配期望 ErrPasswordMismatch, 实际 %v", err)
	}

	// 长度不足
	err = svc.ChangePassword(context.Background(), "tok", &dto.ChangePasswordRequest{
		CurrentPassword: "old", NewPassword: "12345", ConfirmPassword: "12345",
	})
	if !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("长度不足期望 ErrPasswordTooShort, 实际 %v", err)
	}

	// 远端判定当前密码错误 → 翻译为界面语言
	m.profile.changeErr = &httpapi.Error{Status: 400, Message: "Current password is incorrect"}
	err = svc.ChangePassword(context.Background(), "tok", &dto.ChangePasswordRequest{
		CurrentPassword: "wrong", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	})
	if !errors.Is(err, ErrWrongPassword) {
		t.Errorf("密码错误期望 ErrWrongPassword, 实际 %v", err)
	}

	// 正常修改
	m.profile.changeErr = nil
	err = svc.ChangePassword(context.Background(), "tok", &dto.ChangePasswordRequest{
		CurrentPassword: "old", NewPassword: "newpass1", ConfirmPassword: "newpass1",
	})
	if err != nil {
		t.Errorf("修改密码应成功: %v", err)
	}
}

func TestProfileUpdateName(t *testing.T) {
	repo, m := newTestRepo()
	store := session.NewMemoryStore()
	svc := NewProfileService(testConfig(), repo, store, zap.NewNop())

	sess := &session.Session{ID: "s1", APIToken: "tok", UserID: 7, UserName: "Alice", CreatedAt: time.Now()}
	if err := store.Save(context.Background(), sess, time.Hour); err != nil {
		t.Fatalf("会话保存失败: %v", err)
	}

	if err := svc.UpdateName(context.Background(), sess, &dto.UpdateNameRequest{InGameName: "  Alicia  "}); err != nil {
		t.Fatalf("UpdateName 应成功: %v", err)
	}
	if m.profile.lastName != "Alicia" {
		t.Errorf("名称应去除首尾空白后透传, 实际 %q", m.profile.lastName)
	}

	// 会话里的显示名同步更新
	got, err := store.Get(context.Background(), "s1")
	if err != nil {
		t.Fatalf("会话取回失败: %v", err)
	}
	if got.UserName != "Alicia" {
		t.Errorf("会话显示名应同步, 实际 %q", got.UserName)
	}

	// 空名称被拒绝
	if err := svc.UpdateName(context.Background(), sess, &dto.UpdateNameRequest{InGameName: "   "}); err == nil {
		t.Errorf("空名称应报错")
	}
}
