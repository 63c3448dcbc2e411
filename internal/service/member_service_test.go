package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
)

func TestMemberSelfGuards(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewMemberService(repo, zap.NewNop())

	m.member.users = []model.User{
		{ID: 1, InGameName: "Admin", Role: model.RoleAdmin},
		{ID: 2, InGameName: "Bob", Role: model.RoleUser},
	}

	// 管理员不能给自己降权
	role := "USER"
	err := svc.Update(context.Background(), "tok", 1, 1, &dto.UpdateMemberRequest{Role: &role})
	if !errors.Is(err, ErrSelfRoleChange) {
		t.Errorf("自我降权期望 ErrSelfRoleChange, 实际 %v", err)
	}

	// 改别人可以
	if err := svc.Update(context.Background(), "tok", 2, 1, &dto.UpdateMemberRequest{Role: &role}); err != nil {
		t.Errorf("修改他人角色应成功: %v", err)
	}

	// 改自己的名字不触发守卫
	name := "AdminX"
	if err := svc.Update(context.Background(), "tok", 1, 1, &dto.UpdateMemberRequest{InGameName: &name}); err != nil {
		t.Errorf("修改自己名称应成功: %v", err)
	}

	// 不能删除自己
	if err := svc.Delete(context.Background(), "tok", 1, 1); !errors.Is(err, ErrSelfDelete) {
		t.Errorf("自我删除期望 ErrSelfDelete, 实际 %v", err)
	}
	if err := svc.Delete(context.Background(), "tok", 2, 1); err != nil {
		t.Errorf("删除他人应成功: %v", err)
	}
	if len(m.member.deleted) != 1 || m.member.deleted[0] != 2 {
		t.Errorf("删除请求未透传, 实际 %v", m.member.deleted)
	}
}

func TestMemberCreateAndReset(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewMemberService(repo, zap.NewNop())

	err := svc.Create(context.Background(), "tok", &dto.CreateMemberRequest{
		InGameName: "Carol", PhoneNumber: "0833333333", Password: "secret1", Role: "USER",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if len(m.member.users) != 1 || m.member.users[0].InGameName != "Carol" {
		t.Fatalf("创建请求未透传, 实际 %+v", m.member.users)
	}

	result, err := svc.ResetPassword(context.Background(), "tok", 1)
	if err != nil {
		t.Fatalf("ResetPassword 应成功: %v", err)
	}
	if result.ResetTo == "" {
		t.Errorf("重置结果应包含新密码")
	}
}
