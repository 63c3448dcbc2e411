package repository

import (
	"context"
	"fmt"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// MemberRepository 成员管理端点访问接口（管理员）
type MemberRepository interface {
	List(ctx context.Context, token string) ([]model.User, error)
	Create(ctx context.Context, token string, req *dto.CreateMemberRequest) error
	Update(ctx context.Context, token string, id int64, req *dto.UpdateMemberRequest) error
	ResetPassword(ctx context.Context, token string, id int64) (*dto.ResetPasswordResult, error)
	Delete(ctx context.Context, token string, id int64) error
}

type memberRepo struct {
	api *httpapi.Client
}

// NewMemberRepo 创建 MemberRepository 实例
func NewMemberRepo(api *httpapi.Client) MemberRepository {
	return &memberRepo{api: api}
}

func (r *memberRepo) List(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := r.api.Get(ctx, token, "/admin/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *memberRepo) Create(ctx context.Context, token string, req *dto.CreateMemberRequest) error {
	return r.api.Post(ctx, token, "/admin/users", req, nil)
}

func (r *memberRepo) Update(ctx context.Context, token string, id int64, req *dto.UpdateMemberRequest) error {
	return r.api.Patch(ctx, token, fmt.Sprintf("/admin/users/%d", id), req, nil)
}

func (r *memberRepo) ResetPassword(ctx context.Context, token string, id int64) (*dto.ResetPasswordResult, error) {
	var result dto.ResetPasswordResult
	if err := r.api.Patch(ctx, token, fmt.Sprintf("/admin/users/%d/reset-password", id), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *memberRepo) Delete(ctx context.Context, token string, id int64) error {
	return r.api.Delete(ctx, token, fmt.Sprintf("/admin/users/%d", id))
}
