package repository

import (
	"context"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// AuthRepository 认证端点访问接口
type AuthRepository interface {
	Login(ctx context.Context, phoneNumber, password string) (*dto.LoginResult, error)
}

type authRepo struct {
	api *httpapi.Client
}

// NewAuthRepo 创建 AuthRepository 实例
func NewAuthRepo(api *httpapi.Client) AuthRepository {
	return &authRepo{api: api}
}

func (r *authRepo) Login(ctx context.Context, phoneNumber, password string) (*dto.LoginResult, error) {
	body := map[string]string{
		"phoneNumber": phoneNumber,
		"password":    password,
	}
	var result dto.LoginResult
	if err := r.api.Post(ctx, "", "/auth/login", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ProfileRepository 个人账户端点访问接口
type ProfileRepository interface {
	Me(ctx context.Context, token string) (*model.User, error)
	UpdateName(ctx context.Context, token, inGameName string) error
	ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error
}

type profileRepo struct {
	api *httpapi.Client
}

// NewProfileRepo 创建 ProfileRepository 实例
func NewProfileRepo(api *httpapi.Client) ProfileRepository {
	return &profileRepo{api: api}
}

func (r *profileRepo) Me(ctx context.Context, token string) (*model.User, error) {
	var user model.User
	if err := r.api.Get(ctx, token, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *profileRepo) UpdateName(ctx context.Context, token, inGameName string) error {
	return r.api.Patch(ctx, token, "/me", map[string]string{"inGameName": inGameName}, nil)
}

func (r *profileRepo) ChangePassword(ctx context.Context, token, currentPassword, newPassword string) error {
	body := map[string]string{
		"currentPassword": currentPassword,
		"newPassword":     newPassword,
	}
	return r.api.Patch(ctx, token, "/me", body, nil)
}
