package repository

import (
	"context"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// WalletRepository 帮派金库端点访问接口
type WalletRepository interface {
	Get(ctx context.Context, token string) (*model.Wallet, error)
	AddTransaction(ctx context.Context, token string, req *dto.WalletTxRequest) error
}

type walletRepo struct {
	api *httpapi.Client
}

// NewWalletRepo 创建 WalletRepository 实例
func NewWalletRepo(api *httpapi.Client) WalletRepository {
	return &walletRepo{api: api}
}

func (r *walletRepo) Get(ctx context.Context, token string) (*model.Wallet, error) {
	var wallet model.Wallet
	if err := r.api.Get(ctx, token, "/admin/gang-wallet", &wallet); err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (r *walletRepo) AddTransaction(ctx context.Context, token string, req *dto.WalletTxRequest) error {
	return r.api.Post(ctx, token, "/admin/gang-wallet/transaction", req, nil)
}

// SettingRepository 全局设置端点访问接口
type SettingRepository interface {
	List(ctx context.Context, token string) ([]model.Setting, error)
	Put(ctx context.Context, token, key, value string) error
}

type settingRepo struct {
	api *httpapi.Client
}

// NewSettingRepo 创建 SettingRepository 实例
func NewSettingRepo(api *httpapi.Client) SettingRepository {
	return &settingRepo{api: api}
}

func (r *settingRepo) List(ctx context.Context, token string) ([]model.Setting, error) {
	var settings []model.Setting
	if err := r.api.Get(ctx, token, "/admin/settings", &settings); err != nil {
		return nil, err
	}
	return settings, nil
}

func (r *settingRepo) Put(ctx context.Context, token, key, value string) error {
	body := map[string]string{"key": key, "value": value}
	return r.api.Put(ctx, token, "/admin/settings", body, nil)
}
