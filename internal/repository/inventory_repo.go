package repository

import (
	"context"
	"fmt"
	"net/url"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// InventoryRepository 仓库端点访问接口
type InventoryRepository interface {
	ListItems(ctx context.Context, token string) ([]model.Item, error)
	CreateItem(ctx context.Context, token string, form *dto.ItemForm) error
	UpdateItem(ctx context.Context, token string, id int64, form *dto.ItemForm) error
	DeleteItem(ctx context.Context, token string, id int64) error

	Deposit(ctx context.Context, token string, req *dto.TransactionRequest) error
	Withdraw(ctx context.Context, token string, req *dto.TransactionRequest) error

	// ListTransactions 按过滤条件查询流水；过滤在服务端完成
	ListTransactions(ctx context.Context, token string, filter *dto.HistoryFilter) ([]model.Transaction, error)
	// MyTransactions 返回当前用户自己的流水
	MyTransactions(ctx context.Context, token string) ([]model.Transaction, error)
	// DailySummary 返回指定日期的物品出入库汇总（服务端聚合）
	DailySummary(ctx context.Context, token, date string) ([]model.DailySummary, error)
}

type inventoryRepo struct {
	api *httpapi.Client
}

// NewInventoryRepo 创建 InventoryRepository 实例
func NewInventoryRepo(api *httpapi.Client) InventoryRepository {
	return &inventoryRepo{api: api}
}

func (r *inventoryRepo) ListItems(ctx context.Context, token string) ([]model.Item, error) {
	var items []model.Item
	if err := r.api.Get(ctx, token, "/inventory/items", &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *inventoryRepo) CreateItem(ctx context.Context, token string, form *dto.ItemForm) error {
	return r.api.Post(ctx, token, "/inventory/items", form, nil)
}

func (r *inventoryRepo) UpdateItem(ctx context.Context, token string, id int64, form *dto.ItemForm) error {
	return r.api.Patch(ctx, token, fmt.Sprintf("/inventory/items/%d", id), form, nil)
}

func (r *inventoryRepo) DeleteItem(ctx context.Context, token string, id int64) error {
	return r.api.Delete(ctx, token, fmt.Sprintf("/inventory/items/%d", id))
}

func (r *inventoryRepo) Deposit(ctx context.Context, token string, req *dto.TransactionRequest) error {
	return r.api.Post(ctx, token, "/inventory/deposit", req, nil)
}

func (r *inventoryRepo) Withdraw(ctx context.Context, token string, req *dto.TransactionRequest) error {
	return r.api.Post(ctx, token, "/inventory/withdraw", req, nil)
}

func (r *inventoryRepo) ListTransactions(ctx context.Context, token string, filter *dto.HistoryFilter) ([]model.Transaction, error) {
	q := url.Values{}
	if filter != nil {
		if filter.Type != "" {
			q.Set("type", filter.Type)
		}
		if filter.ItemID != "" {
			q.Set("itemId", filter.ItemID)
		}
	}

	path := "/inventory/transactions"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var result struct {
		Transactions []model.Transaction `json:"transactions"`
	}
	if err := r.api.Get(ctx, token, path, &result); err != nil {
		return nil, err
	}
	return result.Transactions, nil
}

func (r *inventoryRepo) MyTransactions(ctx context.Context, token string) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.api.Get(ctx, token, "/inventory/transactions/me", &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *inventoryRepo) DailySummary(ctx context.Context, token, date string) ([]model.DailySummary, error) {
	q := url.Values{}
	q.Set("date", date)

	var summary []model.DailySummary
	if err := r.api.Get(ctx, token, "/inventory/summary?"+q.Encode(), &summary); err != nil {
		return nil, err
	}
	return summary, nil
}
