package service

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// ── 仓库模块业务错误 ──

var (
	ErrItemNotFound      = errors.New("ไม่พบไอเทมนี้ในคลัง")
	ErrInvalidQuantity   = errors.New("จำนวนต้องมากกว่า 0")
	ErrStockInsufficient = errors.New("จำนวนในคลังไม่เพียงพอ")
)

// InventoryService 仓库业务接口
type InventoryService interface {
	// Ledger 返回仓库页视图：物品列表 + 流水
	Ledger(ctx context.Context, token string, filter *dto.HistoryFilter) (*dto.LedgerView, error)
	ListItems(ctx context.Context, token string) ([]model.Item, error)
	CreateItem(ctx context.Context, token string, form *dto.ItemForm) error
	UpdateItem(ctx context.Context, token string, id int64, form *dto.ItemForm) error
	DeleteItem(ctx context.Context, token string, id int64) error

	// Preview 计算出入库后的库存预览；出库导致负库存时 Allowed 为 false
	Preview(ctx context.Context, token string, txType model.TransactionType, req *dto.TransactionRequest) (*dto.TransactionPreview, error)
	// Submit 提交出入库；出库前再次执行负库存守卫
	Submit(ctx context.Context, token string, txType model.TransactionType, req *dto.TransactionRequest) error

	History(ctx context.Context, token string, filter *dto.HistoryFilter) ([]model.Transaction, error)
	MyTransactions(ctx context.Context, token string) ([]model.Transaction, error)
	DailySummary(ctx context.Context, token, date string) ([]model.DailySummary, error)
}

type inventoryService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventoryService 创建 InventoryService 实例
func NewInventoryService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) InventoryService {
	return &inventoryService{cfg: cfg, repo: repo, logger: logger}
}

func (s *inventoryService) Ledger(ctx context.Context, token string, filter *dto.HistoryFilter) (*dto.LedgerView, error) {
	items, err := s.repo.Inventory.ListItems(ctx, token)
	if err != nil {
		return nil, err
	}
	txs, err := s.repo.Inventory.ListTransactions(ctx, token, filter)
	if err != nil {
		return nil, err
	}
	return &dto.LedgerView{
		Items:             items,
		Transactions:      txs,
		LowStockThreshold: s.cfg.Inventory.LowStockThreshold,
	}, nil
}

func (s *inventoryService) ListItems(ctx context.Context, token string) ([]model.Item, error) {
	return s.repo.Inventory.ListItems(ctx, token)
}

func (s *inventoryService) CreateItem(ctx context.Context, token string, form *dto.ItemForm) error {
	if err := s.repo.Inventory.CreateItem(ctx, token, form); err != nil {
		return err
	}
	s.logger.Info("创建物品", zap.String("name", form.Name), zap.Int("stock", form.CurrentStock))
	return nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, token string, id int64, form *dto.ItemForm) error {
	if err := s.repo.Inventory.UpdateItem(ctx, token, id, form); err != nil {
		return err
	}
	s.logger.Info("更新物品", zap.Int64("item_id", id), zap.String("name", form.Name))
	return nil
}

func (s *inventoryService) DeleteItem(ctx context.Context, token string, id int64) error {
	if err := s.repo.Inventory.DeleteItem(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("删除物品", zap.Int64("item_id", id))
	return nil
}

// findItem 按字符串 id 在物品列表中定位
func (s *inventoryService) findItem(ctx context.Context, token, itemID string) (*model.Item, error) {
	id, err := strconv.ParseInt(itemID, 10, 64)
	if err != nil {
		return nil, ErrItemNotFound
	}
	items, err := s.repo.Inventory.ListItems(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

func (s *inventoryService) Preview(ctx context.Context, token string, txType model.TransactionType, req *dto.TransactionRequest) (*dto.TransactionPreview, error) {
	if req.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	item, err := s.findItem(ctx, token, req.ItemID)
	if err != nil {
		return nil, err
	}

	after := item.CurrentStock + req.Quantity
	if txType == model.TxWithdrawal {
		after = item.CurrentStock - req.Quantity
	}

	return &dto.TransactionPreview{
		Item:     *item,
		Type:     txType,
		Quantity: req.Quantity,
		Reason:   req.Reason,
		Before:   item.CurrentStock,
		After:    after,
		Allowed:  after >= 0,
	}, nil
}

func (s *inventoryService) Submit(ctx context.Context, token string, txType model.TransactionType, req *dto.TransactionRequest) error {
	preview, err := s.Preview(ctx, token, txType, req)
	if err != nil {
		return err
	}
	if !preview.Allowed {
		return ErrStockInsufficient
	}

	if txType == model.TxWithdrawal {
		err = s.repo.Inventory.Withdraw(ctx, token, req)
	} else {
		err = s.repo.Inventory.Deposit(ctx, token, req)
	}
	if err != nil {
		return err
	}

	s.logger.Info("库存流水提交",
		zap.String("type", string(txType)),
		zap.String("item_id", req.ItemID),
		zap.Int("quantity", req.Quantity))
	return nil
}

func (s *inventoryService) History(ctx context.Context, token string, filter *dto.HistoryFilter) ([]model.Transaction, error) {
	return s.repo.Inventory.ListTransactions(ctx, token, filter)
}

func (s *inventoryService) MyTransactions(ctx context.Context, token string) ([]model.Transaction, error) {
	return s.repo.Inventory.MyTransactions(ctx, token)
}

func (s *inventoryService) DailySummary(ctx context.Context, token, date string) ([]model.DailySummary, error) {
	if date == "" {
		return nil, ErrInvalidDate
	}
	return s.repo.Inventory.DailySummary(ctx, token, date)
}
