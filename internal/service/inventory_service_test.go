package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
)

func TestInventoryPreview(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewInventoryService(testConfig(), repo, zap.NewNop())

	m.inventory.items = []model.Item{{ID: 5, Name: "ยาแก้ปวด", CurrentStock: 10}}

	// 出库超量：预览显示负数且禁止确认
	p, err := svc.Preview(context.Background(), "tok", model.TxWithdrawal,
		&dto.TransactionRequest{ItemID: "5", Quantity: 15})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if p.Before != 10 || p.After != -5 {
		t.Errorf("预览库存期望 10 → -5, 实际 %d → %d", p.Before, p.After)
	}
	if p.Allowed {
		t.Errorf("负库存预览不应允许确认")
	}

	// 正常出库
	p, err = svc.Preview(context.Background(), "tok", model.TxWithdrawal,
		&dto.TransactionRequest{ItemID: "5", Quantity: 5})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if p.After != 5 || !p.Allowed {
		t.Errorf("出库 5 预览期望 after=5 且允许, 实际 %+v", p)
	}

	// 入库
	p, err = svc.Preview(context.Background(), "tok", model.TxDeposit,
		&dto.TransactionRequest{ItemID: "5", Quantity: 3})
	if err != nil {
		t.Fatalf("Preview 应成功: %v", err)
	}
	if p.After != 13 || !p.Allowed {
		t.Errorf("入库 3 预览期望 after=13, 实际 %+v", p)
	}

	// 非法数量与不存在的物品
	if _, err := svc.Preview(context.Background(), "tok", model.TxDeposit,
		&dto.TransactionRequest{ItemID: "5", Quantity: 0}); !errors.Is(err, ErrInvalidQuantity) {
		t.Errorf("数量 0 期望 ErrInvalidQuantity, 实际 %v", err)
	}
	if _, err := svc.Preview(context.Background(), "tok", model.TxDeposit,
		&dto.TransactionRequest{ItemID: "999", Quantity: 1}); !errors.Is(err, ErrItemNotFound) {
		t.Errorf("不存在的物品期望 ErrItemNotFound, 实际 %v", err)
	}
}

func TestInventorySubmit(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewInventoryService(testConfig(), repo, zap.NewNop())

	m.inventory.items = []model.Item{{ID: 5, Name: "ยาแก้ปวด", CurrentStock: 10}}

	// 超量出库在提交时也被拦下
	err := svc.Submit(context.Background(), "tok", model.TxWithdrawal,
		&dto.TransactionRequest{ItemID: "5", Quantity: 15})
	if !errors.Is(err, ErrStockInsufficient) {
		t.Fatalf("超量出库期望 ErrStockInsufficient, 实际 %v", err)
	}
	if len(m.inventory.withdrawals) != 0 {
		t.Fatalf("被拦下的出库不应到达远端")
	}

	// 正常出库
	if err := svc.Submit(context.Background(), "tok", model.TxWithdrawal,
		&dto.TransactionRequest{ItemID: "5", Quantity: 4}); err != nil {
		t.Fatalf("出库应成功: %v", err)
	}
	if len(m.inventory.withdrawals) != 1 || m.inventory.withdrawals[0].Quantity != 4 {
		t.Fatalf("出库请求未透传, 实际 %+v", m.inventory.withdrawals)
	}

	// 入库
	reason := "ของที่ยึดมา"
	if err := svc.Submit(context.Background(), "tok", model.TxDeposit,
		&dto.TransactionRequest{ItemID: "5", Quantity: 7, Reason: &reason}); err != nil {
		t.Fatalf("入库应成功: %v", err)
	}
	if len(m.inventory.deposits) != 1 || m.inventory.deposits[0].Reason == nil {
		t.Fatalf("入库请求未透传 reason, 实际 %+v", m.inventory.deposits)
	}

	// 提交后库存以远端为准（mock 同步应用）
	items, _ := svc.ListItems(context.Background(), "tok")
	if items[0].CurrentStock != 13 {
		t.Errorf("提交后库存期望 13, 实际 %d", items[0].CurrentStock)
	}
}

func TestInventoryLedger(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewInventoryService(testConfig(), repo, zap.NewNop())

	m.inventory.items = []model.Item{
		{ID: 1, Name: "ผ้าพันแผล", CurrentStock: 3},
		{ID: 2, Name: "กระสุน", CurrentStock: 50},
	}
	m.inventory.txs = []model.Transaction{
		{ID: 1, TransactionType: model.TxDeposit, Quantity: 10, Item: model.ItemRef{ID: 2, Name: "กระสุน"}},
	}

	view, err := svc.Ledger(context.Background(), "tok", nil)
	if err != nil {
		t.Fatalf("Ledger 应成功: %v", err)
	}
	if len(view.Items) != 2 || len(view.Transactions) != 1 {
		t.Fatalf("仓库视图内容错误: %+v", view)
	}
	if view.LowStockThreshold != 10 {
		t.Errorf("低库存阈值期望 10, 实际 %d", view.LowStockThreshold)
	}

	m.inventory.err = errMockRemote
	if _, err := svc.Ledger(context.Background(), "tok", nil); err == nil {
		t.Errorf("远端失败应透传错误")
	}
}

func TestInventoryDailySummary(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewInventoryService(testConfig(), repo, zap.NewNop())

	m.inventory.summaries = []model.DailySummary{
		{Item: model.SummaryItem{ID: 1, Name: "กระสุน", CurrentStock: 60}, Receive: 20, Sell: 10, Net: 10},
	}

	rows, err := svc.DailySummary(context.Background(), "tok", "2026-08-30")
	if err != nil {
		t.Fatalf("DailySummary 应成功: %v", err)
	}
	if len(rows) != 1 || rows[0].Net != 10 {
		t.Fatalf("汇总行错误: %+v", rows)
	}

	if _, err := svc.DailySummary(context.Background(), "tok", ""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("空日期期望 ErrInvalidDate, 实际 %v", err)
	}
}
