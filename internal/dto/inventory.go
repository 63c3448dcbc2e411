package dto

import "github.com/Supakit1111/FiveM-Wab/internal/model"

// ── 仓库模块 DTO ──

// ItemForm 物品创建/编辑表单
type ItemForm struct {
	Name         string `form:"name"         json:"name"         binding:"required,max=100"`
	CurrentStock int    `form:"currentStock" json:"currentStock" binding:"min=0"`
}

// TransactionRequest 出入库请求
type TransactionRequest struct {
	ItemID   string  `form:"itemId"   json:"itemId"   binding:"required"`
	Quantity int     `form:"quantity" json:"quantity" binding:"required,gt=0"`
	Reason   *string `form:"reason"   json:"reason,omitempty"`
}

// TransactionPreview 出入库确认前的库存预览
// Allowed 为 false 时确认按钮必须禁用（出库导致负库存）
// 该守卫仅为客户端体验，服务端仍是最终裁决方
type TransactionPreview struct {
	Item     model.Item
	Type     model.TransactionType
	Quantity int
	Reason   *string
	Before   int
	After    int
	Allowed  bool
}

// HistoryFilter 流水查询过滤条件
// 作为查询参数传给服务端，由服务端返回已过滤的结果
type HistoryFilter struct {
	ItemID string `form:"itemId"`
	Type   string `form:"type" binding:"omitempty,oneof=DEPOSIT WITHDRAWAL"`
}

// LedgerView 仓库页视图
type LedgerView struct {
	Items             []model.Item
	Transactions      []model.Transaction
	LowStockThreshold int
}
