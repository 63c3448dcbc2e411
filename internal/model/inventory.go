package model

import "time"

// TransactionType 库存流水类型
type TransactionType string

const (
	TxDeposit    TransactionType = "DEPOSIT"    // 入库，增加库存
	TxWithdrawal TransactionType = "WITHDRAWAL" // 出库，减少库存
)

// Item 仓库物品
// currentStock 预期非负；出现负数时仅作展示告警，不由控制台强制
type Item struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	CurrentStock int       `json:"currentStock"`
	LastUpdated  time.Time `json:"lastUpdated"`
}

// Transaction 库存流水记录
type Transaction struct {
	ID              int64           `json:"id"`
	TransactionType TransactionType `json:"transactionType"`
	Quantity        int             `json:"quantity"`
	Reason          *string         `json:"reason,omitempty"`
	Timestamp       time.Time       `json:"timestamp"`
	Item            ItemRef         `json:"item"`
	User            *TxUser         `json:"user,omitempty"`
}

// ItemRef 流水内嵌的物品摘要
type ItemRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// TxUser 流水内嵌的操作人摘要
type TxUser struct {
	ID         int64  `json:"id"`
	InGameName string `json:"inGameName"`
}

// DailySummary 单日物品出入库汇总（服务端聚合，控制台仅渲染）
type DailySummary struct {
	Item    SummaryItem `json:"item"`
	Receive int         `json:"receive"`
	Sell    int         `json:"sell"`
	Net     int         `json:"net"`
}

// SummaryItem 汇总行的物品信息
type SummaryItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CurrentStock int    `json:"currentStock"`
}
