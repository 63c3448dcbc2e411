package model

import "time"

// WalletTxType 帮派金库流水类型
type WalletTxType string

const (
	WalletIncome  WalletTxType = "INCOME"
	WalletExpense WalletTxType = "EXPENSE"
)

// WalletTransaction 金库流水
type WalletTransaction struct {
	ID          int64        `json:"id"`
	Type        WalletTxType `json:"type"`
	Amount      int64        `json:"amount"`
	Description string       `json:"description"`
	PerformedBy string       `json:"performedBy"`
	CreatedAt   time.Time    `json:"createdAt"`
}

// Wallet 帮派金库（共享账本，与成员个人余额无关）
type Wallet struct {
	Balance      int64               `json:"balance"`
	Transactions []WalletTransaction `json:"transactions"`
}
