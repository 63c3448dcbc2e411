package dto

// ── 帮派金库 DTO ──

// WalletTxRequest 金库记账表单
type WalletTxRequest struct {
	Type        string `form:"type"        json:"type"        binding:"required,oneof=INCOME EXPENSE"`
	Amount      int64  `form:"amount"      json:"amount"      binding:"required,gt=0"`
	Description string `form:"description" json:"description" binding:"required,max=200"`
}
