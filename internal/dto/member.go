package dto

// ── 成员管理 DTO ──

// CreateMemberRequest 创建成员表单
type CreateMemberRequest struct {
	InGameName  string `form:"inGameName"  json:"inGameName"  binding:"required,max=50"`
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" binding:"required,max=20"`
	Password    string `form:"password"    json:"password"    binding:"required,min=6"`
	Role        string `form:"role"        json:"role"        binding:"required,oneof=ADMIN USER"`
}

// UpdateMemberRequest 编辑成员表单
type UpdateMemberRequest struct {
	InGameName  *string `form:"inGameName"  json:"inGameName,omitempty"`
	PhoneNumber *string `form:"phoneNumber" json:"phoneNumber,omitempty"`
	Role        *string `form:"role"        json:"role,omitempty" binding:"omitempty,oneof=ADMIN USER"`
}

// ResetPasswordResult 重置密码响应
type ResetPasswordResult struct {
	ResetTo string `json:"resetTo"`
}
