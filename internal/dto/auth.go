package dto

import "github.com/Supakit1111/FiveM-Wab/internal/model"

// ── 认证模块 DTO ──

// LoginRequest 登录表单
type LoginRequest struct {
	PhoneNumber string `form:"phoneNumber" json:"phoneNumber" binding:"required"`
	Password    string `form:"password"    json:"password"    binding:"required"`
}

// LoginResult 远端 API 登录响应
type LoginResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}
