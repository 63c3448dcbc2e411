package dto

import "github.com/Supakit1111/FiveM-Wab/internal/model"

// ── 个人账户 DTO ──

// UpdateNameRequest 修改游戏内名称表单
type UpdateNameRequest struct {
	InGameName string `form:"inGameName" json:"inGameName" binding:"required,max=50"`
}

// ChangePasswordRequest 修改密码表单
// ConfirmPassword 仅在控制台侧校验，不发给远端
type ChangePasswordRequest struct {
	CurrentPassword string `form:"currentPassword" json:"currentPassword" binding:"required"`
	NewPassword     string `form:"newPassword"     json:"newPassword"     binding:"required"`
	ConfirmPassword string `form:"confirmPassword" json:"-"               binding:"required"`
}

// ── 仪表盘 DTO ──

// CheckinStatusResult 远端 /dashboard/checkin-status 响应
type CheckinStatusResult struct {
	Users        []model.CheckinUser `json:"users"`
	Pagination   *PageMeta           `json:"pagination,omitempty"`
	RoundsConfig []model.Round       `json:"roundsConfig,omitempty"`
}

// PageMeta 分页元数据
type PageMeta struct {
	Page       int `json:"page"`
	TotalPages int `json:"totalPages"`
}

// DashboardView 仪表盘页面视图
// 各数据源独立拉取、独立失败；失败的分区保留错误信息而非整页空白
type DashboardView struct {
	Stats      *model.DashboardStats
	StatsErr   string
	Active     []model.Announcement
	ActiveErr  string
	Checkin    *CheckinStatusResult
	CheckinErr string
	Activities []model.Activity
	ActErr     string
}
