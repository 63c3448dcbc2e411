package dto

import "github.com/Supakit1111/FiveM-Wab/internal/model"

// ── 审计日志 DTO ──

// LogQuery 日志列表查询
type LogQuery struct {
	Page   int    // 从 1 开始
	Size   int    // 每页条数
	Filter string // 命名过滤组，见 service.LogFilterGroups
}

// LogPage 日志列表分页结果
// 服务端分页协议为 take/skip/hasMore，控制台据此估算总页数
type LogPage struct {
	Entries      []model.AuditLog
	Page         int
	Size         int
	TotalPages   int
	TotalRecords int
	HasMore      bool
}

// LogListResult 远端 /logs 响应
type LogListResult struct {
	Data []model.AuditLog `json:"data"`
	Page LogPageMeta      `json:"page"`
}

// LogPageMeta 远端分页元数据
type LogPageMeta struct {
	Take    int  `json:"take"`
	Skip    int  `json:"skip"`
	HasMore bool `json:"hasMore"`
}
