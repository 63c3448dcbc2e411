package handler

import (
	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Dashboard  *DashboardHandler
	Attendance *AttendanceHandler
	Inventory  *InventoryHandler
	Admin      *AdminHandler
	Logs       *LogsHandler
	Account    *AccountHandler
	Presence   *PresenceHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(cfg *config.Config, svc *service.Service) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(cfg, svc.Auth),
		Dashboard:  NewDashboardHandler(svc.Dashboard),
		Attendance: NewAttendanceHandler(cfg, svc.Attendance, svc.Export),
		Inventory:  NewInventoryHandler(svc.Inventory),
		Admin:      NewAdminHandler(svc.Member, svc.Announcement, svc.Wallet, svc.Setting),
		Logs:       NewLogsHandler(svc.AuditLog),
		Account:    NewAccountHandler(svc.Profile),
		Presence:   NewPresenceHandler(svc.Presence),
	}
}
