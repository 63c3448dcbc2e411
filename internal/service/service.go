package service

import (
	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
	"github.com/Supakit1111/FiveM-Wab/pkg/jwt"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth         AuthService
	Profile      ProfileService
	Attendance   AttendanceService
	Inventory    InventoryService
	Dashboard    DashboardService
	Member       MemberService
	Announcement AnnouncementService
	Wallet       WalletService
	Setting      SettingService
	AuditLog     AuditLogService
	Presence     PresenceService
	Export       ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	store session.Store,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) *Service {
	attendance := NewAttendanceService(cfg, repo, logger)

	return &Service{
		Auth:         NewAuthService(cfg, repo, store, jwtMgr, logger),
		Profile:      NewProfileService(cfg, repo, store, logger),
		Attendance:   attendance,
		Inventory:    NewInventoryService(cfg, repo, logger),
		Dashboard:    NewDashboardService(repo, logger),
		Member:       NewMemberService(repo, logger),
		Announcement: NewAnnouncementService(repo, logger),
		Wallet:       NewWalletService(repo, logger),
		Setting:      NewSettingService(repo, logger),
		AuditLog:     NewAuditLogService(repo, logger),
		Presence:     NewPresenceService(repo, logger),
		Export:       NewExportService(cfg, attendance, logger),
	}
}
