package repository

import "github.com/Supakit1111/FiveM-Wab/pkg/httpapi"

// Repository 所有远端数据访问接口的聚合入口
// 控制台没有本地数据库；每个接口背后都是对帮派后端 API 的 HTTP 调用
// token 为当前会话持有的 API Token，由 Service 层从会话中取出传入
type Repository struct {
	Auth         AuthRepository
	Profile      ProfileRepository
	Member       MemberRepository
	Attendance   AttendanceRepository
	Inventory    InventoryRepository
	Announcement AnnouncementRepository
	Wallet       WalletRepository
	Setting      SettingRepository
	AuditLog     AuditLogRepository
	Dashboard    DashboardRepository
	Presence     PresenceRepository
}

// NewRepository 创建 Repository 聚合
func NewRepository(api *httpapi.Client) *Repository {
	return &Repository{
		Auth:         NewAuthRepo(api),
		Profile:      NewProfileRepo(api),
		Member:       NewMemberRepo(api),
		Attendance:   NewAttendanceRepo(api),
		Inventory:    NewInventoryRepo(api),
		Announcement: NewAnnouncementRepo(api),
		Wallet:       NewWalletRepo(api),
		Setting:      NewSettingRepo(api),
		AuditLog:     NewAuditLogRepo(api),
		Dashboard:    NewDashboardRepo(api),
		Presence:     NewPresenceRepo(api),
	}
}
