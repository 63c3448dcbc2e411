package router

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/api/handler"
	"github.com/Supakit1111/FiveM-Wab/internal/api/middleware"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, svc *service.Service, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())

	// ── 模板与静态资源 ──
	r.SetFuncMap(template.FuncMap{
		"statusLabel":        statusLabel,
		"add":                func(a, b int) int { return a + b },
		"sub":                func(a, b int) int { return a - b },
		"presenceIntervalMs": func() int64 { return presenceIntervalMs(cfg) },
	})
	r.LoadHTMLGlob("web/templates/*.html")
	r.Static("/static", "web/static")

	// ── 健康检查 ──
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 认证（无需会话） ──
	r.GET("/login", h.Auth.LoginPage)
	r.POST("/login", h.Auth.Login)

	adminOnly := middleware.RoleAuth(string(model.RoleAdmin))

	// ── 需要会话的页面 ──
	authorized := r.Group("")
	authorized.Use(middleware.SessionAuth(svc.Auth, cfg.Session.CookieName))
	{
		authorized.POST("/logout", h.Auth.Logout)
		authorized.GET("/", h.Dashboard.Index)

		// 考勤
		attendance := authorized.Group("/attendance")
		{
			attendance.GET("", adminOnly, h.Attendance.Sheet)
			attendance.GET("/me", h.Attendance.MySheet)
			attendance.GET("/manage", adminOnly, h.Attendance.Manage)
			attendance.GET("/stats", adminOnly, h.Attendance.Stats)
			attendance.GET("/export.xlsx", adminOnly, h.Attendance.ExportXLSX)
			attendance.GET("/rounds.ics", h.Attendance.RoundsICS)
		}

		// 仓库
		inventory := authorized.Group("/inventory")
		{
			inventory.GET("", h.Inventory.Ledger)
			inventory.GET("/me", h.Inventory.MyTransactions)
			inventory.GET("/summary", adminOnly, h.Inventory.Summary)
			inventory.POST("/items", adminOnly, h.Inventory.CreateItem)
			inventory.POST("/items/:id", adminOnly, h.Inventory.UpdateItem)
			inventory.POST("/items/:id/delete", adminOnly, h.Inventory.DeleteItem)
			inventory.POST("/preview", h.Inventory.Preview)
			inventory.POST("/submit", h.Inventory.Submit)
		}

		// 管理面板
		admin := authorized.Group("/admin", adminOnly)
		{
			admin.GET("", h.Admin.Index)
			admin.POST("/members", h.Admin.CreateMember)
			admin.POST("/members/:id", h.Admin.UpdateMember)
			admin.POST("/members/:id/reset", h.Admin.ResetMemberPassword)
			admin.POST("/members/:id/delete", h.Admin.DeleteMember)
			admin.POST("/announcements", h.Admin.CreateAnnouncement)
			admin.POST("/announcements/:id", h.Admin.UpdateAnnouncement)
			admin.POST("/announcements/:id/delete", h.Admin.DeleteAnnouncement)
			admin.POST("/wallet", h.Admin.AddWalletTransaction)
			admin.POST("/settings", h.Admin.PutSetting)
			admin.POST("/settings/rounds", h.Admin.SaveRounds)
		}

		// 审计日志
		authorized.GET("/logs", adminOnly, h.Logs.Index)

		// 个人账户
		authorized.GET("/account", h.Account.Index)
		authorized.POST("/account/name", h.Account.UpdateName)
		authorized.POST("/account/password", h.Account.ChangePassword)

		// 页面内联 JSON 接口
		api := authorized.Group("/api")
		{
			api.POST("/attendance/checkin", adminOnly, h.Attendance.Checkin)
			api.POST("/presence/heartbeat", h.Presence.Heartbeat)
		}
	}

	return r
}

// presenceIntervalMs 页面心跳轮询间隔（毫秒），配置缺省或非法时取 5 秒
func presenceIntervalMs(cfg *config.Config) int64 {
	if cfg.Presence.Interval <= 0 {
		return 5000
	}
	return cfg.Presence.Interval.Milliseconds()
}

// statusLabel 签到状态的界面文案
func statusLabel(status model.AttendanceStatus) string {
	switch status {
	case model.StatusPresent:
		return "มา"
	case model.StatusLate:
		return "สาย"
	case model.StatusAbsent:
		return "ขาด"
	default:
		return "-"
	}
}
