package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// DashboardHandler 仪表盘页面处理器
type DashboardHandler struct {
	dashSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc}
}

// Index 仪表盘首页
// GET /
func (h *DashboardHandler) Index(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	view := h.dashSvc.Overview(c.Request.Context(), sess.APIToken, page)

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Session": sess,
		"View":    view,
		"Page":    page,
	})
}
