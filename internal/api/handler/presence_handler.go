package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
	"github.com/Supakit1111/FiveM-Wab/pkg/response"
)

// PresenceHandler 在线状态 HTTP 处理器
type PresenceHandler struct {
	presenceSvc service.PresenceService
}

// NewPresenceHandler 创建 PresenceHandler
func NewPresenceHandler(presenceSvc service.PresenceService) *PresenceHandler {
	return &PresenceHandler{presenceSvc: presenceSvc}
}

// Heartbeat 页面定时上报在线并取回观看者列表
// POST /api/presence/heartbeat
func (h *PresenceHandler) Heartbeat(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	viewer := model.Viewer{
		ID:   strconv.FormatInt(sess.UserID, 10),
		Name: sess.UserName,
		Role: sess.Role,
	}

	viewers := h.presenceSvc.Heartbeat(c.Request.Context(), sess.APIToken, viewer)
	response.OK(c, viewers)
}
