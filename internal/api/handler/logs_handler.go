package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// LogsHandler 审计日志页面处理器
type LogsHandler struct {
	logSvc service.AuditLogService
}

// NewLogsHandler 创建 LogsHandler
func NewLogsHandler(logSvc service.AuditLogService) *LogsHandler {
	return &LogsHandler{logSvc: logSvc}
}

// logPageSizes 页面可选的每页条数
var logPageSizes = []int{5, 10, 15}

// Index 日志列表页（管理员）
// GET /logs
func (h *LogsHandler) Index(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))
	filter := c.Query("filter")

	view, err := h.logSvc.List(c.Request.Context(), sess.APIToken,
		&dto.LogQuery{Page: page, Size: size, Filter: filter})
	if err != nil {
		c.HTML(http.StatusOK, "logs.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
			"Filter":  filter,
			"Sizes":   logPageSizes,
		})
		return
	}

	c.HTML(http.StatusOK, "logs.html", gin.H{
		"Session": sess,
		"View":    view,
		"Filter":  filter,
		"Sizes":   logPageSizes,
	})
}
