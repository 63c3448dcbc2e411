package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
	"github.com/Supakit1111/FiveM-Wab/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	cfg       *config.Config
	attendSvc service.AttendanceService
	exportSvc service.ExportService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(cfg *config.Config, attendSvc service.AttendanceService, exportSvc service.ExportService) *AttendanceHandler {
	return &AttendanceHandler{cfg: cfg, attendSvc: attendSvc, exportSvc: exportSvc}
}

// sheetQuery 解析窗口查询参数
// end=YYYY-MM-DD 为窗口末日；nav=prev|next|today 在其上平移
func (h *AttendanceHandler) sheetQuery(c *gin.Context) *dto.SheetQuery {
	loc := h.attendSvc.Location()
	days := h.cfg.Attendance.DaysToShow

	end := time.Now().In(loc)
	if raw := c.Query("end"); raw != "" {
		if parsed, err := time.ParseInLocation("2006-01-02", raw, loc); err == nil {
			end = parsed
		}
	}

	win := service.Window{End: end, Days: days}
	switch c.Query("nav") {
	case "prev":
		win = win.Prev()
	case "next":
		win = win.Next()
	case "today":
		win.End = time.Now().In(loc)
	}

	return &dto.SheetQuery{EndDate: win.End, Days: days, Query: c.Query("q")}
}

// Sheet 考勤表页
// GET /attendance
func (h *AttendanceHandler) Sheet(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	q := h.sheetQuery(c)
	sheet, err := h.attendSvc.BuildSheet(c.Request.Context(), sess.APIToken, q)
	if err != nil {
		c.HTML(http.StatusOK, "attendance.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
			"Query":   q,
		})
		return
	}

	c.HTML(http.StatusOK, "attendance.html", gin.H{
		"Session": sess,
		"Sheet":   sheet,
		"Query":   q,
		"EndKey":  q.EndDate.Format("2006-01-02"),
	})
}

// MySheet 我的考勤页
// GET /attendance/me
func (h *AttendanceHandler) MySheet(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	q := h.sheetQuery(c)
	self := model.User{
		ID:          sess.UserID,
		InGameName:  sess.UserName,
		PhoneNumber: sess.Phone,
		Role:        model.Role(sess.Role),
	}
	sheet, err := h.attendSvc.BuildMySheet(c.Request.Context(), sess.APIToken, self, q)
	if err != nil {
		c.HTML(http.StatusOK, "attendance_me.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
			"Query":   q,
		})
		return
	}

	c.HTML(http.StatusOK, "attendance_me.html", gin.H{
		"Session": sess,
		"Sheet":   sheet,
		"Query":   q,
		"EndKey":  q.EndDate.Format("2006-01-02"),
	})
}

// Manage 点名管理页（管理员）
// GET /attendance/manage
func (h *AttendanceHandler) Manage(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	roster, err := h.attendSvc.Roster(c.Request.Context(), sess.APIToken, c.Query("date"))
	if err != nil {
		c.HTML(http.StatusOK, "attendance_manage.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "attendance_manage.html", gin.H{
		"Session": sess,
		"Roster":  roster,
		"Msg":     c.Query("msg"),
	})
}

// Checkin 点名写入（管理员，页面内联调用）
// POST /api/attendance/checkin
func (h *AttendanceHandler) Checkin(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "พารามิเตอร์ไม่ถูกต้อง")
		return
	}

	if err := h.attendSvc.SetStatus(c.Request.Context(), sess.APIToken, &req); err != nil {
		if errors.Is(err, service.ErrInvalidStatus) || errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, 10001, errMessage(err))
			return
		}
		response.Error(c, http.StatusBadGateway, 20001, errMessage(err))
		return
	}

	response.OK(c, nil)
}

// Stats 考勤统计页
// GET /attendance/stats
func (h *AttendanceHandler) Stats(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	view, err := h.attendSvc.Statistics(c.Request.Context(), sess.APIToken,
		c.Query("start"), c.Query("end"), c.Query("q"))
	if err != nil {
		c.HTML(http.StatusOK, "attendance_stats.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "attendance_stats.html", gin.H{
		"Session": sess,
		"View":    view,
	})
}

// ExportXLSX 导出考勤表 Excel（管理员）
// GET /attendance/export.xlsx
func (h *AttendanceHandler) ExportXLSX(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	q := h.sheetQuery(c)
	buf, filename, err := h.exportSvc.ExportSheet(c.Request.Context(), sess.APIToken, q)
	if err != nil {
		redirectWithErr(c, "/attendance", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

// RoundsICS 场次配置日历订阅
// GET /attendance/rounds.ics
func (h *AttendanceHandler) RoundsICS(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	ical, err := h.exportSvc.RoundsCalendar(c.Request.Context(), sess.APIToken)
	if err != nil {
		response.Error(c, http.StatusBadGateway, 20001, errMessage(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="attendance_rounds.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ical))
}
