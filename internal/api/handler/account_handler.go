package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// AccountHandler 个人账户页面处理器
type AccountHandler struct {
	profileSvc service.ProfileService
}

// NewAccountHandler 创建 AccountHandler
func NewAccountHandler(profileSvc service.ProfileService) *AccountHandler {
	return &AccountHandler{profileSvc: profileSvc}
}

// Index 账户页
// GET /account
func (h *AccountHandler) Index(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	me, err := h.profileSvc.Me(c.Request.Context(), sess.APIToken)
	if err != nil {
		c.HTML(http.StatusOK, "account.html", gin.H{
			"Session": sess,
			"Err":     errMessage(err),
		})
		return
	}

	c.HTML(http.StatusOK, "account.html", gin.H{
		"Session": sess,
		"Me":      me,
		"Msg":     c.Query("msg"),
		"PageErr": c.Query("err"),
	})
}

// UpdateName 修改游戏内名称
// POST /account/name
func (h *AccountHandler) UpdateName(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.UpdateNameRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, "/account", errors.New("กรุณากรอกชื่อในเกม"))
		return
	}

	if err := h.profileSvc.UpdateName(c.Request.Context(), sess, &req); err != nil {
		redirectWithErr(c, "/account", err)
		return
	}
	redirectWithMsg(c, "/account", "เปลี่ยนชื่อในเกมแล้ว")
}

// ChangePassword 修改密码
// POST /account/password
func (h *AccountHandler) ChangePassword(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, "/account", errors.New("กรุณากรอกรหัสผ่านให้ครบทุกช่อง"))
		return
	}

	if err := h.profileSvc.ChangePassword(c.Request.Context(), sess.APIToken, &req); err != nil {
		redirectWithErr(c, "/account", err)
		return
	}
	redirectWithMsg(c, "/account", "เปลี่ยนรหัสผ่านแล้ว")
}
