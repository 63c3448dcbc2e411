package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// AdminHandler 管理面板 HTTP 处理器
// 一个页面四个分页：成员 / 公告 / 金库 / 设置
type AdminHandler struct {
	memberSvc  service.MemberService
	annSvc     service.AnnouncementService
	walletSvc  service.WalletService
	settingSvc service.SettingService
}

// NewAdminHandler 创建 AdminHandler
func NewAdminHandler(memberSvc service.MemberService, annSvc service.AnnouncementService, walletSvc service.WalletService, settingSvc service.SettingService) *AdminHandler {
	return &AdminHandler{memberSvc: memberSvc, annSvc: annSvc, walletSvc: walletSvc, settingSvc: settingSvc}
}

// Index 管理面板页
// GET /admin
func (h *AdminHandler) Index(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	tab := c.DefaultQuery("tab", "members")
	data := gin.H{
		"Session": sess,
		"Tab":     tab,
		"Msg":     c.Query("msg"),
		"PageErr": c.Query("err"),
		"ResetTo": c.Query("resetTo"),
	}

	ctx := c.Request.Context()
	switch tab {
	case "announcements":
		list, err := h.annSvc.List(ctx, sess.APIToken)
		if err != nil {
			data["Err"] = errMessage(err)
		}
		data["Announcements"] = list
	case "wallet":
		wallet, err := h.walletSvc.Get(ctx, sess.APIToken)
		if err != nil {
			data["Err"] = errMessage(err)
		}
		data["Wallet"] = wallet
	case "settings":
		settings, err := h.settingSvc.List(ctx, sess.APIToken)
		if err != nil {
			data["Err"] = errMessage(err)
		}
		data["Settings"] = settings
	default:
		data["Tab"] = "members"
		users, err := h.memberSvc.List(ctx, sess.APIToken)
		if err != nil {
			data["Err"] = errMessage(err)
		}
		q := c.Query("q")
		data["Q"] = q
		data["Users"] = filterMembers(users, q)
	}

	c.HTML(http.StatusOK, "admin.html", data)
}

// filterMembers 按名字或电话做大小写不敏感的子串过滤
func filterMembers(users []model.User, q string) []model.User {
	if q == "" {
		return users
	}
	q = strings.ToLower(q)
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.InGameName), q) ||
			strings.Contains(strings.ToLower(u.PhoneNumber), q) {
			out = append(out, u)
		}
	}
	return out
}

// ── 成员分页 ──

// CreateMember 创建成员
// POST /admin/members
func (h *AdminHandler) CreateMember(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.CreateMemberRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, "/admin", errors.New("ข้อมูลไม่ครบ รหัสผ่านต้องมีอย่างน้อย 6 ตัวอักษร"))
		return
	}

	if err := h.memberSvc.Create(c.Request.Context(), sess.APIToken, &req); err != nil {
		redirectWithErr(c, "/admin", err)
		return
	}
	redirectWithMsg(c, "/admin", "เพิ่มสมาชิกแล้ว")
}

// UpdateMember 编辑成员
// POST /admin/members/:id
func (h *AdminHandler) UpdateMember(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, "/admin", errors.New("สมาชิกไม่ถูกต้อง"))
		return
	}

	req := dto.UpdateMemberRequest{}
	if v := c.PostForm("inGameName"); v != "" {
		req.InGameName = &v
	}
	if v := c.PostForm("phoneNumber"); v != "" {
		req.PhoneNumber = &v
	}
	if v := c.PostForm("role"); v != "" {
		req.Role = &v
	}

	if err := h.memberSvc.Update(c.Request.Context(), sess.APIToken, id, sess.UserID, &req); err != nil {
		redirectWithErr(c, "/admin", err)
		return
	}
	redirectWithMsg(c, "/admin", "บันทึกสมาชิกแล้ว")
}

// ResetMemberPassword 重置成员密码
// POST /admin/members/:id/reset
func (h *AdminHandler) ResetMemberPassword(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, "/admin", errors.New("สมาชิกไม่ถูกต้อง"))
		return
	}

	result, err := h.memberSvc.ResetPassword(c.Request.Context(), sess.APIToken, id)
	if err != nil {
		redirectWithErr(c, "/admin", err)
		return
	}
	// 新密码只展示这一次
	c.Redirect(http.StatusFound, "/admin?resetTo="+result.ResetTo)
}

// DeleteMember 删除成员
// POST /admin/members/:id/delete
func (h *AdminHandler) DeleteMember(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, "/admin", errors.New("สมาชิกไม่ถูกต้อง"))
		return
	}

	if err := h.memberSvc.Delete(c.Request.Context(), sess.APIToken, id, sess.UserID); err != nil {
		redirectWithErr(c, "/admin", err)
		return
	}
	redirectWithMsg(c, "/admin", "ลบสมาชิกแล้ว")
}

// ── 公告分页 ──

const annTab = "/admin?tab=announcements"

// CreateAnnouncement 创建公告
// POST /admin/announcements
func (h *AdminHandler) CreateAnnouncement(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var form dto.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithErr(c, annTab, errors.New("กรุณากรอกข้อมูลประกาศให้ครบ"))
		return
	}

	if err := h.annSvc.Create(c.Request.Context(), sess.APIToken, &form); err != nil {
		redirectWithErr(c, annTab, err)
		return
	}
	redirectWithMsg(c, annTab, "สร้างประกาศแล้ว")
}

// UpdateAnnouncement 编辑公告
// POST /admin/announcements/:id
func (h *AdminHandler) UpdateAnnouncement(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, annTab, errors.New("ประกาศไม่ถูกต้อง"))
		return
	}

	var form dto.AnnouncementForm
	if err := c.ShouldBind(&form); err != nil {
		redirectWithErr(c, annTab, errors.New("กรุณากรอกข้อมูลประกาศให้ครบ"))
		return
	}

	if err := h.annSvc.Update(c.Request.Context(), sess.APIToken, id, &form); err != nil {
		redirectWithErr(c, annTab, err)
		return
	}
	redirectWithMsg(c, annTab, "บันทึกประกาศแล้ว")
}

// DeleteAnnouncement 删除公告
// POST /admin/announcements/:id/delete
func (h *AdminHandler) DeleteAnnouncement(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		redirectWithErr(c, annTab, errors.New("ประกาศไม่ถูกต้อง"))
		return
	}

	if err := h.annSvc.Delete(c.Request.Context(), sess.APIToken, id); err != nil {
		redirectWithErr(c, annTab, err)
		return
	}
	redirectWithMsg(c, annTab, "ลบประกาศแล้ว")
}

// ── 金库分页 ──

const walletTab = "/admin?tab=wallet"

// AddWalletTransaction 金库记账
// POST /admin/wallet
func (h *AdminHandler) AddWalletTransaction(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	var req dto.WalletTxRequest
	if err := c.ShouldBind(&req); err != nil {
		redirectWithErr(c, walletTab, service.ErrInvalidAmount)
		return
	}

	if err := h.walletSvc.AddTransaction(c.Request.Context(), sess.APIToken, &req); err != nil {
		redirectWithErr(c, walletTab, err)
		return
	}
	redirectWithMsg(c, walletTab, "บันทึกรายการกองกลางแล้ว")
}

// ── 设置分页 ──

const settingsTab = "/admin?tab=settings"

// PutSetting 更新设置项
// POST /admin/settings
func (h *AdminHandler) PutSetting(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	key := c.PostForm("key")
	value := c.PostForm("value")
	if key == "" {
		redirectWithErr(c, settingsTab, errors.New("กรุณาระบุคีย์การตั้งค่า"))
		return
	}

	if err := h.settingSvc.Put(c.Request.Context(), sess.APIToken, key, value); err != nil {
		redirectWithErr(c, settingsTab, err)
		return
	}
	redirectWithMsg(c, settingsTab, "บันทึกการตั้งค่าแล้ว")
}

// SaveRounds 保存场次配置
// POST /admin/settings/rounds
func (h *AdminHandler) SaveRounds(c *gin.Context) {
	sess, ok := MustGetSession(c)
	if !ok {
		return
	}

	rounds, err := h.settingSvc.ParseRoundsJSON(c.PostForm("rounds"))
	if err != nil {
		redirectWithErr(c, settingsTab, err)
		return
	}

	if err := h.settingSvc.SaveRounds(c.Request.Context(), sess.APIToken, rounds); err != nil {
		redirectWithErr(c, settingsTab, err)
		return
	}
	redirectWithMsg(c, settingsTab, "บันทึกรอบเช็คชื่อแล้ว")
}
