package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/api/middleware"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/service"
)

// AuthHandler 认证模块 HTTP 处理器
type AuthHandler struct {
	cfg     *config.Config
	authSvc service.AuthService
}

// NewAuthHandler 创建 AuthHandler
func NewAuthHandler(cfg *config.Config, authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, authSvc: authSvc}
}

// LoginPage 登录页
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	// 已登录直接回首页
	if cookieToken, err := c.Cookie(h.cfg.Session.CookieName); err == nil && cookieToken != "" {
		if _, err := h.authSvc.Current(c.Request.Context(), cookieToken); err == nil {
			c.Redirect(http.StatusFound, "/")
			return
		}
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Err": c.Query("err"),
	})
}

// Login 提交登录表单
// POST /login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.HTML(http.StatusBadRequest, "login.html", gin.H{
			"Err": "กรุณากรอกเบอร์โทรและรหัสผ่าน",
		})
		return
	}

	cookieToken, _, err := h.authSvc.Login(c.Request.Context(), &req)
	if err != nil {
		msg := "เข้าสู่ระบบไม่สำเร็จ กรุณาลองใหม่"
		if errors.Is(err, service.ErrLoginFailed) {
			msg = err.Error()
		}
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Err":         msg,
			"PhoneNumber": req.PhoneNumber,
		})
		return
	}

	h.setSessionCookie(c, cookieToken, int(h.cfg.Session.TTL.Seconds()))
	c.Redirect(http.StatusFound, "/")
}

// Logout 登出
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sess, ok := middleware.GetSession(c); ok {
		_ = h.authSvc.Logout(c.Request.Context(), sess.ID)
	}
	h.setSessionCookie(c, "", -1)
	c.Redirect(http.StatusFound, "/login")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.Session.CookieName, value, maxAge, "/", "", h.cfg.Session.CookieSecure, true)
}
