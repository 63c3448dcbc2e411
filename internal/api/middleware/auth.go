package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/service"
	"github.com/Supakit1111/FiveM-Wab/pkg/response"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

const sessionKey = "console_session"

// SessionAuth 会话认证中间件
// 从 Cookie 取会话 JWT 并换回完整会话；未登录时页面请求跳转登录页，
// 接口请求（/api 前缀）返回 401
func SessionAuth(authSvc service.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookieToken, err := c.Cookie(cookieName)
		if err != nil || cookieToken == "" {
			rejectUnauthenticated(c)
			return
		}

		sess, err := authSvc.Current(c.Request.Context(), cookieToken)
		if err != nil {
			rejectUnauthenticated(c)
			return
		}

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func rejectUnauthenticated(c *gin.Context) {
	if strings.HasPrefix(c.Request.URL.Path, "/api/") {
		response.Unauthorized(c, 10002, "กรุณาเข้าสู่ระบบ")
	} else {
		c.Redirect(http.StatusFound, "/login")
	}
	c.Abort()
}

// RoleAuth 角色权限中间件
// 检查会话角色是否在允许列表中；页面请求渲染 403 页
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := GetSession(c)
		if !ok {
			rejectUnauthenticated(c)
			return
		}

		for _, role := range allowedRoles {
			if sess.Role == role {
				c.Next()
				return
			}
		}

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Forbidden(c, 10003, "ไม่มีสิทธิ์เข้าถึง")
		} else {
			c.HTML(http.StatusForbidden, "error.html", gin.H{
				"Title":   "ไม่มีสิทธิ์เข้าถึง",
				"Message": "หน้านี้สำหรับแอดมินเท่านั้น",
				"Session": sess,
			})
		}
		c.Abort()
	}
}

// GetSession 从 gin 上下文取出当前会话
func GetSession(c *gin.Context) (*session.Session, bool) {
	v, exists := c.Get(sessionKey)
	if !exists {
		return nil, false
	}
	sess, ok := v.(*session.Session)
	return sess, ok
}
