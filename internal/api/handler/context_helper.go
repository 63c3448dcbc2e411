package handler

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Supakit1111/FiveM-Wab/internal/api/middleware"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
	"github.com/Supakit1111/FiveM-Wab/pkg/response"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

// MustGetSession 从上下文提取当前会话
// 认证中间件未注入时写入 401 并返回 false，调用方应直接 return
func MustGetSession(c *gin.Context) (*session.Session, bool) {
	sess, ok := middleware.GetSession(c)
	if !ok {
		if c.Request.Header.Get("Accept") == "application/json" {
			response.Unauthorized(c, 10002, "กรุณาเข้าสู่ระบบ")
		} else {
			c.Redirect(http.StatusFound, "/login")
		}
		c.Abort()
		return nil, false
	}
	return sess, true
}

// errMessage 把错误折叠成可展示的文案
// 业务错误直接展示；远端 API 错误取归一化后的 message
func errMessage(err error) string {
	if apiErr, ok := httpapi.AsError(err); ok {
		return apiErr.Message
	}
	return err.Error()
}

// redirectWithErr 重定向并在查询串中携带错误文案
func redirectWithErr(c *gin.Context, path string, err error) {
	c.Redirect(http.StatusFound, path+"?err="+url.QueryEscape(errMessage(err)))
}

// redirectWithMsg 重定向并在查询串中携带成功文案
func redirectWithMsg(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusFound, path+"?msg="+url.QueryEscape(msg))
}
