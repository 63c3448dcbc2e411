package session

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("会话不存在或已过期")

// Session 控制台会话
// 对应浏览器端原本持久化的内容：远端 API Token + 登录用户资料
// 登出时两者一并销毁
type Session struct {
	ID        string    `json:"id"`
	APIToken  string    `json:"api_token"`
	UserID    int64     `json:"user_id"`
	UserName  string    `json:"user_name"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store 会话存储接口
// 生产环境使用 Redis；Redis 不可用时降级为进程内存储
type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
	Close() error
}
