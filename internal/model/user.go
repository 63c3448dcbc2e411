package model

import "time"

// Role 成员角色
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// User 帮派成员
// 服务端实体的只读副本；phoneNumber 同时作为登录账号
type User struct {
	ID              int64     `json:"id"`
	InGameName      string    `json:"inGameName"`
	PhoneNumber     string    `json:"phoneNumber"`
	Role            Role      `json:"role"`
	Money           int64     `json:"money"`
	ProfileImageURL *string   `json:"profileImageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

// IsAdmin 是否为管理员
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
