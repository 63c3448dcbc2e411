package model

import "time"

// AttendanceStatus 签到状态标记
// 与后端 API 的单字母约定一致
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "O" // 到场
	StatusLate    AttendanceStatus = "L" // 迟到
	StatusAbsent  AttendanceStatus = "A" // 缺席
	StatusCleared AttendanceStatus = "-" // 清除标记
)

// Round 签到场次配置
// 全局共享的小型有序列表，由管理员设置面板维护
// 存放在设置键 attendance_rounds 中（JSON 编码）
type Round struct {
	ID        int    `json:"id"`
	Name      string `json:"name,omitempty"`
	StartTime string `json:"startTime,omitempty"` // "20:00"
	EndTime   string `json:"endTime,omitempty"`   // "21:00"
}

// AttendanceLog 签到记录
// 概念上每个 (成员, 日期, 场次) 只有一个槽位，但客户端不得假设服务端唯一性
type AttendanceLog struct {
	ID          int64            `json:"id"`
	UserID      int64            `json:"userId,omitempty"` // /me 范围的端点可能不返回
	CheckInTime time.Time        `json:"checkInTime"`
	Status      AttendanceStatus `json:"status"`
	Session     int              `json:"session"`
	User        *LogUser         `json:"user,omitempty"`
}

// LogUser 签到记录内嵌的成员摘要
type LogUser struct {
	ID          int64  `json:"id"`
	InGameName  string `json:"inGameName"`
	PhoneNumber string `json:"phoneNumber"`
}

// UserStats 成员考勤统计（服务端聚合，控制台仅渲染）
type UserStats struct {
	User  StatsUser     `json:"user"`
	Stats StatsCounters `json:"stats"`
}

// StatsUser 统计行的成员信息
type StatsUser struct {
	ID              int64   `json:"id"`
	InGameName      string  `json:"inGameName"`
	PhoneNumber     string  `json:"phoneNumber"`
	Role            Role    `json:"role"`
	ProfileImageURL *string `json:"profileImageUrl,omitempty"`
}

// StatsCounters 统计计数
type StatsCounters struct {
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	Total   int `json:"total"`
}
