package model

// 常用设置键
const (
	SettingAttendanceRounds   = "attendance_rounds"   // 场次配置（JSON 编码的 Round 列表）
	SettingAttendanceDeadline = "attendance_deadline" // 当日签到截止时间 "HH:MM"
)

// Setting 全局设置项
type Setting struct {
	ID          int64  `json:"id"`
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description"`
}
