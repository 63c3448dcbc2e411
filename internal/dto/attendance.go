package dto

import (
	"time"

	"github.com/Supakit1111/FiveM-Wab/internal/model"
)

// ── 考勤模块 DTO ──

// SheetQuery 考勤表查询参数
type SheetQuery struct {
	EndDate time.Time // 窗口末日（含）
	Days    int       // 窗口天数
	Query   string    // 成员搜索关键字（名称或电话，子串匹配，忽略大小写）
}

// Sheet 考勤表视图
// 行为成员、列为日期，每格按场次渲染标记点，底部为逐日到场人数
type Sheet struct {
	Days   []SheetDay
	Rounds []model.Round
	Rows   []SheetRow
	Total  int // 过滤后的成员数
}

// SheetDay 考勤表的一列（一个日历日）
type SheetDay struct {
	Key     string    // "2006-01-02"
	Date    time.Time
	IsToday bool
	Present int // 当日到场人数（按成员去重）
}

// SheetRow 考勤表的一行（一个成员）
type SheetRow struct {
	User  model.User
	Cells []SheetCell
}

// SheetCell 一个 (成员, 日期) 单元格
type SheetCell struct {
	DayKey string
	Marks  []RoundMark
}

// RoundMark 单元格内一个场次的标记
// Filled 为 false 表示该槽位无匹配记录，渲染未填充点
type RoundMark struct {
	Round       model.Round
	Filled      bool
	Status      model.AttendanceStatus
	CheckInTime time.Time
}

// Roster 指定日期的签到名册（管理员点名视图）
type Roster struct {
	Date   string
	Rounds []model.Round
	Users  []model.CheckinUser
}

// CheckinRequest 管理员点名请求
type CheckinRequest struct {
	UserID  int64  `form:"userId"  json:"userId"  binding:"required"`
	Session int    `form:"session" json:"session" binding:"required"`
	Status  string `form:"status"  json:"status"  binding:"required,oneof=O L A -"`
	Date    string `form:"date"    json:"date"    binding:"required"`
}

// StatsView 考勤统计视图
type StatsView struct {
	StartDate string
	EndDate   string
	Query     string
	Rows      []model.UserStats
	Totals    model.StatsCounters
}
