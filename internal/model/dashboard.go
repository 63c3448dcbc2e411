package model

// DashboardStats 仪表盘统计（服务端聚合）
type DashboardStats struct {
	UsersTotal          int     `json:"usersTotal"`
	CheckinsToday       int     `json:"checkinsToday"`
	TransactionsToday   int     `json:"transactionsToday"`
	ActiveAnnouncements int     `json:"activeAnnouncements"`
	UsersWithoutCheckin int     `json:"usersWithoutCheckin"`
	CheckinRate         float64 `json:"checkinRate"`
	AttendanceDeadline  string  `json:"attendanceDeadline,omitempty"` // "HH:MM"
	GangBalance         *int64  `json:"gangBalance,omitempty"`
}

// CheckinUser 当日签到名册中的成员
type CheckinUser struct {
	ID              int64                         `json:"id"`
	InGameName      string                        `json:"inGameName"`
	PhoneNumber     string                        `json:"phoneNumber"`
	Role            Role                          `json:"role"`
	ProfileImageURL *string                       `json:"profileImageUrl,omitempty"`
	HasCheckedIn    bool                          `json:"hasCheckedIn"`
	CheckInTime     *string                       `json:"checkInTime,omitempty"`
	Sessions        map[string]*SessionCheckState `json:"sessions,omitempty"` // key 为场次 id 字符串
}

// SessionCheckState 单场次签到状态
type SessionCheckState struct {
	Status      *AttendanceStatus `json:"status"`
	CheckInTime *string           `json:"checkInTime"`
}

// Activity 最近动态
type Activity struct {
	ID     int64  `json:"id"`
	Action string `json:"action"`
	User   string `json:"user"`
	Time   string `json:"time"`
	Status string `json:"status"` // success | pending | rejected
}
