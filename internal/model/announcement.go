package model

import "time"

// AnnouncementStatus 公告状态
type AnnouncementStatus string

const (
	AnnouncementActive  AnnouncementStatus = "ACTIVE"
	AnnouncementDraft   AnnouncementStatus = "DRAFT"
	AnnouncementExpired AnnouncementStatus = "EXPIRED"
)

// AnnouncementPriority 公告优先级
type AnnouncementPriority string

const (
	PriorityUrgent AnnouncementPriority = "URGENT"
	PriorityNormal AnnouncementPriority = "NORMAL"
)

// Announcement 公告
// startDate/endDate 为展示窗口；仅 ACTIVE 且在窗口内的公告出现在仪表盘
type Announcement struct {
	ID        int64                `json:"id"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	Status    AnnouncementStatus   `json:"status"`
	Priority  AnnouncementPriority `json:"priority"`
	StartDate time.Time            `json:"startDate"`
	EndDate   time.Time            `json:"endDate"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}
