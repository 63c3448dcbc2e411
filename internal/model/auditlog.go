package model

import "time"

// AuditLog 审计日志记录（服务端追加写入，控制台只读）
type AuditLog struct {
	ID            int64     `json:"id"`
	PerformerID   int64     `json:"performerId"`
	PerformerName *string   `json:"performerName"`
	PerformerRole *Role     `json:"performerRole"`
	ActionType    string    `json:"actionType"`
	Details       string    `json:"details"`
	Timestamp     time.Time `json:"timestamp"`
}
