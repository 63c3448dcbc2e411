package dto

// ── 公告模块 DTO ──

// AnnouncementForm 公告创建/编辑表单
// startDate/endDate 使用 "2006-01-02" 字符串与表单对接
type AnnouncementForm struct {
	Title     string `form:"title"     json:"title"     binding:"required,max=200"`
	Content   string `form:"content"   json:"content"   binding:"required"`
	Status    string `form:"status"    json:"status"    binding:"required,oneof=ACTIVE DRAFT EXPIRED"`
	Priority  string `form:"priority"  json:"priority"  binding:"required,oneof=URGENT NORMAL"`
	StartDate string `form:"startDate" json:"startDate" binding:"required"`
	EndDate   string `form:"endDate"   json:"endDate"   binding:"required"`
}
