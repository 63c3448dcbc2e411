package model

// Viewer 当前在线的浏览者
// id 为成员 id 字符串；未登录访客使用 "visitor-" 前缀的随机 id
type Viewer struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}
