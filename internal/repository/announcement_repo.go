package repository

import (
	"context"
	"fmt"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// AnnouncementRepository 公告端点访问接口
type AnnouncementRepository interface {
	// List 返回全部公告（管理列表，含 DRAFT/EXPIRED）
	List(ctx context.Context, token string) ([]model.Announcement, error)
	// Active 返回仪表盘可见的公告（ACTIVE 且在展示窗口内，服务端过滤）
	Active(ctx context.Context, token string) ([]model.Announcement, error)
	Create(ctx context.Context, token string, form *dto.AnnouncementForm) error
	Update(ctx context.Context, token string, id int64, form *dto.AnnouncementForm) error
	Delete(ctx context.Context, token string, id int64) error
}

type announcementRepo struct {
	api *httpapi.Client
}

// NewAnnouncementRepo 创建 AnnouncementRepository 实例
func NewAnnouncementRepo(api *httpapi.Client) AnnouncementRepository {
	return &announcementRepo{api: api}
}

func (r *announcementRepo) List(ctx context.Context, token string) ([]model.Announcement, error) {
	var list []model.Announcement
	if err := r.api.Get(ctx, token, "/announcements", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *announcementRepo) Active(ctx context.Context, token string) ([]model.Announcement, error) {
	var list []model.Announcement
	if err := r.api.Get(ctx, token, "/announcements/active", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (r *announcementRepo) Create(ctx context.Context, token string, form *dto.AnnouncementForm) error {
	return r.api.Post(ctx, token, "/announcements", form, nil)
}

func (r *announcementRepo) Update(ctx context.Context, token string, id int64, form *dto.AnnouncementForm) error {
	return r.api.Patch(ctx, token, fmt.Sprintf("/announcements/%d", id), form, nil)
}

func (r *announcementRepo) Delete(ctx context.Context, token string, id int64) error {
	return r.api.Delete(ctx, token, fmt.Sprintf("/announcements/%d", id))
}
