package repository

import (
	"context"

	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// PresenceRepository 在线状态心跳端点
type PresenceRepository interface {
	// Heartbeat 上报自身在线并返回当前观看者列表
	Heartbeat(ctx context.Context, token string, viewer model.Viewer) ([]model.Viewer, error)
}

type presenceRepo struct {
	api *httpapi.Client
}

// NewPresenceRepo 创建 PresenceRepository 实例
func NewPresenceRepo(api *httpapi.Client) PresenceRepository {
	return &presenceRepo{api: api}
}

func (r *presenceRepo) Heartbeat(ctx context.Context, token string, viewer model.Viewer) ([]model.Viewer, error) {
	var viewers []model.Viewer
	if err := r.api.Post(ctx, token, "/presence/heartbeat", viewer, &viewers); err != nil {
		return nil, err
	}
	return viewers, nil
}
