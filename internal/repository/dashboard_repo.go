package repository

import (
	"context"
	"net/url"
	"strconv"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// DashboardRepository 仪表盘端点访问接口
type DashboardRepository interface {
	Stats(ctx context.Context, token string) (*model.DashboardStats, error)
	// CheckinStatus 返回签到名册；date 为空表示今日
	CheckinStatus(ctx context.Context, token string, page, limit int, date string) (*dto.CheckinStatusResult, error)
	Activities(ctx context.Context, token string) ([]model.Activity, error)
}

type dashboardRepo struct {
	api *httpapi.Client
}

// NewDashboardRepo 创建 DashboardRepository 实例
func NewDashboardRepo(api *httpapi.Client) DashboardRepository {
	return &dashboardRepo{api: api}
}

func (r *dashboardRepo) Stats(ctx context.Context, token string) (*model.DashboardStats, error) {
	var stats model.DashboardStats
	if err := r.api.Get(ctx, token, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *dashboardRepo) CheckinStatus(ctx context.Context, token string, page, limit int, date string) (*dto.CheckinStatusResult, error) {
	q := url.Values{}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	q.Set("limit", strconv.Itoa(limit))
	if date != "" {
		q.Set("date", date)
	}

	var result dto.CheckinStatusResult
	if err := r.api.Get(ctx, token, "/dashboard/checkin-status?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *dashboardRepo) Activities(ctx context.Context, token string) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.api.Get(ctx, token, "/dashboard/activities", &activities); err != nil {
		return nil, err
	}
	return activities, nil
}
