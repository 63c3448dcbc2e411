package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// DashboardService 仪表盘业务接口
type DashboardService interface {
	// Overview 组装仪表盘视图；各分区独立拉取、独立失败
	Overview(ctx context.Context, token string, page int) *dto.DashboardView
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

func (s *dashboardService) Overview(ctx context.Context, token string, page int) *dto.DashboardView {
	if page <= 0 {
		page = 1
	}
	view := &dto.DashboardView{}

	stats, err := s.repo.Dashboard.Stats(ctx, token)
	if err != nil {
		s.logger.Warn("仪表盘统计拉取失败", zap.Error(err))
		view.StatsErr = "โหลดสถิติไม่สำเร็จ"
	} else {
		view.Stats = stats
	}

	active, err := s.repo.Announcement.Active(ctx, token)
	if err != nil {
		s.logger.Warn("活跃公告拉取失败", zap.Error(err))
		view.ActiveErr = "โหลดประกาศไม่สำเร็จ"
	} else {
		view.Active = active
	}

	checkin, err := s.repo.Dashboard.CheckinStatus(ctx, token, page, 10, "")
	if err != nil {
		s.logger.Warn("签到名册拉取失败", zap.Error(err))
		view.CheckinErr = "โหลดสถานะเช็คชื่อไม่สำเร็จ"
	} else {
		view.Checkin = checkin
	}

	activities, err := s.repo.Dashboard.Activities(ctx, token)
	if err != nil {
		s.logger.Warn("最近动态拉取失败", zap.Error(err))
		view.ActErr = "โหลดกิจกรรมล่าสุดไม่สำเร็จ"
	} else {
		view.Activities = activities
	}

	return view
}
