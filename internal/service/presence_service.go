package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// PresenceService 在线状态业务接口
// 心跳失败时保留上一次成功的列表并确保自己在列表中，页面上的在线指示不闪断
type PresenceService interface {
	Heartbeat(ctx context.Context, token string, viewer model.Viewer) []model.Viewer
}

type presenceService struct {
	repo   *repository.Repository
	logger *zap.Logger

	mu   sync.RWMutex
	last []model.Viewer
}

// NewPresenceService 创建 PresenceService 实例
func NewPresenceService(repo *repository.Repository, logger *zap.Logger) PresenceService {
	return &presenceService{repo: repo, logger: logger}
}

func (s *presenceService) Heartbeat(ctx context.Context, token string, viewer model.Viewer) []model.Viewer {
	viewers, err := s.repo.Presence.Heartbeat(ctx, token, viewer)
	if err != nil {
		s.logger.Debug("心跳上报失败，沿用上次在线列表", zap.Error(err))
		return s.lastWithSelf(viewer)
	}

	s.mu.Lock()
	s.last = viewers
	s.mu.Unlock()
	return viewers
}

// lastWithSelf 返回上次成功的列表，并保证自己在列表中
func (s *presenceService) lastWithSelf(viewer model.Viewer) []model.Viewer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, v := range s.last {
		if v.ID == viewer.ID {
			out := make([]model.Viewer, len(s.last))
			copy(out, s.last)
			return out
		}
	}
	out := make([]model.Viewer, 0, len(s.last)+1)
	out = append(out, s.last...)
	out = append(out, viewer)
	return out
}
