package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// LogFilterGroups 命名过滤组到动作类型集合的映射
// 过滤组名用于页面 tab，动作类型以 CSV 传给远端
var LogFilterGroups = map[string][]string{
	"login":        {"USER_LOGIN"},
	"item":         {"USER_WITHDRAW", "ADMIN_DEPOSIT"},
	"attendance":   {"USER_CHECKIN"},
	"admin":        {"ADMIN_CREATE_USER", "ADMIN_UPDATE_USER", "ADMIN_UPDATE_USER_ROLE", "ADMIN_RESET_PASSWORD", "ADMIN_DELETE_USER"},
	"announcement": {"ADMIN_CREATE_ANNOUNCEMENT", "ADMIN_UPDATE_ANNOUNCEMENT", "ADMIN_DELETE_ANNOUNCEMENT"},
	"money":        {"ADMIN_WEEKLY_PAYMENT"},
}

// AuditLogService 审计日志业务接口
type AuditLogService interface {
	// List 按页查询日志；filter 为空或未知时不过滤
	List(ctx context.Context, token string, q *dto.LogQuery) (*dto.LogPage, error)
}

type auditLogService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAuditLogService 创建 AuditLogService 实例
func NewAuditLogService(repo *repository.Repository, logger *zap.Logger) AuditLogService {
	return &auditLogService{repo: repo, logger: logger}
}

func (s *auditLogService) List(ctx context.Context, token string, q *dto.LogQuery) (*dto.LogPage, error) {
	page := q.Page
	if page <= 0 {
		page = 1
	}
	size := q.Size
	if size <= 0 {
		size = 10
	}

	actionTypes := LogFilterGroups[q.Filter]
	skip := (page - 1) * size

	result, err := s.repo.AuditLog.List(ctx, token, size, skip, actionTypes)
	if err != nil {
		return nil, err
	}

	// 远端只给 hasMore，总量按已见记录估算
	totalRecords := skip + len(result.Data)
	if result.Page.HasMore {
		totalRecords += size
	}
	totalPages := (totalRecords + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	return &dto.LogPage{
		Entries:      result.Data,
		Page:         page,
		Size:         size,
		TotalPages:   totalPages,
		TotalRecords: totalRecords,
		HasMore:      result.Page.HasMore,
	}, nil
}
