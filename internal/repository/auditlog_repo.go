package repository

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// AuditLogRepository 审计日志端点访问接口
type AuditLogRepository interface {
	// List 按 take/skip 分页；actionTypes 为空表示不过滤
	List(ctx context.Context, token string, take, skip int, actionTypes []string) (*dto.LogListResult, error)
}

type auditLogRepo struct {
	api *httpapi.Client
}

// NewAuditLogRepo 创建 AuditLogRepository 实例
func NewAuditLogRepo(api *httpapi.Client) AuditLogRepository {
	return &auditLogRepo{api: api}
}

func (r *auditLogRepo) List(ctx context.Context, token string, take, skip int, actionTypes []string) (*dto.LogListResult, error) {
	q := url.Values{}
	q.Set("take", strconv.Itoa(take))
	q.Set("skip", strconv.Itoa(skip))
	if len(actionTypes) > 0 {
		q.Set("actionTypes", strings.Join(actionTypes, ","))
	}

	var result dto.LogListResult
	if err := r.api.Get(ctx, token, "/logs?"+q.Encode(), &result); err != nil {
		return nil, err
	}
	return &result, nil
}
