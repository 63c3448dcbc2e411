package repository

import (
	"context"
	"net/url"
	"time"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
)

// AttendanceRepository 考勤端点访问接口
type AttendanceRepository interface {
	// ListUsers 返回考勤表的成员列表
	ListUsers(ctx context.Context, token string) ([]model.User, error)
	// ListLogs 返回时间范围内的全部签到记录（管理视图）
	ListLogs(ctx context.Context, token string, start, end time.Time) ([]model.AttendanceLog, error)
	// ListMyLogs 返回当前用户自己的签到记录（/me 范围端点只返回本人数据）
	ListMyLogs(ctx context.Context, token string, start, end time.Time) ([]model.AttendanceLog, error)
	// AdminCheckin 管理员点名：写入/覆盖指定槽位的签到状态
	AdminCheckin(ctx context.Context, token string, req *dto.CheckinRequest) error
	// Statistics 返回服务端聚合的成员考勤统计
	Statistics(ctx context.Context, token, startDate, endDate string) ([]model.UserStats, error)
}

type attendanceRepo struct {
	api *httpapi.Client
}

// NewAttendanceRepo 创建 AttendanceRepository 实例
func NewAttendanceRepo(api *httpapi.Client) AttendanceRepository {
	return &attendanceRepo{api: api}
}

func (r *attendanceRepo) ListUsers(ctx context.Context, token string) ([]model.User, error) {
	var users []model.User
	if err := r.api.Get(ctx, token, "/attendance/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *attendanceRepo) ListLogs(ctx context.Context, token string, start, end time.Time) ([]model.AttendanceLog, error) {
	return r.listLogs(ctx, token, "/attendance", start, end)
}

func (r *attendanceRepo) ListMyLogs(ctx context.Context, token string, start, end time.Time) ([]model.AttendanceLog, error) {
	return r.listLogs(ctx, token, "/attendance/me", start, end)
}

func (r *attendanceRepo) listLogs(ctx context.Context, token, path string, start, end time.Time) ([]model.AttendanceLog, error) {
	q := url.Values{}
	q.Set("startDate", start.UTC().Format(time.RFC3339))
	q.Set("endDate", end.UTC().Format(time.RFC3339))

	var logs []model.AttendanceLog
	if err := r.api.Get(ctx, token, path+"?"+q.Encode(), &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *attendanceRepo) AdminCheckin(ctx context.Context, token string, req *dto.CheckinRequest) error {
	return r.api.Post(ctx, token, "/attendance/admin-checkin", req, nil)
}

func (r *attendanceRepo) Statistics(ctx context.Context, token, startDate, endDate string) ([]model.UserStats, error) {
	q := url.Values{}
	q.Set("startDate", startDate)
	q.Set("endDate", endDate)

	var stats []model.UserStats
	if err := r.api.Get(ctx, token, "/attendance/statistics?"+q.Encode(), &stats); err != nil {
		return nil, err
	}
	return stats, nil
}
