package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// ── 考勤模块业务错误 ──

var (
	ErrInvalidDate   = errors.New("รูปแบบวันที่ไม่ถูกต้อง")
	ErrInvalidStatus = errors.New("สถานะเช็คชื่อไม่ถูกต้อง")
)

// defaultRounds 场次配置缺失或损坏时的兜底：三个匿名场次
func defaultRounds() []model.Round {
	return []model.Round{{ID: 1}, {ID: 2}, {ID: 3}}
}

// MatchScope 签到记录与格子槽位的匹配范围
// 名册数据源带 userId，按成员匹配；/me 数据源只含本人记录，放宽成员维度
type MatchScope int

const (
	ScopeRoster MatchScope = iota
	ScopeSelf
)

// Window 考勤表的滑动日期窗口，末日含当日
type Window struct {
	End  time.Time
	Days int
}

// Start 窗口首日
func (w Window) Start() time.Time {
	return w.End.AddDate(0, 0, -(w.Days - 1))
}

// Prev 向过去平移一整窗
func (w Window) Prev() Window {
	return Window{End: w.End.AddDate(0, 0, -w.Days), Days: w.Days}
}

// Next 向未来平移一整窗
func (w Window) Next() Window {
	return Window{End: w.End.AddDate(0, 0, w.Days), Days: w.Days}
}

// AttendanceService 考勤业务接口
type AttendanceService interface {
	// Rounds 返回当前场次配置；设置缺失或解析失败时返回默认三场
	Rounds(ctx context.Context, token string) []model.Round
	// BuildSheet 构建考勤表：成员 x 日期网格，每格按场次对账签到记录
	BuildSheet(ctx context.Context, token string, q *dto.SheetQuery) (*dto.Sheet, error)
	// BuildMySheet 构建当前用户自己的单行考勤表
	BuildMySheet(ctx context.Context, token string, self model.User, q *dto.SheetQuery) (*dto.Sheet, error)
	// Roster 返回指定日期的点名名册
	Roster(ctx context.Context, token, date string) (*dto.Roster, error)
	// SetStatus 管理员点名：写入/覆盖/清除指定槽位状态
	SetStatus(ctx context.Context, token string, req *dto.CheckinRequest) error
	// Statistics 返回范围统计视图，含按关键字过滤与合计行
	Statistics(ctx context.Context, token, startDate, endDate, query string) (*dto.StatsView, error)
	// Location 考勤日期分桶所用时区
	Location() *time.Location
}

type attendanceService struct {
	cfg    *config.Config
	repo   *repository.Repository
	loc    *time.Location
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) AttendanceService {
	loc, err := time.LoadLocation(cfg.Attendance.Timezone)
	if err != nil {
		logger.Warn("考勤时区加载失败，回退到本地时区",
			zap.String("timezone", cfg.Attendance.Timezone), zap.Error(err))
		loc = time.Local
	}
	return &attendanceService{cfg: cfg, repo: repo, loc: loc, logger: logger}
}

func (s *attendanceService) Location() *time.Location {
	return s.loc
}

// dayKey 将时间截断到配置时区的日历日
func (s *attendanceService) dayKey(t time.Time) string {
	return t.In(s.loc).Format("2006-01-02")
}

func (s *attendanceService) Rounds(ctx context.Context, token string) []model.Round {
	settings, err := s.repo.Setting.List(ctx, token)
	if err != nil {
		s.logger.Warn("读取场次配置失败，使用默认场次", zap.Error(err))
		return defaultRounds()
	}

	for _, st := range settings {
		if st.Key != model.SettingAttendanceRounds {
			continue
		}
		var rounds []model.Round
		if err := json.Unmarshal([]byte(st.Value), &rounds); err != nil || len(rounds) == 0 {
			s.logger.Warn("场次配置解析失败，使用默认场次",
				zap.String("value", st.Value), zap.Error(err))
			return defaultRounds()
		}
		sort.Slice(rounds, func(i, j int) bool { return rounds[i].ID < rounds[j].ID })
		return rounds
	}
	return defaultRounds()
}

func (s *attendanceService) BuildSheet(ctx context.Context, token string, q *dto.SheetQuery) (*dto.Sheet, error) {
	users, err := s.repo.Attendance.ListUsers(ctx, token)
	if err != nil {
		return nil, err
	}

	win := s.normalizeWindow(q)
	logs, err := s.repo.Attendance.ListLogs(ctx, token, s.windowStart(win), s.windowEnd(win))
	if err != nil {
		return nil, err
	}

	rounds := s.Rounds(ctx, token)
	users = filterUsers(users, q.Query)
	return s.assembleSheet(users, logs, rounds, win, ScopeRoster), nil
}

func (s *attendanceService) BuildMySheet(ctx context.Context, token string, self model.User, q *dto.SheetQuery) (*dto.Sheet, error) {
	win := s.normalizeWindow(q)
	logs, err := s.repo.Attendance.ListMyLogs(ctx, token, s.windowStart(win), s.windowEnd(win))
	if err != nil {
		return nil, err
	}

	rounds := s.Rounds(ctx, token)
	return s.assembleSheet([]model.User{self}, logs, rounds, win, ScopeSelf), nil
}

// normalizeWindow 补全查询缺省：末日默认今天，天数默认配置值
func (s *attendanceService) normalizeWindow(q *dto.SheetQuery) Window {
	end := q.EndDate
	if end.IsZero() {
		end = time.Now().In(s.loc)
	}
	days := q.Days
	if days <= 0 {
		days = s.cfg.Attendance.DaysToShow
	}
	// 截断到当日零点，窗口边界与日期分桶使用同一时区
	end = time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, s.loc)
	return Window{End: end, Days: days}
}

func (s *attendanceService) windowStart(w Window) time.Time {
	st := w.Start()
	return time.Date(st.Year(), st.Month(), st.Day(), 0, 0, 0, 0, s.loc)
}

func (s *attendanceService) windowEnd(w Window) time.Time {
	return time.Date(w.End.Year(), w.End.Month(), w.End.Day(), 23, 59, 59, 0, s.loc)
}

// filterUsers 按名称或电话的子串匹配过滤，忽略大小写
func filterUsers(users []model.User, query string) []model.User {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return users
	}
	out := make([]model.User, 0, len(users))
	for _, u := range users {
		if strings.Contains(strings.ToLower(u.InGameName), q) ||
			strings.Contains(strings.ToLower(u.PhoneNumber), q) {
			out = append(out, u)
		}
	}
	return out
}

// assembleSheet 核心对账：把散列的签到记录折叠进 成员 x 日期 x 场次 网格
func (s *attendanceService) assembleSheet(users []model.User, logs []model.AttendanceLog, rounds []model.Round, win Window, scope MatchScope) *dto.Sheet {
	todayKey := s.dayKey(time.Now())

	days := make([]dto.SheetDay, 0, win.Days)
	for d := s.windowStart(win); !d.After(win.End); d = d.AddDate(0, 0, 1) {
		key := d.Format("2006-01-02")
		days = append(days, dto.SheetDay{
			Key:     key,
			Date:    d,
			IsToday: key == todayKey,
		})
	}

	// 先按日期分桶，格子匹配只在当日记录里找
	byDay := make(map[string][]model.AttendanceLog, len(days))
	for _, log := range logs {
		key := s.dayKey(log.CheckInTime)
		byDay[key] = append(byDay[key], log)
	}

	// 行序固定按游戏内名称排列，不依赖远端返回顺序
	sorted := make([]model.User, len(users))
	copy(sorted, users)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].InGameName < sorted[j].InGameName })

	rows := make([]dto.SheetRow, 0, len(sorted))
	for _, u := range sorted {
		cells := make([]dto.SheetCell, 0, len(days))
		for _, day := range days {
			cell := dto.SheetCell{DayKey: day.Key, Marks: make([]dto.RoundMark, 0, len(rounds))}
			for _, r := range rounds {
				mark := dto.RoundMark{Round: r}
				if log, ok := matchLog(byDay[day.Key], u.ID, r.ID, scope); ok {
					mark.Filled = true
					mark.Status = log.Status
					mark.CheckInTime = log.CheckInTime.In(s.loc)
				}
				cell.Marks = append(cell.Marks, mark)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, dto.SheetRow{User: u, Cells: cells})
	}

	// 逐日到场人数：O 与 L 都计入，按成员去重
	for i := range days {
		days[i].Present = presentCount(byDay[days[i].Key], scope)
	}

	return &dto.Sheet{Days: days, Rounds: rounds, Rows: rows, Total: len(rows)}
}

// matchLog 在当日记录中查找指定槽位的记录
// 同一槽位出现多条时取第一条，不假设服务端唯一性
func matchLog(dayLogs []model.AttendanceLog, userID int64, roundID int, scope MatchScope) (model.AttendanceLog, bool) {
	for _, log := range dayLogs {
		if log.Session != roundID {
			continue
		}
		if scope == ScopeRoster && log.UserID != userID {
			continue
		}
		return log, true
	}
	return model.AttendanceLog{}, false
}

// presentCount 当日到场人数：状态为到场或迟到的成员去重计数
func presentCount(dayLogs []model.AttendanceLog, scope MatchScope) int {
	seen := make(map[int64]struct{})
	n := 0
	for _, log := range dayLogs {
		if log.Status != model.StatusPresent && log.Status != model.StatusLate {
			continue
		}
		if scope == ScopeSelf {
			// 自助视图只有本人数据，成员维度不可用，按日去重计一次
			return 1
		}
		if _, ok := seen[log.UserID]; ok {
			continue
		}
		seen[log.UserID] = struct{}{}
		n++
	}
	return n
}

func (s *attendanceService) Roster(ctx context.Context, token, date string) (*dto.Roster, error) {
	if date == "" {
		date = s.dayKey(time.Now())
	} else if _, err := time.ParseInLocation("2006-01-02", date, s.loc); err != nil {
		return nil, ErrInvalidDate
	}

	// 点名名册需要全量成员，limit 取足够大的值一次拉全
	result, err := s.repo.Dashboard.CheckinStatus(ctx, token, 1, 1000, date)
	if err != nil {
		return nil, err
	}

	rounds := result.RoundsConfig
	if len(rounds) == 0 {
		rounds = s.Rounds(ctx, token)
	}

	return &dto.Roster{Date: date, Rounds: rounds, Users: result.Users}, nil
}

func (s *attendanceService) SetStatus(ctx context.Context, token string, req *dto.CheckinRequest) error {
	switch model.AttendanceStatus(req.Status) {
	case model.StatusPresent, model.StatusLate, model.StatusAbsent, model.StatusCleared:
	default:
		return ErrInvalidStatus
	}
	if _, err := time.ParseInLocation("2006-01-02", req.Date, s.loc); err != nil {
		return ErrInvalidDate
	}

	if err := s.repo.Attendance.AdminCheckin(ctx, token, req); err != nil {
		return err
	}
	s.logger.Info("管理员点名",
		zap.Int64("user_id", req.UserID),
		zap.Int("session", req.Session),
		zap.String("status", req.Status),
		zap.String("date", req.Date))
	return nil
}

func (s *attendanceService) Statistics(ctx context.Context, token, startDate, endDate, query string) (*dto.StatsView, error) {
	if startDate == "" || endDate == "" {
		// 默认统计当前窗口
		end := time.Now().In(s.loc)
		start := end.AddDate(0, 0, -(s.cfg.Attendance.DaysToShow - 1))
		startDate = start.Format("2006-01-02")
		endDate = end.Format("2006-01-02")
	}
	for _, d := range []string{startDate, endDate} {
		if _, err := time.ParseInLocation("2006-01-02", d, s.loc); err != nil {
			return nil, ErrInvalidDate
		}
	}

	rows, err := s.repo.Attendance.Statistics(ctx, token, startDate, endDate)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q != "" {
		filtered := make([]model.UserStats, 0, len(rows))
		for _, row := range rows {
			if strings.Contains(strings.ToLower(row.User.InGameName), q) ||
				strings.Contains(strings.ToLower(row.User.PhoneNumber), q) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	var totals model.StatsCounters
	for _, row := range rows {
		totals.Present += row.Stats.Present
		totals.Late += row.Stats.Late
		totals.Absent += row.Stats.Absent
		totals.Leave += row.Stats.Leave
		totals.Total += row.Stats.Total
	}

	return &dto.StatsView{
		StartDate: startDate,
		EndDate:   endDate,
		Query:     query,
		Rows:      rows,
		Totals:    totals,
	}, nil
}
