package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
)

func testConfig() *config.Config {
	return &config.Config{
		Session:    config.SessionConfig{Secret: "test-secret-0123456789", TTL: time.Hour, CookieName: "gm_session"},
		Attendance: config.AttendanceConfig{Timezone: "Asia/Bangkok", DaysToShow: 7},
		Inventory:  config.InventoryConfig{LowStockThreshold: 10},
	}
}

func bkk(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatalf("加载时区失败: %v", err)
	}
	return loc
}

func TestAttendanceRoundsFallback(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())

	// 设置缺失
	rounds := svc.Rounds(context.Background(), "tok")
	if len(rounds) != 3 || rounds[0].ID != 1 || rounds[2].ID != 3 {
		t.Fatalf("缺失设置应回退默认三场, 实际 %+v", rounds)
	}

	// JSON 损坏
	m.setting.settings = []model.Setting{{Key: model.SettingAttendanceRounds, Value: "{oops"}}
	rounds = svc.Rounds(context.Background(), "tok")
	if len(rounds) != 3 {
		t.Fatalf("损坏设置应回退默认三场, 实际 %+v", rounds)
	}

	// 读取失败
	m.setting.err = errMockRemote
	rounds = svc.Rounds(context.Background(), "tok")
	if len(rounds) != 3 {
		t.Fatalf("读取失败应回退默认三场, 实际 %+v", rounds)
	}

	// 正常配置按 id 排序
	m.setting.err = nil
	m.setting.settings = []model.Setting{{
		Key:   model.SettingAttendanceRounds,
		Value: `[{"id":2,"name":"รอบดึก"},{"id":1,"name":"รอบเย็น","startTime":"20:00","endTime":"21:00"}]`,
	}}
	rounds = svc.Rounds(context.Background(), "tok")
	if len(rounds) != 2 || rounds[0].ID != 1 || rounds[1].ID != 2 {
		t.Fatalf("场次应按 id 排序, 实际 %+v", rounds)
	}
}

func TestAttendanceBuildSheet(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())
	loc := bkk(t)

	end := time.Date(2026, 8, 30, 0, 0, 0, 0, loc)
	// 远端返回顺序故意倒置，行序应由控制台按名称排好
	m.attendance.users = []model.User{
		{ID: 2, InGameName: "Bob", PhoneNumber: "0822222222"},
		{ID: 1, InGameName: "Alice", PhoneNumber: "0811111111"},
	}
	m.attendance.logs = []model.AttendanceLog{
		// Alice 8/30 场次 1 到场
		{ID: 10, UserID: 1, Session: 1, Status: model.StatusPresent,
			CheckInTime: time.Date(2026, 8, 30, 20, 5, 0, 0, loc)},
		// Alice 8/30 场次 2 迟到
		{ID: 11, UserID: 1, Session: 2, Status: model.StatusLate,
			CheckInTime: time.Date(2026, 8, 30, 21, 40, 0, 0, loc)},
		// Bob 8/29 场次 1 缺席
		{ID: 12, UserID: 2, Session: 1, Status: model.StatusAbsent,
			CheckInTime: time.Date(2026, 8, 29, 20, 0, 0, 0, loc)},
	}

	sheet, err := svc.BuildSheet(context.Background(), "tok", &dto.SheetQuery{EndDate: end, Days: 3})
	if err != nil {
		t.Fatalf("BuildSheet 应成功: %v", err)
	}

	if len(sheet.Days) != 3 {
		t.Fatalf("窗口天数期望 3, 实际 %d", len(sheet.Days))
	}
	if sheet.Days[0].Key != "2026-08-28" || sheet.Days[2].Key != "2026-08-30" {
		t.Fatalf("窗口日期错误: %s ~ %s", sheet.Days[0].Key, sheet.Days[2].Key)
	}
	if sheet.Total != 2 || len(sheet.Rows) != 2 {
		t.Fatalf("成员行数期望 2, 实际 %d", len(sheet.Rows))
	}

	if sheet.Rows[0].User.InGameName != "Alice" || sheet.Rows[1].User.InGameName != "Bob" {
		t.Fatalf("行序应按名称排列, 实际 %s, %s",
			sheet.Rows[0].User.InGameName, sheet.Rows[1].User.InGameName)
	}

	// Alice 行：8/30 的两个场次应已填充，场次 3 未填充
	alice := sheet.Rows[0]
	last := alice.Cells[2]
	if len(last.Marks) != 3 {
		t.Fatalf("每格场次数期望 3, 实际 %d", len(last.Marks))
	}
	if !last.Marks[0].Filled || last.Marks[0].Status != model.StatusPresent {
		t.Errorf("Alice 8/30 场次1 应为到场, 实际 %+v", last.Marks[0])
	}
	if !last.Marks[1].Filled || last.Marks[1].Status != model.StatusLate {
		t.Errorf("Alice 8/30 场次2 应为迟到, 实际 %+v", last.Marks[1])
	}
	if last.Marks[2].Filled {
		t.Errorf("Alice 8/30 场次3 不应填充")
	}

	// Alice 的记录不能串到 Bob 行
	bob := sheet.Rows[1]
	if bob.Cells[2].Marks[0].Filled {
		t.Errorf("Bob 8/30 场次1 不应填充")
	}
	if !bob.Cells[1].Marks[0].Filled || bob.Cells[1].Marks[0].Status != model.StatusAbsent {
		t.Errorf("Bob 8/29 场次1 应为缺席, 实际 %+v", bob.Cells[1].Marks[0])
	}

	// 逐日到场人数：O 和 L 计入且按成员去重；缺席不计
	if sheet.Days[2].Present != 1 {
		t.Errorf("8/30 到场人数期望 1(Alice 去重), 实际 %d", sheet.Days[2].Present)
	}
	if sheet.Days[1].Present != 0 {
		t.Errorf("8/29 到场人数期望 0(仅缺席), 实际 %d", sheet.Days[1].Present)
	}
}

func TestAttendanceSheetSearch(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())
	loc := bkk(t)

	m.attendance.users = []model.User{
		{ID: 1, InGameName: "Alice", PhoneNumber: "0811111111"},
		{ID: 2, InGameName: "Bob", PhoneNumber: "0822222222"},
	}

	end := time.Date(2026, 8, 30, 0, 0, 0, 0, loc)
	sheet, err := svc.BuildSheet(context.Background(), "tok", &dto.SheetQuery{EndDate: end, Days: 3, Query: "AL"})
	if err != nil {
		t.Fatalf("BuildSheet 应成功: %v", err)
	}
	if sheet.Total != 1 || sheet.Rows[0].User.InGameName != "Alice" {
		t.Fatalf("搜索 AL 应只剩 Alice, 实际 %d 行", sheet.Total)
	}

	// 电话号码也参与匹配
	sheet, err = svc.BuildSheet(context.Background(), "tok", &dto.SheetQuery{EndDate: end, Days: 3, Query: "0822"})
	if err != nil {
		t.Fatalf("BuildSheet 应成功: %v", err)
	}
	if sheet.Total != 1 || sheet.Rows[0].User.InGameName != "Bob" {
		t.Fatalf("搜索 0822 应只剩 Bob, 实际 %d 行", sheet.Total)
	}
}

func TestAttendanceWindowShift(t *testing.T) {
	loc, _ := time.LoadLocation("Asia/Bangkok")
	w := Window{End: time.Date(2026, 8, 30, 0, 0, 0, 0, loc), Days: 7}

	if got := w.Start().Format("2006-01-02"); got != "2026-08-24" {
		t.Errorf("窗口首日期望 2026-08-24, 实际 %s", got)
	}

	prev := w.Prev()
	if got := prev.End.Format("2006-01-02"); got != "2026-08-23" {
		t.Errorf("前翻末日期望 2026-08-23, 实际 %s", got)
	}

	// 前翻再后翻应回到原窗口
	back := prev.Next()
	if !back.End.Equal(w.End) || back.Days != w.Days {
		t.Errorf("Prev 后 Next 应还原窗口, 实际 %+v", back)
	}
}

func TestAttendanceSelfScope(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())
	loc := bkk(t)

	self := model.User{ID: 7, InGameName: "Carol", PhoneNumber: "0833333333"}
	// /me 端点不带 userId
	m.attendance.myLogs = []model.AttendanceLog{
		{ID: 20, Session: 1, Status: model.StatusPresent,
			CheckInTime: time.Date(2026, 8, 30, 20, 0, 0, 0, loc)},
	}

	end := time.Date(2026, 8, 30, 0, 0, 0, 0, loc)
	sheet, err := svc.BuildMySheet(context.Background(), "tok", self, &dto.SheetQuery{EndDate: end, Days: 2})
	if err != nil {
		t.Fatalf("BuildMySheet 应成功: %v", err)
	}
	if len(sheet.Rows) != 1 {
		t.Fatalf("自助视图应只有一行, 实际 %d", len(sheet.Rows))
	}
	mark := sheet.Rows[0].Cells[1].Marks[0]
	if !mark.Filled || mark.Status != model.StatusPresent {
		t.Fatalf("缺少 userId 的本人记录也应匹配, 实际 %+v", mark)
	}
	if sheet.Days[1].Present != 1 {
		t.Errorf("自助视图当日到场应为 1, 实际 %d", sheet.Days[1].Present)
	}
}

func TestAttendanceSetStatus(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())

	req := &dto.CheckinRequest{UserID: 1, Session: 2, Status: "O", Date: "2026-08-30"}
	if err := svc.SetStatus(context.Background(), "tok", req); err != nil {
		t.Fatalf("SetStatus 应成功: %v", err)
	}
	if len(m.attendance.checkins) != 1 || m.attendance.checkins[0].Session != 2 {
		t.Fatalf("点名请求未透传, 实际 %+v", m.attendance.checkins)
	}

	// 清除标记也是合法状态
	req.Status = "-"
	if err := svc.SetStatus(context.Background(), "tok", req); err != nil {
		t.Fatalf("清除标记应成功: %v", err)
	}

	req.Status = "X"
	err := svc.SetStatus(context.Background(), "tok", req)
	if !errors.Is(err, ErrInvalidStatus) {
		t.Errorf("非法状态期望 ErrInvalidStatus, 实际 %v", err)
	}
	// 校验错误会直接展示在页面上，文案必须是泰文
	if err.Error() != "สถานะเช็คชื่อไม่ถูกต้อง" {
		t.Errorf("校验错误文案应为泰文, 实际 %q", err.Error())
	}

	req.Status = "O"
	req.Date = "30/08/2026"
	err = svc.SetStatus(context.Background(), "tok", req)
	if !errors.Is(err, ErrInvalidDate) {
		t.Errorf("非法日期期望 ErrInvalidDate, 实际 %v", err)
	}
	if err.Error() != "รูปแบบวันที่ไม่ถูกต้อง" {
		t.Errorf("日期错误文案应为泰文, 实际 %q", err.Error())
	}
}

func TestAttendanceStatistics(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())

	m.attendance.stats = []model.UserStats{
		{User: model.StatsUser{ID: 1, InGameName: "Alice", PhoneNumber: "0811111111"},
			Stats: model.StatsCounters{Present: 5, Late: 1, Absent: 2, Total: 8}},
		{User: model.StatsUser{ID: 2, InGameName: "Bob", PhoneNumber: "0822222222"},
			Stats: model.StatsCounters{Present: 3, Late: 0, Absent: 4, Leave: 1, Total: 8}},
	}

	view, err := svc.Statistics(context.Background(), "tok", "2026-08-01", "2026-08-30", "")
	if err != nil {
		t.Fatalf("Statistics 应成功: %v", err)
	}
	if view.Totals.Present != 8 || view.Totals.Absent != 6 || view.Totals.Total != 16 {
		t.Errorf("合计行错误: %+v", view.Totals)
	}

	view, err = svc.Statistics(context.Background(), "tok", "2026-08-01", "2026-08-30", "bob")
	if err != nil {
		t.Fatalf("Statistics 应成功: %v", err)
	}
	if len(view.Rows) != 1 || view.Rows[0].User.InGameName != "Bob" {
		t.Fatalf("搜索 bob 应只剩一行, 实际 %d", len(view.Rows))
	}
	if view.Totals.Present != 3 {
		t.Errorf("过滤后合计应随之变化, 实际 %+v", view.Totals)
	}

	if _, err := svc.Statistics(context.Background(), "tok", "bad", "2026-08-30", ""); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("非法日期期望 ErrInvalidDate, 实际 %v", err)
	}
}

func TestAttendanceRoster(t *testing.T) {
	repo, m := newTestRepo()
	svc := NewAttendanceService(testConfig(), repo, zap.NewNop())

	status := model.StatusPresent
	checkTime := "20:05"
	m.dashboard.checkin = &dto.CheckinStatusResult{
		Users: []model.CheckinUser{{
			ID: 1, InGameName: "Alice", HasCheckedIn: true,
			Sessions: map[string]*model.SessionCheckState{
				"1": {Status: &status, CheckInTime: &checkTime},
			},
		}},
		RoundsConfig: []model.Round{{ID: 1, Name: "รอบเย็น"}},
	}

	roster, err := svc.Roster(context.Background(), "tok", "2026-08-30")
	if err != nil {
		t.Fatalf("Roster 应成功: %v", err)
	}
	if roster.Date != "2026-08-30" || len(roster.Users) != 1 {
		t.Fatalf("名册内容错误: %+v", roster)
	}
	if len(roster.Rounds) != 1 || roster.Rounds[0].Name != "รอบเย็น" {
		t.Fatalf("应优先使用远端 roundsConfig, 实际 %+v", roster.Rounds)
	}

	// 远端未带场次时回退设置
	m.dashboard.checkin.RoundsConfig = nil
	roster, err = svc.Roster(context.Background(), "tok", "2026-08-30")
	if err != nil {
		t.Fatalf("Roster 应成功: %v", err)
	}
	if len(roster.Rounds) != 3 {
		t.Fatalf("缺省场次应回退默认三场, 实际 %+v", roster.Rounds)
	}

	if _, err := svc.Roster(context.Background(), "tok", "bad-date"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("非法日期期望 ErrInvalidDate, 实际 %v", err)
	}
}
