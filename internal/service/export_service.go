package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
)

// ── 导出模块业务错误 ──

var (
	ErrExportNoRows       = errors.New("ไม่มีข้อมูลสำหรับส่งออก")
	ErrExportGenerateFail = errors.New("สร้างไฟล์ Excel ไม่สำเร็จ")
)

// ExportService 导出业务接口
//
// 设计说明：
//   - 考勤表导出为 Excel (.xlsx)：行为成员、列为日期，单元格为各场次标记
//   - 场次配置导出为 iCalendar 订阅源：有起止时间的场次生成每日重复事件
//   - 导出以 bytes.Buffer / 字符串返回，由 Handler 层设置响应头后写入
type ExportService interface {
	// ExportSheet 导出考勤表为 Excel
	ExportSheet(ctx context.Context, token string, q *dto.SheetQuery) (*bytes.Buffer, string, error)
	// RoundsCalendar 生成场次配置的 ICS 日历
	RoundsCalendar(ctx context.Context, token string) (string, error)
}

type exportService struct {
	cfg        *config.Config
	attendance AttendanceService
	logger     *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(cfg *config.Config, attendance AttendanceService, logger *zap.Logger) ExportService {
	return &exportService{cfg: cfg, attendance: attendance, logger: logger}
}

// statusText 单元格里的状态文字
func statusText(mark dto.RoundMark) string {
	if !mark.Filled {
		return "-"
	}
	return string(mark.Status)
}

func (s *exportService) ExportSheet(ctx context.Context, token string, q *dto.SheetQuery) (*bytes.Buffer, string, error) {
	sheet, err := s.attendance.BuildSheet(ctx, token, q)
	if err != nil {
		return nil, "", err
	}
	if len(sheet.Rows) == 0 {
		return nil, "", ErrExportNoRows
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Attendance"
	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(sheetName, "A", "A", 22)
	f.SetColWidth(sheetName, "B", "B", 16)
	for i := range sheet.Days {
		col, _ := excelize.ColumnNumberToName(3 + i)
		f.SetColWidth(sheetName, col, col, 14)
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})

	// 表头：成员 / 电话 / 各日期列
	row := 1
	f.SetCellValue(sheetName, cell("A", row), "ชื่อในเกม")
	f.SetCellValue(sheetName, cell("B", row), "เบอร์โทร")
	for i, day := range sheet.Days {
		f.SetCellValue(sheetName, cell(colName(3+i), row), day.Date.Format("02/01"))
	}
	lastCol := colName(2 + len(sheet.Days))
	f.SetCellStyle(sheetName, cell("A", row), cell(lastCol, row), headerStyle)

	// 数据行：每格拼接各场次标记，如 "O/L/-"
	row = 2
	for _, r := range sheet.Rows {
		f.SetCellValue(sheetName, cell("A", row), r.User.InGameName)
		f.SetCellValue(sheetName, cell("B", row), r.User.PhoneNumber)
		for i, c := range r.Cells {
			text := ""
			for j, mark := range c.Marks {
				if j > 0 {
					text += "/"
				}
				text += statusText(mark)
			}
			f.SetCellValue(sheetName, cell(colName(3+i), row), text)
		}
		row++
	}

	// 合计行：逐日到场人数
	f.SetCellValue(sheetName, cell("A", row), "มาทั้งหมด")
	for i, day := range sheet.Days {
		f.SetCellValue(sheetName, cell(colName(3+i), row), day.Present)
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("写入 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	endKey := time.Now().In(s.attendance.Location()).Format("2006-01-02")
	if len(sheet.Days) > 0 {
		endKey = sheet.Days[len(sheet.Days)-1].Key
	}
	filename := fmt.Sprintf("attendance_%s.xlsx", endKey)
	return buf, filename, nil
}

func (s *exportService) RoundsCalendar(ctx context.Context, token string) (string, error) {
	rounds := s.attendance.Rounds(ctx, token)
	loc := s.attendance.Location()
	now := time.Now().In(loc)

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//gm-console//attendance-rounds//TH")

	for _, r := range rounds {
		start, end, ok := roundTimes(r, now, loc)
		if !ok {
			continue
		}

		evt := cal.AddEvent(fmt.Sprintf("round-%d@gm-console", r.ID))
		evt.SetDtStampTime(now)
		evt.SetStartAt(start)
		evt.SetEndAt(end)
		name := r.Name
		if name == "" {
			name = fmt.Sprintf("รอบเช็คชื่อที่ %d", r.ID)
		}
		evt.SetSummary(name)
		// 场次每天重复
		evt.AddRrule("FREQ=DAILY")
	}

	return cal.Serialize(), nil
}

// roundTimes 将 "HH:MM" 起止时间落到今天的具体时刻
func roundTimes(r model.Round, day time.Time, loc *time.Location) (time.Time, time.Time, bool) {
	if r.StartTime == "" || r.EndTime == "" {
		return time.Time{}, time.Time{}, false
	}
	st, err := time.ParseInLocation("15:04", r.StartTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	et, err := time.ParseInLocation("15:04", r.EndTime, loc)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	start := time.Date(day.Year(), day.Month(), day.Day(), st.Hour(), st.Minute(), 0, 0, loc)
	end := time.Date(day.Year(), day.Month(), day.Day(), et.Hour(), et.Minute(), 0, 0, loc)
	if !end.After(start) {
		// 跨天场次顺延到次日
		end = end.AddDate(0, 0, 1)
	}
	return start, end, true
}

// ── Excel 坐标小工具 ──

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}

func colName(n int) string {
	name, _ := excelize.ColumnNumberToName(n)
	return name
}
