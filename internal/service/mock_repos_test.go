package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

var errMockRemote = errors.New("远端不可用")

// ── Mock AuthRepository / ProfileRepository ──

type mockAuthRepo struct {
	result *dto.LoginResult
	err    error
}

func (m *mockAuthRepo) Login(_ context.Context, _, _ string) (*dto.LoginResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

type mockProfileRepo struct {
	me        *model.User
	changeErr error
	lastName  string
}

func (m *mockProfileRepo) Me(_ context.Context, _ string) (*model.User, error) {
	if m.me == nil {
		return nil, errMockRemote
	}
	return m.me, nil
}

func (m *mockProfileRepo) UpdateName(_ context.Context, _, inGameName string) error {
	m.lastName = inGameName
	return nil
}

func (m *mockProfileRepo) ChangePassword(_ context.Context, _, _, _ string) error {
	return m.changeErr
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	users    []model.User
	logs     []model.AttendanceLog
	myLogs   []model.AttendanceLog
	stats    []model.UserStats
	checkins []dto.CheckinRequest
	err      error
}

func (m *mockAttendanceRepo) ListUsers(_ context.Context, _ string) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockAttendanceRepo) ListLogs(_ context.Context, _ string, _, _ time.Time) ([]model.AttendanceLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.logs, nil
}

func (m *mockAttendanceRepo) ListMyLogs(_ context.Context, _ string, _, _ time.Time) ([]model.AttendanceLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.myLogs, nil
}

func (m *mockAttendanceRepo) AdminCheckin(_ context.Context, _ string, req *dto.CheckinRequest) error {
	if m.err != nil {
		return m.err
	}
	m.checkins = append(m.checkins, *req)
	return nil
}

func (m *mockAttendanceRepo) Statistics(_ context.Context, _, _, _ string) ([]model.UserStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

// ── Mock InventoryRepository ──

type mockInventoryRepo struct {
	items       []model.Item
	txs         []model.Transaction
	myTxs       []model.Transaction
	summaries   []model.DailySummary
	deposits    []dto.TransactionRequest
	withdrawals []dto.TransactionRequest
	err         error
}

func (m *mockInventoryRepo) ListItems(_ context.Context, _ string) ([]model.Item, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.items, nil
}

func (m *mockInventoryRepo) CreateItem(_ context.Context, _ string, form *dto.ItemForm) error {
	if m.err != nil {
		return m.err
	}
	m.items = append(m.items, model.Item{
		ID:           int64(len(m.items) + 1),
		Name:         form.Name,
		CurrentStock: form.CurrentStock,
	})
	return nil
}

func (m *mockInventoryRepo) UpdateItem(_ context.Context, _ string, id int64, form *dto.ItemForm) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].Name = form.Name
			m.items[i].CurrentStock = form.CurrentStock
			return nil
		}
	}
	return errMockRemote
}

func (m *mockInventoryRepo) DeleteItem(_ context.Context, _ string, id int64) error {
	for i := range m.items {
		if m.items[i].ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return errMockRemote
}

func (m *mockInventoryRepo) Deposit(_ context.Context, _ string, req *dto.TransactionRequest) error {
	if m.err != nil {
		return m.err
	}
	m.deposits = append(m.deposits, *req)
	m.applyStock(req.ItemID, req.Quantity)
	return nil
}

func (m *mockInventoryRepo) Withdraw(_ context.Context, _ string, req *dto.TransactionRequest) error {
	if m.err != nil {
		return m.err
	}
	m.withdrawals = append(m.withdrawals, *req)
	m.applyStock(req.ItemID, -req.Quantity)
	return nil
}

func (m *mockInventoryRepo) applyStock(itemID string, delta int) {
	id, _ := strconv.ParseInt(itemID, 10, 64)
	for i := range m.items {
		if m.items[i].ID == id {
			m.items[i].CurrentStock += delta
		}
	}
}

func (m *mockInventoryRepo) ListTransactions(_ context.Context, _ string, _ *dto.HistoryFilter) ([]model.Transaction, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.txs, nil
}

func (m *mockInventoryRepo) MyTransactions(_ context.Context, _ string) ([]model.Transaction, error) {
	return m.myTxs, nil
}

func (m *mockInventoryRepo) DailySummary(_ context.Context, _, _ string) ([]model.DailySummary, error) {
	return m.summaries, nil
}

// ── Mock SettingRepository ──

type mockSettingRepo struct {
	settings []model.Setting
	saved    map[string]string
	err      error
}

func (m *mockSettingRepo) List(_ context.Context, _ string) ([]model.Setting, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.settings, nil
}

func (m *mockSettingRepo) Put(_ context.Context, _, key, value string) error {
	if m.saved == nil {
		m.saved = make(map[string]string)
	}
	m.saved[key] = value
	return nil
}

// ── Mock DashboardRepository ──

type mockDashboardRepo struct {
	stats      *model.DashboardStats
	checkin    *dto.CheckinStatusResult
	activities []model.Activity
	err        error
}

func (m *mockDashboardRepo) Stats(_ context.Context, _ string) (*model.DashboardStats, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.stats, nil
}

func (m *mockDashboardRepo) CheckinStatus(_ context.Context, _ string, _, _ int, _ string) (*dto.CheckinStatusResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.checkin, nil
}

func (m *mockDashboardRepo) Activities(_ context.Context, _ string) ([]model.Activity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.activities, nil
}

// ── Mock AuditLogRepository ──

type mockAuditLogRepo struct {
	result      *dto.LogListResult
	lastTake    int
	lastSkip    int
	lastActions []string
	err         error
}

func (m *mockAuditLogRepo) List(_ context.Context, _ string, take, skip int, actionTypes []string) (*dto.LogListResult, error) {
	m.lastTake = take
	m.lastSkip = skip
	m.lastActions = actionTypes
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

// ── Mock PresenceRepository ──

type mockPresenceRepo struct {
	viewers []model.Viewer
	calls   int
	err     error
}

func (m *mockPresenceRepo) Heartbeat(_ context.Context, _ string, _ model.Viewer) ([]model.Viewer, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.viewers, nil
}

// ── Mock MemberRepository ──

type mockMemberRepo struct {
	users   []model.User
	deleted []int64
	err     error
}

func (m *mockMemberRepo) List(_ context.Context, _ string) ([]model.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.users, nil
}

func (m *mockMemberRepo) Create(_ context.Context, _ string, req *dto.CreateMemberRequest) error {
	if m.err != nil {
		return m.err
	}
	m.users = append(m.users, model.User{
		ID:          int64(len(m.users) + 1),
		InGameName:  req.InGameName,
		PhoneNumber: req.PhoneNumber,
		Role:        model.Role(req.Role),
	})
	return nil
}

func (m *mockMemberRepo) Update(_ context.Context, _ string, id int64, req *dto.UpdateMemberRequest) error {
	for i := range m.users {
		if m.users[i].ID == id {
			if req.InGameName != nil {
				m.users[i].InGameName = *req.InGameName
			}
			if req.Role != nil {
				m.users[i].Role = model.Role(*req.Role)
			}
			return nil
		}
	}
	return errMockRemote
}

func (m *mockMemberRepo) ResetPassword(_ context.Context, _ string, _ int64) (*dto.ResetPasswordResult, error) {
	return &dto.ResetPasswordResult{ResetTo: "123456"}, nil
}

func (m *mockMemberRepo) Delete(_ context.Context, _ string, id int64) error {
	m.deleted = append(m.deleted, id)
	return nil
}

// ── Mock AnnouncementRepository / WalletRepository ──

type mockAnnouncementRepo struct {
	list   []model.Announcement
	active []model.Announcement
	err    error
}

func (m *mockAnnouncementRepo) List(_ context.Context, _ string) ([]model.Announcement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.list, nil
}

func (m *mockAnnouncementRepo) Active(_ context.Context, _ string) ([]model.Announcement, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.active, nil
}

func (m *mockAnnouncementRepo) Create(_ context.Context, _ string, form *dto.AnnouncementForm) error {
	if m.err != nil {
		return m.err
	}
	m.list = append(m.list, model.Announcement{
		ID:       int64(len(m.list) + 1),
		Title:    form.Title,
		Content:  form.Content,
		Status:   model.AnnouncementStatus(form.Status),
		Priority: model.AnnouncementPriority(form.Priority),
	})
	return nil
}

func (m *mockAnnouncementRepo) Update(_ context.Context, _ string, _ int64, _ *dto.AnnouncementForm) error {
	return m.err
}

func (m *mockAnnouncementRepo) Delete(_ context.Context, _ string, _ int64) error {
	return m.err
}

type mockWalletRepo struct {
	wallet *model.Wallet
	added  []dto.WalletTxRequest
	err    error
}

func (m *mockWalletRepo) Get(_ context.Context, _ string) (*model.Wallet, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.wallet, nil
}

func (m *mockWalletRepo) AddTransaction(_ context.Context, _ string, req *dto.WalletTxRequest) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, *req)
	return nil
}

// ── 组装工具 ──

// newTestRepo 构建一个全 mock 的 Repository 聚合
func newTestRepo() (*repository.Repository, *mocks) {
	m := &mocks{
		auth:         &mockAuthRepo{},
		profile:      &mockProfileRepo{},
		member:       &mockMemberRepo{},
		attendance:   &mockAttendanceRepo{},
		inventory:    &mockInventoryRepo{},
		announcement: &mockAnnouncementRepo{},
		wallet:       &mockWalletRepo{},
		setting:      &mockSettingRepo{},
		auditLog:     &mockAuditLogRepo{},
		dashboard:    &mockDashboardRepo{},
		presence:     &mockPresenceRepo{},
	}
	repo := &repository.Repository{
		Auth:         m.auth,
		Profile:      m.profile,
		Member:       m.member,
		Attendance:   m.attendance,
		Inventory:    m.inventory,
		Announcement: m.announcement,
		Wallet:       m.wallet,
		Setting:      m.setting,
		AuditLog:     m.auditLog,
		Dashboard:    m.dashboard,
		Presence:     m.presence,
	}
	return repo, m
}

type mocks struct {
	auth         *mockAuthRepo
	profile      *mockProfileRepo
	member       *mockMemberRepo
	attendance   *mockAttendanceRepo
	inventory    *mockInventoryRepo
	announcement *mockAnnouncementRepo
	wallet       *mockWalletRepo
	setting      *mockSettingRepo
	auditLog     *mockAuditLogRepo
	dashboard    *mockDashboardRepo
	presence     *mockPresenceRepo
}
