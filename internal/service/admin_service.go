package service

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// ── 金库与设置业务错误 ──

var (
	ErrInvalidAmount = errors.New("จำนวนเงินต้องมากกว่า 0")
	ErrInvalidRounds = errors.New("รูปแบบรอบเช็คชื่อไม่ถูกต้อง")
)

// WalletService 帮派金库业务接口
type WalletService interface {
	Get(ctx context.Context, token string) (*model.Wallet, error)
	AddTransaction(ctx context.Context, token string, req *dto.WalletTxRequest) error
}

type walletService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewWalletService 创建 WalletService 实例
func NewWalletService(repo *repository.Repository, logger *zap.Logger) WalletService {
	return &walletService{repo: repo, logger: logger}
}

func (s *walletService) Get(ctx context.Context, token string) (*model.Wallet, error) {
	return s.repo.Wallet.Get(ctx, token)
}

func (s *walletService) AddTransaction(ctx context.Context, token string, req *dto.WalletTxRequest) error {
	if req.Amount <= 0 {
		return ErrInvalidAmount
	}
	if err := s.repo.Wallet.AddTransaction(ctx, token, req); err != nil {
		return err
	}
	s.logger.Info("金库记账",
		zap.String("type", req.Type),
		zap.Int64("amount", req.Amount),
		zap.String("description", req.Description))
	return nil
}

// SettingService 全局设置业务接口
type SettingService interface {
	List(ctx context.Context, token string) ([]model.Setting, error)
	Put(ctx context.Context, token, key, value string) error
	// SaveRounds 保存场次配置；写入前校验 JSON 结构
	SaveRounds(ctx context.Context, token string, rounds []model.Round) error
	// ParseRoundsJSON 校验并规范化场次配置 JSON
	ParseRoundsJSON(raw string) ([]model.Round, error)
}

type settingService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewSettingService 创建 SettingService 实例
func NewSettingService(repo *repository.Repository, logger *zap.Logger) SettingService {
	return &settingService{repo: repo, logger: logger}
}

func (s *settingService) List(ctx context.Context, token string) ([]model.Setting, error) {
	return s.repo.Setting.List(ctx, token)
}

func (s *settingService) Put(ctx context.Context, token, key, value string) error {
	if err := s.repo.Setting.Put(ctx, token, key, value); err != nil {
		return err
	}
	s.logger.Info("更新设置", zap.String("key", key))
	return nil
}

func (s *settingService) ParseRoundsJSON(raw string) ([]model.Round, error) {
	var rounds []model.Round
	if err := json.Unmarshal([]byte(raw), &rounds); err != nil {
		return nil, ErrInvalidRounds
	}
	if len(rounds) == 0 {
		return nil, ErrInvalidRounds
	}
	seen := make(map[int]struct{}, len(rounds))
	for _, r := range rounds {
		if r.ID <= 0 {
			return nil, ErrInvalidRounds
		}
		if _, dup := seen[r.ID]; dup {
			return nil, ErrInvalidRounds
		}
		seen[r.ID] = struct{}{}
	}
	return rounds, nil
}

func (s *settingService) SaveRounds(ctx context.Context, token string, rounds []model.Round) error {
	if len(rounds) == 0 {
		return ErrInvalidRounds
	}
	raw, err := json.Marshal(rounds)
	if err != nil {
		return err
	}
	return s.Put(ctx, token, model.SettingAttendanceRounds, string(raw))
}
