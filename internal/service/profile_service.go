package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

// ── 个人账户业务错误 ──

var (
	ErrPasswordMismatch = errors.New("รหัสผ่านใหม่ทั้งสองช่องไม่ตรงกัน")
	ErrPasswordTooShort = errors.New("รหัสผ่านใหม่ต้องมีอย่างน้อย 6 ตัวอักษร")
	ErrWrongPassword    = errors.New("รหัสผ่านปัจจุบันไม่ถูกต้อง")
)

// ProfileService 个人账户业务接口
type ProfileService interface {
	Me(ctx context.Context, token string) (*model.User, error)
	// UpdateName 修改游戏内名称并同步会话里的显示名
	UpdateName(ctx context.Context, sess *session.Session, req *dto.UpdateNameRequest) error
	// ChangePassword 修改密码；确认匹配与长度在控制台侧先行校验
	ChangePassword(ctx context.Context, token string, req *dto.ChangePasswordRequest) error
}

type profileService struct {
	cfg    *config.Config
	repo   *repository.Repository
	store  session.Store
	logger *zap.Logger
}

// NewProfileService 创建 ProfileService 实例
func NewProfileService(cfg *config.Config, repo *repository.Repository, store session.Store, logger *zap.Logger) ProfileService {
	return &profileService{cfg: cfg, repo: repo, store: store, logger: logger}
}

func (s *profileService) Me(ctx context.Context, token string) (*model.User, error) {
	return s.repo.Profile.Me(ctx, token)
}

func (s *profileService) UpdateName(ctx context.Context, sess *session.Session, req *dto.UpdateNameRequest) error {
	name := strings.TrimSpace(req.InGameName)
	if name == "" {
		return errors.New("กรุณากรอกชื่อในเกม")
	}
	if err := s.repo.Profile.UpdateName(ctx, sess.APIToken, name); err != nil {
		return err
	}

	// 会话里的显示名同步更新，导航栏立刻生效
	sess.UserName = name
	if err := s.store.Save(ctx, sess, s.cfg.Session.TTL); err != nil {
		s.logger.Warn("会话显示名同步失败", zap.Error(err))
	}

	s.logger.Info("修改游戏内名称", zap.Int64("user_id", sess.UserID), zap.String("name", name))
	return nil
}

func (s *profileService) ChangePassword(ctx context.Context, token string, req *dto.ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return ErrPasswordMismatch
	}
	if len(req.NewPassword) < 6 {
		return ErrPasswordTooShort
	}

	if err := s.repo.Profile.ChangePassword(ctx, token, req.CurrentPassword, req.NewPassword); err != nil {
		if apiErr, ok := httpapi.AsError(err); ok {
			// 远端的英文提示翻译成界面语言
			if apiErr.Status == 400 || apiErr.Status == 401 {
				if strings.Contains(strings.ToLower(apiErr.Message), "password") {
					return ErrWrongPassword
				}
			}
		}
		return err
	}

	s.logger.Info("成员修改密码")
	return nil
}
