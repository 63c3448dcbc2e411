package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

// ── 成员管理业务错误 ──

var (
	ErrSelfRoleChange = errors.New("ไม่สามารถเปลี่ยนบทบาทของตัวเองได้")
	ErrSelfDelete     = errors.New("ไม่สามารถลบบัญชีของตัวเองได้")
)

// MemberService 成员管理业务接口（管理员）
type MemberService interface {
	List(ctx context.Context, token string) ([]model.User, error)
	Create(ctx context.Context, token string, req *dto.CreateMemberRequest) error
	// Update 编辑成员；callerID 用于拦截管理员给自己降权
	Update(ctx context.Context, token string, id, callerID int64, req *dto.UpdateMemberRequest) error
	ResetPassword(ctx context.Context, token string, id int64) (*dto.ResetPasswordResult, error)
	// Delete 删除成员；不允许删除自己
	Delete(ctx context.Context, token string, id, callerID int64) error
}

type memberService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewMemberService 创建 MemberService 实例
func NewMemberService(repo *repository.Repository, logger *zap.Logger) MemberService {
	return &memberService{repo: repo, logger: logger}
}

func (s *memberService) List(ctx context.Context, token string) ([]model.User, error) {
	return s.repo.Member.List(ctx, token)
}

func (s *memberService) Create(ctx context.Context, token string, req *dto.CreateMemberRequest) error {
	if err := s.repo.Member.Create(ctx, token, req); err != nil {
		return err
	}
	s.logger.Info("创建成员", zap.String("name", req.InGameName), zap.String("role", req.Role))
	return nil
}

func (s *memberService) Update(ctx context.Context, token string, id, callerID int64, req *dto.UpdateMemberRequest) error {
	if id == callerID && req.Role != nil && *req.Role != string(model.RoleAdmin) {
		return ErrSelfRoleChange
	}
	if err := s.repo.Member.Update(ctx, token, id, req); err != nil {
		return err
	}
	s.logger.Info("更新成员", zap.Int64("user_id", id))
	return nil
}

func (s *memberService) ResetPassword(ctx context.Context, token string, id int64) (*dto.ResetPasswordResult, error) {
	result, err := s.repo.Member.ResetPassword(ctx, token, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info("重置成员密码", zap.Int64("user_id", id))
	return result, nil
}

func (s *memberService) Delete(ctx context.Context, token string, id, callerID int64) error {
	if id == callerID {
		return ErrSelfDelete
	}
	if err := s.repo.Member.Delete(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("删除成员", zap.Int64("user_id", id))
	return nil
}
