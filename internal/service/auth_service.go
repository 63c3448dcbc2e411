package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/config"
	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
	"github.com/Supakit1111/FiveM-Wab/pkg/httpapi"
	"github.com/Supakit1111/FiveM-Wab/pkg/jwt"
	"github.com/Supakit1111/FiveM-Wab/pkg/session"
)

// ── 认证模块业务错误 ──

var (
	ErrLoginFailed    = errors.New("เบอร์โทรหรือรหัสผ่านไม่ถูกต้อง")
	ErrSessionExpired = errors.New("เซสชันหมดอายุ กรุณาเข้าสู่ระบบใหม่")
)

// AuthService 认证业务接口
// 登录成功后远端 API Token 存入会话存储，浏览器只拿到签名的会话 JWT
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (cookieToken string, sess *session.Session, err error)
	Logout(ctx context.Context, sessionID string) error
	// Current 根据 Cookie 中的 JWT 取回会话；token 无效或会话丢失返回 ErrSessionExpired
	Current(ctx context.Context, cookieToken string) (*session.Session, error)
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	store  session.Store
	jwtMgr *jwt.Manager
	logger *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(cfg *config.Config, repo *repository.Repository, store session.Store, jwtMgr *jwt.Manager, logger *zap.Logger) AuthService {
	return &authService{cfg: cfg, repo: repo, store: store, jwtMgr: jwtMgr, logger: logger}
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (string, *session.Session, error) {
	result, err := s.repo.Auth.Login(ctx, req.PhoneNumber, req.Password)
	if err != nil {
		if apiErr, ok := httpapi.AsError(err); ok && apiErr.Status == 401 {
			return "", nil, ErrLoginFailed
		}
		s.logger.Error("登录请求失败", zap.Error(err))
		return "", nil, err
	}

	sess := &session.Session{
		ID:        uuid.New().String(),
		APIToken:  result.Token,
		UserID:    result.User.ID,
		UserName:  result.User.InGameName,
		Phone:     result.User.PhoneNumber,
		Role:      string(result.User.Role),
		CreatedAt: time.Now(),
	}
	if result.User.ProfileImageURL != nil {
		sess.AvatarURL = *result.User.ProfileImageURL
	}

	if err := s.store.Save(ctx, sess, s.cfg.Session.TTL); err != nil {
		s.logger.Error("保存会话失败", zap.Error(err))
		return "", nil, err
	}

	cookieToken, err := s.jwtMgr.GenerateSessionToken(sess.ID, sess.Role)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("成员登录成功",
		zap.Int64("user_id", sess.UserID),
		zap.String("name", sess.UserName),
		zap.String("role", sess.Role))
	return cookieToken, sess, nil
}

func (s *authService) Logout(ctx context.Context, sessionID string) error {
	if err := s.store.Delete(ctx, sessionID); err != nil && !errors.Is(err, session.ErrNotFound) {
		return err
	}
	return nil
}

func (s *authService) Current(ctx context.Context, cookieToken string) (*session.Session, error) {
	claims, err := s.jwtMgr.ParseToken(cookieToken)
	if err != nil {
		return nil, ErrSessionExpired
	}

	sess, err := s.store.Get(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, ErrSessionExpired
		}
		return nil, err
	}
	return sess, nil
}
