package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/Supakit1111/FiveM-Wab/internal/dto"
	"github.com/Supakit1111/FiveM-Wab/internal/model"
	"github.com/Supakit1111/FiveM-Wab/internal/repository"
)

var ErrAnnouncementDates = errors.New("วันสิ้นสุดต้องไม่ก่อนวันเริ่มต้น")

// AnnouncementService 公告业务接口
type AnnouncementService interface {
	List(ctx context.Context, token string) ([]model.Announcement, error)
	Create(ctx context.Context, token string, form *dto.AnnouncementForm) error
	Update(ctx context.Context, token string, id int64, form *dto.AnnouncementForm) error
	Delete(ctx context.Context, token string, id int64) error
}

type announcementService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAnnouncementService 创建 AnnouncementService 实例
func NewAnnouncementService(repo *repository.Repository, logger *zap.Logger) AnnouncementService {
	return &announcementService{repo: repo, logger: logger}
}

func (s *announcementService) List(ctx context.Context, token string) ([]model.Announcement, error) {
	return s.repo.Announcement.List(ctx, token)
}

func validateAnnouncementDates(form *dto.AnnouncementForm) error {
	start, err := time.Parse("2006-01-02", form.StartDate)
	if err != nil {
		return ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", form.EndDate)
	if err != nil {
		return ErrInvalidDate
	}
	if end.Before(start) {
		return ErrAnnouncementDates
	}
	return nil
}

func (s *announcementService) Create(ctx context.Context, token string, form *dto.AnnouncementForm) error {
	if err := validateAnnouncementDates(form); err != nil {
		return err
	}
	if err := s.repo.Announcement.Create(ctx, token, form); err != nil {
		return err
	}
	s.logger.Info("创建公告", zap.String("title", form.Title), zap.String("priority", form.Priority))
	return nil
}

func (s *announcementService) Update(ctx context.Context, token string, id int64, form *dto.AnnouncementForm) error {
	if err := validateAnnouncementDates(form); err != nil {
		return err
	}
	if err := s.repo.Announcement.Update(ctx, token, id, form); err != nil {
		return err
	}
	s.logger.Info("更新公告", zap.Int64("announcement_id", id))
	return nil
}

func (s *announcementService) Delete(ctx context.Context, token string, id int64) error {
	if err := s.repo.Announcement.Delete(ctx, token, id); err != nil {
		return err
	}
	s.logger.Info("删除公告", zap.Int64("announcement_id", id))
	return nil
}
