package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
)

type NotificationService struct {
	repo repository.Repository
}

func NewNotificationService(repo repository.Repository) *NotificationService {
	return &NotificationService{repo: repo}
}

func (s *NotificationService) List(ctx context.Context, filter domain.NotificationFilter) ([]dto.NotificationResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	notifications, err := s.repo.Notification().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromNotifications(notifications), nil
}

func (s *NotificationService) MarkRead(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Notification().MarkRead(ctx, tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationService) MarkAllRead(ctx context.Context, tenantID string) (int64, error) {
	return s.repo.Notification().MarkAllRead(ctx, tenantID)
}

// Activity returns the tenant's audit trail feed.
func (s *NotificationService) Activity(ctx context.Context, filter domain.ActivityFilter) ([]dto.ActivityResponse, error) {
	if filter.Limit <= 0 {
		filter.Limit = 50
	}
	entries, err := s.repo.Activity().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromActivities(entries), nil
}
