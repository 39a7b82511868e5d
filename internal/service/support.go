package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type SupportService struct {
	repo      repository.Repository
	publisher NotificationPublisher
	logger    *logger.Logger
}

func NewSupportService(repo repository.Repository, logger *logger.Logger) *SupportService {
	return &SupportService{repo: repo, logger: logger}
}

// SetNotificationPublisher sets the live-stream publisher for staff
// notifications
func (s *SupportService) SetNotificationPublisher(publisher NotificationPublisher) {
	s.publisher = publisher
}

// OpenThread starts a support conversation. CustomerID is nil when staff
// open a thread on a guest's behalf.
func (s *SupportService) OpenThread(ctx context.Context, tenantID string, customerID *string, req dto.CreateSupportThreadRequest) (*dto.SupportThreadResponse, error) {
	thread := &domain.SupportThread{
		TenantID:   tenantID,
		CustomerID: customerID,
		Subject:    req.Subject,
		Status:     domain.SupportOpen,
	}
	if err := s.repo.Support().CreateThread(ctx, thread); err != nil {
		return nil, err
	}

	author := domain.AuthorStaff
	authorID := ""
	if customerID != nil {
		author = domain.AuthorCustomer
		authorID = *customerID
	}
	message := &domain.SupportMessage{
		ID:         uuid.New().String(),
		ThreadID:   thread.ID,
		TenantID:   tenantID,
		AuthorType: author,
		AuthorID:   authorID,
		Body:       req.Body,
	}
	if err := s.repo.Support().AddMessage(ctx, message); err != nil {
		return nil, err
	}
	thread.Messages = []domain.SupportMessage{*message}

	s.notifyStaff(ctx, thread)
	return dto.FromSupportThread(thread), nil
}

func (s *SupportService) GetThread(ctx context.Context, tenantID, id string) (*dto.SupportThreadResponse, error) {
	thread, err := s.repo.Support().GetThread(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	return dto.FromSupportThread(thread), nil
}

// ListThreads lists the tenant's threads; a non-nil customerID narrows the
// result to that guest's own conversations (the portal path).
func (s *SupportService) ListThreads(ctx context.Context, tenantID string, customerID *string, status domain.SupportStatus) ([]dto.SupportThreadResponse, error) {
	threads, err := s.repo.Support().ListThreads(ctx, tenantID, customerID, status)
	if err != nil {
		return nil, err
	}
	return dto.FromSupportThreads(threads), nil
}

// Reply appends a message to an open thread.
func (s *SupportService) Reply(ctx context.Context, tenantID, threadID string, author domain.SupportAuthor, authorID string, req dto.AddSupportMessageRequest) (*dto.SupportMessageResponse, error) {
	thread, err := s.repo.Support().GetThread(ctx, tenantID, threadID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrThreadNotFound
		}
		return nil, err
	}
	if thread.Status == domain.SupportClosed {
		return nil, ErrThreadClosed
	}

	message := &domain.SupportMessage{
		ID:         uuid.New().String(),
		ThreadID:   thread.ID,
		TenantID:   tenantID,
		AuthorType: author,
		AuthorID:   authorID,
		Body:       req.Body,
	}
	if err := s.repo.Support().AddMessage(ctx, message); err != nil {
		return nil, err
	}

	if author == domain.AuthorStaff {
		s.logStaffReply(ctx, thread)
	} else {
		s.notifyStaff(ctx, thread)
	}
	return dto.FromSupportMessage(message), nil
}

func (s *SupportService) CloseThread(ctx context.Context, tenantID, id string) error {
	if err := s.repo.Support().UpdateThreadStatus(ctx, tenantID, id, domain.SupportClosed); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrThreadNotFound
		}
		return err
	}
	return nil
}

func (s *SupportService) notifyStaff(ctx context.Context, thread *domain.SupportThread) {
	notification := &domain.Notification{
		ID:       uuid.New().String(),
		TenantID: thread.TenantID,
		Type:     domain.NotifySupportMessage,
		Title:    "New support message",
		Body:     thread.Subject,
	}
	if err := s.repo.Notification().Create(ctx, notification); err != nil {
		s.logger.Errorf("Failed to create support notification for thread %s: %v", thread.ID, err)
		return
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, dto.FromNotification(notification)); err != nil {
			s.logger.Errorf("Failed to publish support notification for thread %s: %v", thread.ID, err)
		}
	}
}

func (s *SupportService) logStaffReply(ctx context.Context, thread *domain.SupportThread) {
	entry := &domain.ActivityEntry{
		ID:           uuid.New().String(),
		TenantID:     thread.TenantID,
		Action:       domain.ActivitySupportReplied,
		ResourceType: "support_thread",
		ResourceID:   thread.ID,
		Message:      "Staff replied to " + thread.Subject,
	}
	if err := s.repo.Activity().Create(ctx, entry); err != nil {
		s.logger.Errorf("Failed to log support activity for thread %s: %v", thread.ID, err)
	}
}
