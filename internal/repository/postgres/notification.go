package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type NotificationRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewNotificationRepository(writerDB, readerDB *gorm.DB) *NotificationRepository {
	return &NotificationRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *NotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(notification).Error
}

func (r *NotificationRepository) List(ctx context.Context, filter domain.NotificationFilter) ([]domain.Notification, error) {
	var notifications []domain.Notification

	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if filter.CustomerID != "" {
		db = db.Where("customer_id = ?", filter.CustomerID)
	} else {
		// Staff inbox: notifications without a customer target.
		db = db.Where("customer_id IS NULL")
	}
	if filter.Unread != nil {
		db = db.Where("read = ?", !*filter.Unread)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("created_at DESC").Find(&notifications).Error; err != nil {
		return nil, err
	}

	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		UpdateColumn("read", true).Error
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, tenantID string) (int64, error) {
	result := r.writerDB.WithContext(ctx).
		Model(&domain.Notification{}).
		Where("tenant_id = ? AND customer_id IS NULL AND read = false", tenantID).
		UpdateColumn("read", true)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
