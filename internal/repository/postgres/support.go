package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type SupportRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSupportRepository(writerDB, readerDB *gorm.DB) *SupportRepository {
	return &SupportRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SupportRepository) CreateThread(ctx context.Context, thread *domain.SupportThread) error {
	return r.writerDB.WithContext(ctx).Create(thread).Error
}

func (r *SupportRepository) GetThread(ctx context.Context, tenantID, id string) (*domain.SupportThread, error) {
	var thread domain.SupportThread
	err := r.readerDB.WithContext(ctx).
		Preload("Messages", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&thread, "tenant_id = ? AND id = ?", tenantID, id).Error
	if err != nil {
		return nil, err
	}
	return &thread, nil
}

func (r *SupportRepository) ListThreads(ctx context.Context, tenantID string, customerID *string, status domain.SupportStatus) ([]domain.SupportThread, error) {
	var threads []domain.SupportThread

	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", tenantID)
	if customerID != nil {
		db = db.Where("customer_id = ?", *customerID)
	}
	if status != "" {
		db = db.Where("status = ?", status)
	}

	if err := db.Order("updated_at DESC").Find(&threads).Error; err != nil {
		return nil, err
	}
	return threads, nil
}

func (r *SupportRepository) AddMessage(ctx context.Context, message *domain.SupportMessage) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(message).Error
}

func (r *SupportRepository) UpdateThreadStatus(ctx context.Context, tenantID, id string, status domain.SupportStatus) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.SupportThread{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		UpdateColumn("status", status).Error
}
