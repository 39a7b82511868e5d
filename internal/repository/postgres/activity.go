package postgres

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type ActivityRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewActivityRepository(writerDB, readerDB *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *ActivityRepository) Create(ctx context.Context, entry *domain.ActivityEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(entry).Error
}

func (r *ActivityRepository) List(ctx context.Context, filter domain.ActivityFilter) ([]domain.ActivityEntry, error) {
	var entries []domain.ActivityEntry

	db := r.readerDB.WithContext(ctx).Where("tenant_id = ?", filter.TenantID)

	if filter.Action != "" {
		db = db.Where("action = ?", filter.Action)
	}
	if filter.ResourceType != "" {
		db = db.Where("resource_type = ?", filter.ResourceType)
	}
	if filter.ResourceID != "" {
		db = db.Where("resource_id = ?", filter.ResourceID)
	}
	if !filter.StartTime.IsZero() {
		db = db.Where("created_at >= ?", filter.StartTime)
	}
	if !filter.EndTime.IsZero() {
		db = db.Where("created_at <= ?", filter.EndTime)
	}

	if filter.Limit > 0 {
		db = db.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		db = db.Offset(filter.Offset)
	}

	if err := db.Order("created_at DESC").Find(&entries).Error; err != nil {
		return nil, err
	}

	return entries, nil
}
