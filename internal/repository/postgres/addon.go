package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type AddonRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewAddonRepository(writerDB, readerDB *gorm.DB) *AddonRepository {
	return &AddonRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *AddonRepository) Create(ctx context.Context, addon *domain.Addon) error {
	return r.writerDB.WithContext(ctx).Create(addon).Error
}

func (r *AddonRepository) Update(ctx context.Context, addon *domain.Addon) error {
	return r.writerDB.WithContext(ctx).Save(addon).Error
}

func (r *AddonRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.Addon{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

func (r *AddonRepository) List(ctx context.Context, tenantID string) ([]domain.Addon, error) {
	var addons []domain.Addon
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&addons).Error
	if err != nil {
		return nil, err
	}
	return addons, nil
}
