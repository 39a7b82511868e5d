package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type SeasonalRateRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewSeasonalRateRepository(writerDB, readerDB *gorm.DB) *SeasonalRateRepository {
	return &SeasonalRateRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *SeasonalRateRepository) Create(ctx context.Context, rate *domain.SeasonalRate) error {
	return r.writerDB.WithContext(ctx).Create(rate).Error
}

func (r *SeasonalRateRepository) Update(ctx context.Context, rate *domain.SeasonalRate) error {
	return r.writerDB.WithContext(ctx).Save(rate).Error
}

func (r *SeasonalRateRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.SeasonalRate{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

// ListForRoom orders priority-descending, created-ascending. The pricing
// resolver takes the first matching rate, so this order is the tie-break.
func (r *SeasonalRateRepository) ListForRoom(ctx context.Context, tenantID, roomID string) ([]domain.SeasonalRate, error) {
	var rates []domain.SeasonalRate
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ? AND room_id = ?", tenantID, roomID).
		Order("priority DESC, created_at ASC").
		Find(&rates).Error
	if err != nil {
		return nil, err
	}
	return rates, nil
}
