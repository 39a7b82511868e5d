package postgres

import (
	"context"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type CouponRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewCouponRepository(writerDB, readerDB *gorm.DB) *CouponRepository {
	return &CouponRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *CouponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	return r.writerDB.WithContext(ctx).Create(coupon).Error
}

func (r *CouponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	return r.writerDB.WithContext(ctx).Save(coupon).Error
}

func (r *CouponRepository) Delete(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Delete(&domain.Coupon{}, "tenant_id = ? AND id = ?", tenantID, id).Error
}

func (r *CouponRepository) GetByCode(ctx context.Context, tenantID, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.readerDB.WithContext(ctx).
		First(&coupon, "tenant_id = ? AND code = ?", tenantID, code).Error
	if err != nil {
		return nil, err
	}
	return &coupon, nil
}

func (r *CouponRepository) List(ctx context.Context, tenantID string) ([]domain.Coupon, error) {
	var coupons []domain.Coupon
	err := r.readerDB.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Find(&coupons).Error
	if err != nil {
		return nil, err
	}
	return coupons, nil
}

func (r *CouponRepository) IncrementUsage(ctx context.Context, tenantID, id string) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Coupon{}).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		UpdateColumn("used_count", gorm.Expr("used_count + 1")).Error
}
