package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type DiscoveryRepository struct {
	readerDB *gorm.DB
}

func NewDiscoveryRepository(readerDB *gorm.DB) *DiscoveryRepository {
	return &DiscoveryRepository{readerDB: readerDB}
}

const propertySummarySelect = `
	SELECT
		t.id AS tenant_id,
		t.name,
		t.slug,
		t.description,
		t.country,
		t.city,
		t.latitude,
		t.longitude,
		t.categories,
		t.featured,
		t.currency,
		COALESCE(MIN(r.base_price_per_night), 0) AS min_nightly_price,
		COUNT(DISTINCT rv.id) AS review_count,
		COALESCE(AVG(rv.rating), 0) AS avg_rating,
		EXISTS (
			SELECT 1 FROM coupons c
			WHERE c.tenant_id = t.id AND c.active = true
		) AS has_active_coupon
	FROM tenants t
	LEFT JOIN rooms r ON r.tenant_id = t.id AND r.active = true
	LEFT JOIN reviews rv ON rv.tenant_id = t.id`

// ListDiscoverable materializes every listed property with its aggregates.
// Filtering, sorting and paging happen in the discovery service; this query
// only bounds the candidate set to discoverable tenants in good standing.
func (r *DiscoveryRepository) ListDiscoverable(ctx context.Context) ([]domain.PropertySummary, error) {
	var properties []domain.PropertySummary

	query := propertySummarySelect + `
	WHERE t.discoverable = true
	AND t.subscription_status IN ('trial', 'active')
	GROUP BY t.id`

	if err := r.readerDB.WithContext(ctx).Raw(query).Scan(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list discoverable properties: %w", err)
	}

	return properties, nil
}

func (r *DiscoveryRepository) GetSummaryBySlug(ctx context.Context, slug string) (*domain.PropertySummary, error) {
	var property domain.PropertySummary

	query := propertySummarySelect + `
	WHERE t.slug = ?
	AND t.discoverable = true
	GROUP BY t.id`

	result := r.readerDB.WithContext(ctx).Raw(query, slug).Scan(&property)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to load property %s: %w", slug, result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	return &property, nil
}
