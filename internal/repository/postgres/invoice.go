package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
)

type InvoiceRepository struct {
	writerDB *gorm.DB
	readerDB *gorm.DB
}

func NewInvoiceRepository(writerDB, readerDB *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{
		writerDB: writerDB,
		readerDB: readerDB,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, invoice *domain.Invoice) error {
	if invoice.ID == "" {
		invoice.ID = uuid.New().String()
	}
	return r.writerDB.WithContext(ctx).Create(invoice).Error
}

func (r *InvoiceRepository) GetByBookingID(ctx context.Context, tenantID, bookingID string) (*domain.Invoice, error) {
	var invoice domain.Invoice
	err := r.readerDB.WithContext(ctx).
		First(&invoice, "tenant_id = ? AND booking_id = ?", tenantID, bookingID).Error
	if err != nil {
		return nil, err
	}
	return &invoice, nil
}

func (r *InvoiceRepository) ListArchivable(ctx context.Context, issuedBefore time.Time, limit int) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	err := r.readerDB.WithContext(ctx).
		Where("status = ? AND issued_at < ?", domain.InvoiceIssued, issuedBefore).
		Order("issued_at ASC").
		Limit(limit).
		Find(&invoices).Error
	if err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) MarkArchived(ctx context.Context, id string, archivedAt time.Time) error {
	return r.writerDB.WithContext(ctx).
		Model(&domain.Invoice{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":      domain.InvoiceArchived,
			"archived_at": archivedAt,
		}).Error
}
