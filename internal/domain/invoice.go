package domain

import (
	"time"
)

type InvoiceStatus string

const (
	InvoiceIssued   InvoiceStatus = "issued"
	InvoiceArchived InvoiceStatus = "archived"
)

// Invoice is generated at most once per booking, when payment_status first
// reaches paid. The unique index on booking_id backs the check-then-create
// idempotency.
type Invoice struct {
	ID         string        `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	BookingID  string        `gorm:"type:uuid;not null;unique" json:"booking_id"`
	Number     string        `gorm:"type:text;not null" json:"number"`
	Amount     float64       `gorm:"type:numeric;not null" json:"amount"`
	Currency   string        `gorm:"type:text;not null" json:"currency"`
	Status     InvoiceStatus `gorm:"type:text;not null;default:'issued'" json:"status"`
	IssuedAt   time.Time     `gorm:"type:timestamp with time zone;not null" json:"issued_at"`
	ArchivedAt *time.Time    `gorm:"type:timestamp with time zone" json:"archived_at,omitempty"`
	CreatedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Booking    *Booking      `gorm:"foreignKey:BookingID" json:"-"`
}

func (Invoice) TableName() string {
	return "invoices"
}
