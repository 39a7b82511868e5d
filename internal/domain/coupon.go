package domain

import (
	"time"
)

type DiscountType string

const (
	DiscountPercent DiscountType = "percent"
	DiscountFixed   DiscountType = "fixed"
)

type Coupon struct {
	ID            string       `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID      string       `gorm:"type:uuid;not null;index:idx_coupons_tenant_code,unique" json:"tenant_id"`
	Code          string       `gorm:"type:text;not null;index:idx_coupons_tenant_code,unique" json:"code"`
	DiscountType  DiscountType `gorm:"type:text;not null" json:"discount_type"`
	DiscountValue float64      `gorm:"type:numeric;not null" json:"discount_value"`
	ValidFrom     *time.Time   `gorm:"type:date" json:"valid_from,omitempty"`
	ValidUntil    *time.Time   `gorm:"type:date" json:"valid_until,omitempty"`
	MaxUses       *int         `json:"max_uses,omitempty"`
	UsedCount     int          `gorm:"not null;default:0" json:"used_count"`
	Active        bool         `gorm:"not null;default:true" json:"active"`
	CreatedAt     time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time    `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Coupon) TableName() string {
	return "coupons"
}

// Usable reports whether the coupon can still be applied on the given date.
func (c *Coupon) Usable(on time.Time) bool {
	if !c.Active {
		return false
	}
	if c.ValidFrom != nil && on.Before(*c.ValidFrom) {
		return false
	}
	if c.ValidUntil != nil && on.After(*c.ValidUntil) {
		return false
	}
	if c.MaxUses != nil && c.UsedCount >= *c.MaxUses {
		return false
	}
	return true
}

// DiscountOn returns the discount amount for a booking subtotal.
func (c *Coupon) DiscountOn(subtotal float64) float64 {
	var discount float64
	switch c.DiscountType {
	case DiscountPercent:
		discount = subtotal * c.DiscountValue / 100
	case DiscountFixed:
		discount = c.DiscountValue
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
