package domain

import (
	"time"
)

// Customer is a guest account, auto-provisioned on the first public booking
// for a tenant. The session token backs the customer portal.
type Customer struct {
	ID               string     `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID         string     `gorm:"type:uuid;not null;index:idx_customers_tenant_email,unique" json:"tenant_id"`
	Email            string     `gorm:"type:text;not null;index:idx_customers_tenant_email,unique" json:"email"`
	Name             string     `gorm:"type:text;not null" json:"name"`
	Phone            string     `gorm:"type:text" json:"phone"`
	SessionToken     string     `gorm:"type:text;index" json:"-"`
	SessionExpiresAt *time.Time `gorm:"type:timestamp with time zone" json:"-"`
	CreatedAt        time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant           *Tenant    `gorm:"foreignKey:TenantID" json:"-"`
}

func (Customer) TableName() string {
	return "customers"
}
