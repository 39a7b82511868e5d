package domain

import (
	"time"

	"github.com/lib/pq"
)

// User is a tenant member (owner or staff) who signs in with a bearer token.
type User struct {
	ID        string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID  string    `gorm:"type:uuid;not null" json:"tenant_id"`
	Email     string    `gorm:"type:text;not null;unique" json:"email"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Roles     pq.StringArray `gorm:"type:text[];not null;default:'{staff}'" json:"roles"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant    *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (User) TableName() string {
	return "users"
}
