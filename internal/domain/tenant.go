package domain

import (
	"time"

	"github.com/lib/pq"
)

type SubscriptionStatus string

const (
	SubscriptionTrial    SubscriptionStatus = "trial"
	SubscriptionActive   SubscriptionStatus = "active"
	SubscriptionPastDue  SubscriptionStatus = "past_due"
	SubscriptionDisabled SubscriptionStatus = "disabled"
)

// Tenant is a property-owning account. A tenant is never hard-deleted;
// disabling the subscription takes it out of discovery instead.
type Tenant struct {
	ID                 string             `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	Name               string             `gorm:"type:text;not null" json:"name"`
	Slug               string             `gorm:"type:text;not null;unique" json:"slug"`
	Email              string             `gorm:"type:text;not null" json:"email"`
	Description        string             `gorm:"type:text" json:"description"`
	Currency           string             `gorm:"type:text;not null;default:'USD'" json:"currency"`
	Locale             string             `gorm:"type:text;not null;default:'en'" json:"locale"`
	Country            string             `gorm:"type:text" json:"country"`
	City               string             `gorm:"type:text" json:"city"`
	Address            string             `gorm:"type:text" json:"address"`
	Latitude           float64            `gorm:"type:double precision" json:"latitude"`
	Longitude          float64            `gorm:"type:double precision" json:"longitude"`
	Categories         pq.StringArray     `gorm:"type:text[]" json:"categories"`
	Discoverable       bool               `gorm:"not null;default:true" json:"discoverable"`
	Featured           bool               `gorm:"not null;default:false" json:"featured"`
	SubscriptionStatus SubscriptionStatus `gorm:"type:text;not null;default:'trial'" json:"subscription_status"`
	SubscriptionPlan   string             `gorm:"type:text;not null;default:'starter'" json:"subscription_plan"`
	PaystackCustomer   string             `gorm:"type:text" json:"-"`
	RateLimit          int                `gorm:"not null;default:1000" json:"rate_limit"`
	CreatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time          `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Tenant) TableName() string {
	return "tenants"
}
