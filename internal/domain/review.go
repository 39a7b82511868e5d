package domain

import (
	"time"
)

type Review struct {
	ID         string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RoomID     *string   `gorm:"type:uuid" json:"room_id,omitempty"`
	CustomerID string    `gorm:"type:uuid;not null" json:"customer_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `gorm:"type:text" json:"comment"`
	CreatedAt  time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Review) TableName() string {
	return "reviews"
}
