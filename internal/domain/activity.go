package domain

import (
	"encoding/json"
	"time"
)

type ActivityAction string

const (
	ActivityBookingCreated  ActivityAction = "booking.created"
	ActivityBookingUpdated  ActivityAction = "booking.updated"
	ActivityPaymentReceived ActivityAction = "payment.received"
	ActivityRoomUpdated     ActivityAction = "room.updated"
	ActivitySupportReplied  ActivityAction = "support.replied"
)

// ActivityEntry is the tenant-scoped audit trail row written alongside
// booking and payment events.
type ActivityEntry struct {
	ID           string          `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID     string          `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Action       ActivityAction  `gorm:"type:text;not null" json:"action"`
	ResourceType string          `gorm:"type:text" json:"resource_type"`
	ResourceID   string          `gorm:"type:text" json:"resource_id"`
	Actor        string          `gorm:"type:text" json:"actor"`
	Message      string          `gorm:"type:text" json:"message"`
	Metadata     json.RawMessage `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt    time.Time       `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (ActivityEntry) TableName() string {
	return "activity_entries"
}

type ActivityFilter struct {
	TenantID     string    `json:"tenant_id"`
	Action       string    `json:"action"`
	ResourceType string    `json:"resource_type"`
	ResourceID   string    `json:"resource_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Limit        int       `json:"limit"`
	Offset       int       `json:"offset"`
}
