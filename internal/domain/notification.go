package domain

import (
	"time"
)

type NotificationType string

const (
	NotifyBookingCreated   NotificationType = "booking_created"
	NotifyBookingConfirmed NotificationType = "booking_confirmed"
	NotifyBookingCancelled NotificationType = "booking_cancelled"
	NotifyBookingModified  NotificationType = "booking_modified"
	NotifyCheckedIn        NotificationType = "checked_in"
	NotifyCheckedOut       NotificationType = "checked_out"
	NotifyPaymentReceived  NotificationType = "payment_received"
	NotifySupportMessage   NotificationType = "support_message"
)

// Notification is an in-app message. CustomerID nil means the notification
// targets the tenant's staff inbox.
type Notification struct {
	ID         string           `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID   string           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CustomerID *string          `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Type       NotificationType `gorm:"type:text;not null" json:"type"`
	Title      string           `gorm:"type:text;not null" json:"title"`
	Body       string           `gorm:"type:text" json:"body"`
	BookingID  *string          `gorm:"type:uuid" json:"booking_id,omitempty"`
	Read       bool             `gorm:"not null;default:false" json:"read"`
	CreatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}

type NotificationFilter struct {
	TenantID   string `json:"tenant_id"`
	CustomerID string `json:"customer_id"`
	Unread     *bool  `json:"unread"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
}
