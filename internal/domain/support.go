package domain

import (
	"time"
)

type SupportStatus string

const (
	SupportOpen   SupportStatus = "open"
	SupportClosed SupportStatus = "closed"
)

type SupportAuthor string

const (
	AuthorCustomer SupportAuthor = "customer"
	AuthorStaff    SupportAuthor = "staff"
)

type SupportThread struct {
	ID         string           `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID   string           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	CustomerID *string          `gorm:"type:uuid" json:"customer_id,omitempty"`
	Subject    string           `gorm:"type:text;not null" json:"subject"`
	Status     SupportStatus    `gorm:"type:text;not null;default:'open'" json:"status"`
	CreatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time        `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Messages   []SupportMessage `gorm:"foreignKey:ThreadID" json:"messages,omitempty"`
}

func (SupportThread) TableName() string {
	return "support_threads"
}

type SupportMessage struct {
	ID         string        `gorm:"primaryKey;type:uuid" json:"id"`
	ThreadID   string        `gorm:"type:uuid;not null;index" json:"thread_id"`
	TenantID   string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	AuthorType SupportAuthor `gorm:"type:text;not null" json:"author_type"`
	AuthorID   string        `gorm:"type:text" json:"author_id"`
	Body       string        `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (SupportMessage) TableName() string {
	return "support_messages"
}
