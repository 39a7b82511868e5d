package domain

import (
	"time"
)

// Room is a bookable unit type belonging to one tenant. TotalUnits > 1 means
// the room represents interchangeable physical units sold under one listing.
type Room struct {
	ID                string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID          string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name              string    `gorm:"type:text;not null" json:"name"`
	Description       string    `gorm:"type:text" json:"description"`
	BasePricePerNight float64   `gorm:"type:numeric;not null" json:"base_price_per_night"`
	Currency          string    `gorm:"type:text;not null;default:'USD'" json:"currency"`
	MaxGuests         int       `gorm:"not null;default:2" json:"max_guests"`
	TotalUnits        int       `gorm:"not null;default:1" json:"total_units"`
	MinStayNights     int       `gorm:"not null;default:1" json:"min_stay_nights"`
	MaxStayNights     *int      `json:"max_stay_nights,omitempty"`
	Active            bool      `gorm:"not null;default:true" json:"active"`
	CreatedAt         time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant            *Tenant   `gorm:"foreignKey:TenantID" json:"-"`
}

func (Room) TableName() string {
	return "rooms"
}
