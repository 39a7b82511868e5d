package domain

import (
	"time"
)

// SeasonalRate overrides a room's base nightly price over an inclusive date
// window. When windows overlap, the highest priority wins; equal priorities
// resolve to the first row in priority-descending, created-ascending order.
type SeasonalRate struct {
	ID            string    `gorm:"primaryKey;type:uuid;default:gen_random_uuid()" json:"id"`
	TenantID      string    `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RoomID        string    `gorm:"type:uuid;not null;index" json:"room_id"`
	Name          string    `gorm:"type:text;not null" json:"name"`
	StartDate     time.Time `gorm:"type:date;not null" json:"start_date"`
	EndDate       time.Time `gorm:"type:date;not null" json:"end_date"`
	PricePerNight float64   `gorm:"type:numeric;not null" json:"price_per_night"`
	Priority      int       `gorm:"not null;default:0" json:"priority"`
	CreatedAt     time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Room          *Room     `gorm:"foreignKey:RoomID" json:"-"`
}

func (SeasonalRate) TableName() string {
	return "seasonal_rates"
}
