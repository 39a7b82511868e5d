package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/vilohq/vilo-api/pkg/utils"
)

type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCancelled  BookingStatus = "cancelled"
	BookingCheckedIn  BookingStatus = "checked_in"
	BookingCheckedOut BookingStatus = "checked_out"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentFailed  PaymentStatus = "failed"
)

type BookingSource string

const (
	SourceDirect  BookingSource = "direct"
	SourceChannel BookingSource = "channel"
)

// Booking holds a stay for one room. CheckIn/CheckOut are calendar dates
// with check-out exclusive: nights = check_out - check_in.
type Booking struct {
	ID             string        `gorm:"primaryKey;type:uuid" json:"id"`
	TenantID       string        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	RoomID         string        `gorm:"type:uuid;not null;index" json:"room_id"`
	CustomerID     *string       `gorm:"type:uuid" json:"customer_id,omitempty"`
	GuestName      string        `gorm:"type:text;not null" json:"guest_name"`
	GuestEmail     string        `gorm:"type:text" json:"guest_email"`
	GuestPhone     string        `gorm:"type:text" json:"guest_phone"`
	CheckIn        time.Time     `gorm:"type:date;not null" json:"check_in"`
	CheckOut       time.Time     `gorm:"type:date;not null" json:"check_out"`
	Guests         int           `gorm:"not null;default:1" json:"guests"`
	Status         BookingStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	PaymentStatus  PaymentStatus `gorm:"type:text;not null;default:'pending'" json:"payment_status"`
	TotalAmount    float64       `gorm:"type:numeric;not null" json:"total_amount"`
	Currency       string        `gorm:"type:text;not null" json:"currency"`
	CouponID       *string       `gorm:"type:uuid" json:"coupon_id,omitempty"`
	DiscountAmount float64       `gorm:"type:numeric;not null;default:0" json:"discount_amount"`
	Source         BookingSource `gorm:"type:text;not null;default:'direct'" json:"source"`
	ExternalRef    string        `gorm:"type:text" json:"external_ref,omitempty"`
	Notes          string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time     `gorm:"type:timestamp with time zone;default:CURRENT_TIMESTAMP" json:"updated_at"`
	Tenant         *Tenant       `gorm:"foreignKey:TenantID" json:"-"`
	Room           *Room         `gorm:"foreignKey:RoomID" json:"-"`
}

func (Booking) TableName() string {
	return "bookings"
}

// Countable reports whether the booking occupies inventory. Cancelled
// bookings never count toward conflicts.
func (b *Booking) Countable() bool {
	return b.Status != BookingCancelled
}

type BookingFilter struct {
	TenantID   string        `json:"tenant_id"`
	RoomID     string        `json:"room_id"`
	CustomerID string        `json:"customer_id"`
	Status     BookingStatus `json:"status"`
	Payment    PaymentStatus `json:"payment_status"`
	From       time.Time     `json:"from"`
	To         time.Time     `json:"to"`
	Page       int           `json:"page"`
	PageSize   int           `json:"page_size"`
	Limit      int           `json:"limit"`
	Offset     int           `json:"offset"`
}

// Transition is a status change computed once per update by comparing the
// stored row against the incoming payload.
type Transition struct {
	From BookingStatus `json:"from"`
	To   BookingStatus `json:"to"`
}

type PaymentTransition struct {
	From PaymentStatus `json:"from"`
	To   PaymentStatus `json:"to"`
}

// FieldChange records one human-relevant difference in an update.
type FieldChange struct {
	Field string `json:"field"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// BookingChange is the full diff of one update. Side effects dispatch from
// this descriptor, never from re-derived state.
type BookingChange struct {
	Status  *Transition        `json:"status,omitempty"`
	Payment *PaymentTransition `json:"payment,omitempty"`
	Details []FieldChange      `json:"details,omitempty"`
}

// DiffBookings compares the pre-update row with the updated one and returns
// the change descriptor. Equal fields produce no entries, so each effect can
// fire at most once per actual change.
func DiffBookings(prev, next *Booking) BookingChange {
	var change BookingChange

	if prev.Status != next.Status {
		change.Status = &Transition{From: prev.Status, To: next.Status}
	}
	if prev.PaymentStatus != next.PaymentStatus {
		change.Payment = &PaymentTransition{From: prev.PaymentStatus, To: next.PaymentStatus}
	}

	if !utils.SameDate(prev.CheckIn, next.CheckIn) {
		change.Details = append(change.Details, FieldChange{
			Field: "check_in",
			From:  utils.FormatDate(prev.CheckIn),
			To:    utils.FormatDate(next.CheckIn),
		})
	}
	if !utils.SameDate(prev.CheckOut, next.CheckOut) {
		change.Details = append(change.Details, FieldChange{
			Field: "check_out",
			From:  utils.FormatDate(prev.CheckOut),
			To:    utils.FormatDate(next.CheckOut),
		})
	}
	if prev.RoomID != next.RoomID {
		change.Details = append(change.Details, FieldChange{
			Field: "room",
			From:  prev.RoomID,
			To:    next.RoomID,
		})
	}
	if prev.Guests != next.Guests {
		change.Details = append(change.Details, FieldChange{
			Field: "guests",
			From:  fmt.Sprintf("%d", prev.Guests),
			To:    fmt.Sprintf("%d", next.Guests),
		})
	}

	return change
}

// StatusBecame reports whether this update moved the booking into the given
// status from a different one.
func (c BookingChange) StatusBecame(s BookingStatus) bool {
	return c.Status != nil && c.Status.To == s
}

// PaymentBecame reports whether this update moved the payment into the given
// status from a different one.
func (c BookingChange) PaymentBecame(s PaymentStatus) bool {
	return c.Payment != nil && c.Payment.To == s
}

// Empty reports whether the update changed nothing the side-effect table
// cares about.
func (c BookingChange) Empty() bool {
	return c.Status == nil && c.Payment == nil && len(c.Details) == 0
}

// Summary composes the human-readable change description sent with
// booking-modified notifications.
func (c BookingChange) Summary() string {
	if len(c.Details) == 0 {
		return ""
	}
	parts := make([]string, 0, len(c.Details))
	for _, d := range c.Details {
		parts = append(parts, fmt.Sprintf("%s changed from %s to %s", d.Field, d.From, d.To))
	}
	return strings.Join(parts, "; ")
}
