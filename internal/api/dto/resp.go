package dto

import (
	"time"
)

// TenantResponse represents a tenant account
type TenantResponse struct {
	ID                 string    `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	Name               string    `json:"name" example:"Seaside Villas"`
	Slug               string    `json:"slug" example:"seaside-villas"`
	Email              string    `json:"email" example:"owner@seaside.example"`
	Description        string    `json:"description,omitempty"`
	Currency           string    `json:"currency" example:"USD"`
	Locale             string    `json:"locale" example:"en"`
	Country            string    `json:"country,omitempty"`
	City               string    `json:"city,omitempty"`
	Address            string    `json:"address,omitempty"`
	Latitude           float64   `json:"latitude,omitempty"`
	Longitude          float64   `json:"longitude,omitempty"`
	Categories         []string  `json:"categories,omitempty"`
	Discoverable       bool      `json:"discoverable"`
	Featured           bool      `json:"featured"`
	SubscriptionStatus string    `json:"subscription_status" example:"trial"`
	SubscriptionPlan   string    `json:"subscription_plan" example:"starter"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

type RoomResponse struct {
	ID                string    `json:"id"`
	TenantID          string    `json:"tenant_id"`
	Name              string    `json:"name" example:"Ocean Suite"`
	Description       string    `json:"description,omitempty"`
	BasePricePerNight float64   `json:"base_price_per_night" example:"300"`
	Currency          string    `json:"currency" example:"USD"`
	MaxGuests         int       `json:"max_guests" example:"4"`
	TotalUnits        int       `json:"total_units" example:"1"`
	MinStayNights     int       `json:"min_stay_nights" example:"1"`
	MaxStayNights     *int      `json:"max_stay_nights,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// BookingResponse represents a booking; check_in/check_out are calendar
// dates in YYYY-MM-DD form, check-out exclusive.
type BookingResponse struct {
	ID             string    `json:"id"`
	TenantID       string    `json:"tenant_id"`
	RoomID         string    `json:"room_id"`
	CustomerID     *string   `json:"customer_id,omitempty"`
	GuestName      string    `json:"guest_name" example:"Ada Okafor"`
	GuestEmail     string    `json:"guest_email,omitempty"`
	GuestPhone     string    `json:"guest_phone,omitempty"`
	CheckIn        string    `json:"check_in" example:"2024-06-10"`
	CheckOut       string    `json:"check_out" example:"2024-06-14"`
	Guests         int       `json:"guests" example:"2"`
	Status         string    `json:"status" example:"pending"`
	PaymentStatus  string    `json:"payment_status" example:"pending"`
	TotalAmount    float64   `json:"total_amount" example:"1200"`
	Currency       string    `json:"currency" example:"USD"`
	CouponID       *string   `json:"coupon_id,omitempty"`
	DiscountAmount float64   `json:"discount_amount,omitempty"`
	Source         string    `json:"source" example:"direct"`
	ExternalRef    string    `json:"external_ref,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ConflictResponse is the display shape of one conflicting booking
type ConflictResponse struct {
	ID        string `json:"id"`
	GuestName string `json:"guest_name"`
	Source    string `json:"source"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Status    string `json:"status"`
}

// CreateBookingResponse carries the created booking plus any conflicts that
// were overridden with force_create
type CreateBookingResponse struct {
	Booking   BookingResponse    `json:"booking"`
	Conflicts []ConflictResponse `json:"conflicts,omitempty"`
}

// CheckConflictsResponse is the availability probe result
type CheckConflictsResponse struct {
	HasConflict    bool               `json:"has_conflict"`
	Available      bool               `json:"available"`
	AvailableUnits int                `json:"available_units"`
	Nights         int                `json:"nights"`
	Conflicts      []ConflictResponse `json:"conflicts,omitempty"`
}

type BookedDatesResponse struct {
	RoomID      string   `json:"room_id"`
	BookedDates []string `json:"booked_dates"`
}

type NightPriceResponse struct {
	Date     string  `json:"date" example:"2024-12-20"`
	Price    float64 `json:"price" example:"500"`
	RateName string  `json:"rate_name,omitempty" example:"Holiday Season"`
}

type PricingResponse struct {
	RoomID   string               `json:"room_id"`
	Nights   []NightPriceResponse `json:"nights"`
	Subtotal float64              `json:"subtotal" example:"1600"`
	Currency string               `json:"currency" example:"USD"`
}

type SeasonalRateResponse struct {
	ID            string  `json:"id"`
	RoomID        string  `json:"room_id"`
	Name          string  `json:"name"`
	StartDate     string  `json:"start_date" example:"2024-12-20"`
	EndDate       string  `json:"end_date" example:"2024-12-31"`
	PricePerNight float64 `json:"price_per_night"`
	Priority      int     `json:"priority"`
}

type CouponResponse struct {
	ID            string  `json:"id"`
	Code          string  `json:"code"`
	DiscountType  string  `json:"discount_type"`
	DiscountValue float64 `json:"discount_value"`
	ValidFrom     string  `json:"valid_from,omitempty"`
	ValidUntil    string  `json:"valid_until,omitempty"`
	MaxUses       *int    `json:"max_uses,omitempty"`
	UsedCount     int     `json:"used_count"`
	Active        bool    `json:"active"`
}

type AddonResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	PerNight    bool    `json:"per_night"`
	Active      bool    `json:"active"`
}

// PropertyResponse is one discovery card
type PropertyResponse struct {
	TenantID        string   `json:"tenant_id"`
	Name            string   `json:"name"`
	Slug            string   `json:"slug"`
	Description     string   `json:"description,omitempty"`
	Country         string   `json:"country,omitempty"`
	City            string   `json:"city,omitempty"`
	Latitude        float64  `json:"latitude,omitempty"`
	Longitude       float64  `json:"longitude,omitempty"`
	Categories      []string `json:"categories,omitempty"`
	Featured        bool     `json:"featured"`
	Currency        string   `json:"currency"`
	MinNightlyPrice float64  `json:"min_nightly_price"`
	ReviewCount     int64    `json:"review_count"`
	AvgRating       float64  `json:"avg_rating"`
	HasActiveCoupon bool     `json:"has_active_coupon"`
}

type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
	Total      int                `json:"total"`
	Offset     int                `json:"offset"`
	Limit      int                `json:"limit"`
}

// PublicBookingResponse returns the created booking together with the
// customer-portal session token issued for the guest
type PublicBookingResponse struct {
	Booking      BookingResponse `json:"booking"`
	SessionToken string          `json:"session_token"`
}

type NotificationResponse struct {
	ID         string    `json:"id"`
	TenantID   string    `json:"tenant_id"`
	CustomerID *string   `json:"customer_id,omitempty"`
	Type       string    `json:"type" example:"payment_received"`
	Title      string    `json:"title"`
	Body       string    `json:"body,omitempty"`
	BookingID  *string   `json:"booking_id,omitempty"`
	Read       bool      `json:"read"`
	CreatedAt  time.Time `json:"created_at"`
}

type ActivityResponse struct {
	ID           string    `json:"id"`
	Action       string    `json:"action" example:"payment.received"`
	ResourceType string    `json:"resource_type,omitempty"`
	ResourceID   string    `json:"resource_id,omitempty"`
	Actor        string    `json:"actor,omitempty"`
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SupportMessageResponse struct {
	ID         string    `json:"id"`
	ThreadID   string    `json:"thread_id"`
	AuthorType string    `json:"author_type" example:"customer"`
	AuthorID   string    `json:"author_id,omitempty"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type SupportThreadResponse struct {
	ID         string                   `json:"id"`
	CustomerID *string                  `json:"customer_id,omitempty"`
	Subject    string                   `json:"subject"`
	Status     string                   `json:"status" example:"open"`
	Messages   []SupportMessageResponse `json:"messages,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
	UpdatedAt  time.Time                `json:"updated_at"`
}

// InitializePaymentResponse mirrors the gateway's initialize payload
type InitializePaymentResponse struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type VerifyPaymentResponse struct {
	Status    string  `json:"status" example:"success"`
	Reference string  `json:"reference"`
	Amount    float64 `json:"amount"`
	PaidAt    string  `json:"paid_at,omitempty"`
}
