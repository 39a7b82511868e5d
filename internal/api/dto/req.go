package dto

type CreateTenantRequest struct {
	Name       string   `json:"name" binding:"required" example:"Seaside Villas"`
	Slug       string   `json:"slug" binding:"required" example:"seaside-villas"`
	Email      string   `json:"email" binding:"required" example:"owner@seaside.example"`
	Currency   string   `json:"currency" example:"USD"`
	Locale     string   `json:"locale" example:"en"`
	Country    string   `json:"country" example:"Portugal"`
	City       string   `json:"city" example:"Lagos"`
	Address    string   `json:"address" example:"Rua da Praia 12"`
	Latitude   float64  `json:"latitude" example:"37.1022"`
	Longitude  float64  `json:"longitude" example:"-8.6742"`
	Categories []string `json:"categories" example:"villa,beachfront"`
}

type UpdateTenantRequest struct {
	Name         *string  `json:"name,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Currency     *string  `json:"currency,omitempty"`
	Locale       *string  `json:"locale,omitempty"`
	Country      *string  `json:"country,omitempty"`
	City         *string  `json:"city,omitempty"`
	Address      *string  `json:"address,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Categories   []string `json:"categories,omitempty"`
	Discoverable *bool    `json:"discoverable,omitempty"`
}

type CreateRoomRequest struct {
	Name              string  `json:"name" binding:"required" example:"Ocean Suite"`
	Description       string  `json:"description" example:"Top floor, sea view"`
	BasePricePerNight float64 `json:"base_price_per_night" binding:"required" example:"300"`
	Currency          string  `json:"currency" example:"USD"`
	MaxGuests         int     `json:"max_guests" example:"4"`
	TotalUnits        int     `json:"total_units" example:"1"`
	MinStayNights     int     `json:"min_stay_nights" example:"1"`
	MaxStayNights     *int    `json:"max_stay_nights,omitempty" example:"30"`
}

type UpdateRoomRequest struct {
	Name              *string  `json:"name,omitempty"`
	Description       *string  `json:"description,omitempty"`
	BasePricePerNight *float64 `json:"base_price_per_night,omitempty"`
	Currency          *string  `json:"currency,omitempty"`
	MaxGuests         *int     `json:"max_guests,omitempty"`
	TotalUnits        *int     `json:"total_units,omitempty"`
	MinStayNights     *int     `json:"min_stay_nights,omitempty"`
	MaxStayNights     *int     `json:"max_stay_nights,omitempty"`
	Active            *bool    `json:"active,omitempty"`
}

type CreateSeasonalRateRequest struct {
	RoomID        string  `json:"room_id" binding:"required"`
	Name          string  `json:"name" binding:"required" example:"Holiday Season"`
	StartDate     string  `json:"start_date" binding:"required" example:"2024-12-20"`
	EndDate       string  `json:"end_date" binding:"required" example:"2024-12-31"`
	PricePerNight float64 `json:"price_per_night" binding:"required" example:"500"`
	Priority      int     `json:"priority" example:"1"`
}

type CreateCouponRequest struct {
	Code          string  `json:"code" binding:"required" example:"WINTER20"`
	DiscountType  string  `json:"discount_type" binding:"required" example:"percent"`
	DiscountValue float64 `json:"discount_value" binding:"required" example:"20"`
	ValidFrom     string  `json:"valid_from,omitempty" example:"2024-12-01"`
	ValidUntil    string  `json:"valid_until,omitempty" example:"2025-01-31"`
	MaxUses       *int    `json:"max_uses,omitempty" example:"100"`
}

type CreateAddonRequest struct {
	Name        string  `json:"name" binding:"required" example:"Breakfast"`
	Description string  `json:"description" example:"Continental breakfast for two"`
	Price       float64 `json:"price" binding:"required" example:"25"`
	PerNight    bool    `json:"per_night" example:"true"`
}

type CreateBookingRequest struct {
	RoomID      string `json:"room_id" binding:"required"`
	GuestName   string `json:"guest_name" binding:"required" example:"Ada Okafor"`
	GuestEmail  string `json:"guest_email" example:"ada@example.com"`
	GuestPhone  string `json:"guest_phone" example:"+2348012345678"`
	CheckIn     string `json:"check_in" binding:"required" example:"2024-06-10"`
	CheckOut    string `json:"check_out" binding:"required" example:"2024-06-14"`
	Guests      int    `json:"guests" example:"2"`
	CouponCode  string `json:"coupon_code,omitempty" example:"WINTER20"`
	Notes       string `json:"notes,omitempty"`
	Source      string `json:"source,omitempty" example:"direct"`
	ExternalRef string `json:"external_ref,omitempty"`
	// ForceCreate proceeds despite conflicts; the conflict list is still
	// returned for display.
	ForceCreate bool `json:"force_create,omitempty"`
}

type UpdateBookingRequest struct {
	RoomID        *string `json:"room_id,omitempty"`
	GuestName     *string `json:"guest_name,omitempty"`
	GuestEmail    *string `json:"guest_email,omitempty"`
	GuestPhone    *string `json:"guest_phone,omitempty"`
	CheckIn       *string `json:"check_in,omitempty" example:"2024-06-11"`
	CheckOut      *string `json:"check_out,omitempty" example:"2024-06-15"`
	Guests        *int    `json:"guests,omitempty"`
	Status        *string `json:"status,omitempty" example:"confirmed"`
	PaymentStatus *string `json:"payment_status,omitempty" example:"paid"`
	Notes         *string `json:"notes,omitempty"`
	ForceCreate   bool    `json:"force_create,omitempty"`
}

type CheckConflictsRequest struct {
	RoomID           string `json:"room_id" binding:"required"`
	CheckIn          string `json:"check_in" binding:"required" example:"2024-06-10"`
	CheckOut         string `json:"check_out" binding:"required" example:"2024-06-14"`
	ExcludeBookingID string `json:"exclude_booking_id,omitempty"`
}

// PublicBookingRequest is the guest self-service flow: the tenant comes from
// the property slug, and a customer account is provisioned from the guest
// contact details.
type PublicBookingRequest struct {
	PropertySlug string `json:"property_slug" binding:"required" example:"seaside-villas"`
	RoomID       string `json:"room_id" binding:"required"`
	GuestName    string `json:"guest_name" binding:"required"`
	GuestEmail   string `json:"guest_email" binding:"required"`
	GuestPhone   string `json:"guest_phone,omitempty"`
	CheckIn      string `json:"check_in" binding:"required" example:"2024-06-10"`
	CheckOut     string `json:"check_out" binding:"required" example:"2024-06-14"`
	Guests       int    `json:"guests" example:"2"`
	CouponCode   string `json:"coupon_code,omitempty"`
}

type CreateSupportThreadRequest struct {
	Subject string `json:"subject" binding:"required" example:"Late check-in"`
	Body    string `json:"body" binding:"required"`
}

type AddSupportMessageRequest struct {
	Body string `json:"body" binding:"required"`
}

type InitializePaymentRequest struct {
	Email  string  `json:"email" binding:"required" example:"owner@seaside.example"`
	Amount float64 `json:"amount" binding:"required" example:"49.99"`
	Plan   string  `json:"plan,omitempty" example:"starter"`
}
