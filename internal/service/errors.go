package service

import "errors"

var (
	// Tenant errors
	ErrTenantNotFound = errors.New("tenant not found")
	ErrTenantExists   = errors.New("tenant already exists")

	// Room errors
	ErrRoomNotFound = errors.New("room not found")
	ErrRoomInactive = errors.New("room is not active")

	// Booking errors
	ErrBookingNotFound = errors.New("booking not found")
	ErrRoomUnavailable = errors.New("room is not available for the requested dates")
	ErrStayTooShort    = errors.New("stay is shorter than the room's minimum")
	ErrStayTooLong     = errors.New("stay is longer than the room's maximum")
	ErrInvalidRange    = errors.New("check-out must be after check-in")

	// Pricing errors
	ErrRateNotFound = errors.New("seasonal rate not found")

	// Coupon errors
	ErrCouponNotFound  = errors.New("coupon not found")
	ErrCouponNotUsable = errors.New("coupon is expired or exhausted")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrSessionExpired   = errors.New("customer session expired")

	// Support errors
	ErrThreadNotFound = errors.New("support thread not found")
	ErrThreadClosed   = errors.New("support thread is closed")

	// Notification errors
	ErrNotificationNotFound = errors.New("notification not found")

	// Payment errors
	ErrPaymentGateway = errors.New("payment gateway request failed")

	// Validation
	ErrValidation = errors.New("validation failed")
)
