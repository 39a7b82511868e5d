package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/pkg/utils"
)

//go:generate mockery --name DiscoveryService --output ../mocks
type DiscoveryService interface {
	List(ctx context.Context, q domain.DiscoveryQuery) (*dto.PropertyListResponse, error)
	GetBySlug(ctx context.Context, slug string) (*dto.PropertyResponse, error)
	Rooms(ctx context.Context, slug string) ([]dto.RoomResponse, error)
	Availability(ctx context.Context, slug, roomID string, checkIn, checkOut time.Time) (*service.AvailabilityResult, error)
	BookedDates(ctx context.Context, slug, roomID string, from, to time.Time) ([]string, error)
	Pricing(ctx context.Context, slug, roomID string, checkIn, checkOut time.Time) (*service.PriceSchedule, error)
	Book(ctx context.Context, req dto.PublicBookingRequest) (*dto.PublicBookingResponse, error)
}

// DiscoveryHandler serves the public, unauthenticated storefront surface.
type DiscoveryHandler struct {
	*BaseHandler
	service DiscoveryService
}

func NewDiscoveryHandler(service DiscoveryService) *DiscoveryHandler {
	return &DiscoveryHandler{service: service}
}

// ListProperties Browse published properties
// @Summary List properties
// @Description Search, filter, sort and paginate discoverable properties across all tenants
// @Tags    discovery
// @Produce json
// @Param   location query string false "Free-text location search"
// @Param   country query string false "Country filter"
// @Param   city query string false "City filter"
// @Param   categories query string false "Comma-separated categories"
// @Param   min_price query number false "Minimum nightly price"
// @Param   max_price query number false "Maximum nightly price"
// @Param   lat query number false "Latitude for radius search"
// @Param   lng query number false "Longitude for radius search"
// @Param   radius_km query number false "Radius in kilometres"
// @Param   with_coupon query bool false "Only properties with an active coupon"
// @Param   sort query string false "Sort order (price_asc, price_desc, rating, popular)"
// @Param   offset query int false "Result offset"
// @Param   limit query int false "Page size (max 100)"
// @Success 200 {object} dto.PropertyListResponse
// @Failure 400 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties [get]
func (h *DiscoveryHandler) ListProperties(c *gin.Context) {
	q := domain.DiscoveryQuery{
		Location:   c.Query("location"),
		Country:    c.Query("country"),
		City:       c.Query("city"),
		WithCoupon: c.Query("with_coupon") == "true",
		Sort:       domain.DiscoverySort(c.Query("sort")),
	}
	if categories := c.Query("categories"); categories != "" {
		q.Categories = strings.Split(categories, ",")
	}
	q.MinPrice = floatQuery(c, "min_price")
	q.MaxPrice = floatQuery(c, "max_price")
	q.Lat = floatQuery(c, "lat")
	q.Lng = floatQuery(c, "lng")
	q.RadiusKm = floatQuery(c, "radius_km")
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			q.Offset = n
		}
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			q.Limit = n
		}
	}

	resp, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetProperty Get a property by slug
// @Summary Get property
// @Description Get a discoverable property's public profile
// @Tags    discovery
// @Produce json
// @Param   slug path string true "Property slug"
// @Success 200 {object} dto.PropertyResponse
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties/{slug} [get]
func (h *DiscoveryHandler) GetProperty(c *gin.Context) {
	resp, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListPropertyRooms List a property's bookable rooms
// @Summary List property rooms
// @Description List the active rooms of a discoverable property
// @Tags    discovery
// @Produce json
// @Param   slug path string true "Property slug"
// @Success 200 {array} dto.RoomResponse
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties/{slug}/rooms [get]
func (h *DiscoveryHandler) ListPropertyRooms(c *gin.Context) {
	resp, err := h.service.Rooms(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CheckAvailability Check room availability
// @Summary Check availability
// @Description Check whether a room has capacity for the requested stay
// @Tags    discovery
// @Produce json
// @Param   slug path string true "Property slug"
// @Param   room_id query string true "Room ID"
// @Param   check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param   check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.CheckConflictsResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties/{slug}/availability [get]
func (h *DiscoveryHandler) CheckAvailability(c *gin.Context) {
	checkIn, checkOut, ok := stayQuery(c)
	if !ok {
		return
	}

	result, err := h.service.Availability(c.Request.Context(), c.Param("slug"), c.Query("room_id"), checkIn, checkOut)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	// Conflicting bookings are not exposed on the public surface.
	c.JSON(http.StatusOK, dto.CheckConflictsResponse{
		HasConflict:    !result.Available,
		Available:      result.Available,
		AvailableUnits: result.AvailableUnits,
		Nights:         result.Nights,
	})
}

// GetBookedDates List fully booked nights
// @Summary Get booked dates
// @Description List the nights in a window on which a room has no remaining units
// @Tags    discovery
// @Produce json
// @Param   slug path string true "Property slug"
// @Param   room_id query string true "Room ID"
// @Param   from query string true "Window start (YYYY-MM-DD)"
// @Param   to query string true "Window end (YYYY-MM-DD)"
// @Success 200 {object} dto.BookedDatesResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties/{slug}/booked-dates [get]
func (h *DiscoveryHandler) GetBookedDates(c *gin.Context) {
	from, err := utils.ParseDate(c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid from date format"})
		return
	}
	to, err := utils.ParseDate(c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid to date format"})
		return
	}

	roomID := c.Query("room_id")
	dates, err := h.service.BookedDates(c.Request.Context(), c.Param("slug"), roomID, from, to)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.BookedDatesResponse{RoomID: roomID, BookedDates: dates})
}

// GetPricing Quote a stay
// @Summary Get pricing
// @Description Resolve the per-night price schedule and subtotal for a stay
// @Tags    discovery
// @Produce json
// @Param   slug path string true "Property slug"
// @Param   room_id query string true "Room ID"
// @Param   check_in query string true "Check-in date (YYYY-MM-DD)"
// @Param   check_out query string true "Check-out date (YYYY-MM-DD)"
// @Success 200 {object} dto.PricingResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/properties/{slug}/pricing [get]
func (h *DiscoveryHandler) GetPricing(c *gin.Context) {
	checkIn, checkOut, ok := stayQuery(c)
	if !ok {
		return
	}

	roomID := c.Query("room_id")
	schedule, err := h.service.Pricing(c.Request.Context(), c.Param("slug"), roomID, checkIn, checkOut)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	resp := dto.PricingResponse{
		RoomID:   roomID,
		Nights:   make([]dto.NightPriceResponse, len(schedule.Nights)),
		Subtotal: schedule.Subtotal,
		Currency: schedule.Currency,
	}
	for i, n := range schedule.Nights {
		resp.Nights[i] = dto.NightPriceResponse{Date: n.Date, Price: n.Price, RateName: n.RateName}
	}

	c.JSON(http.StatusOK, resp)
}

// CreatePublicBooking Book a stay as a guest
// @Summary Create public booking
// @Description Create a booking through the public storefront, provisioning a customer session
// @Tags    discovery
// @Accept  json
// @Produce json
// @Param   body body dto.PublicBookingRequest true "Booking object"
// @Success 201 {object} dto.PublicBookingResponse
// @Failure 400 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /discovery/bookings [post]
func (h *DiscoveryHandler) CreatePublicBooking(c *gin.Context) {
	var req dto.PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Book(c.Request.Context(), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func stayQuery(c *gin.Context) (time.Time, time.Time, bool) {
	checkIn, err := utils.ParseDate(c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid check_in date format"})
		return time.Time{}, time.Time{}, false
	}
	checkOut, err := utils.ParseDate(c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid check_out date format"})
		return time.Time{}, time.Time{}, false
	}
	return checkIn, checkOut, true
}

func floatQuery(c *gin.Context, key string) *float64 {
	raw := c.Query(key)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
