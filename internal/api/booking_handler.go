package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/pkg/utils"
)

//go:generate mockery --name BookingService --output ../mocks
type BookingService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*dto.CreateBookingResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (*dto.BookingResponse, error)
	List(ctx context.Context, filter domain.BookingFilter) ([]dto.BookingResponse, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	CheckConflicts(ctx context.Context, tenantID string, req dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, error)
}

type BookingHandler struct {
	*BaseHandler
	service BookingService
}

func NewBookingHandler(service BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// CreateBooking Create a new booking
// @Summary Create booking
// @Description Create a booking for a room, checking availability for the requested stay
// @Tags    bookings
// @Accept  json
// @Produce json
// @Param   body body dto.CreateBookingRequest true "Booking object"
// @Success 201 {object} dto.CreateBookingResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetBooking Get a booking by ID
// @Summary Get booking
// @Description Get a booking by its ID
// @Tags    bookings
// @Produce json
// @Param   id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(h.RequestCtx(c), tenantID, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListBookings List bookings with filtering
// @Summary List bookings
// @Description List bookings filtered by room, customer, status, payment status and date range
// @Tags    bookings
// @Produce json
// @Param   room_id query string false "Room ID"
// @Param   customer_id query string false "Customer ID"
// @Param   status query string false "Booking status"
// @Param   payment_status query string false "Payment status"
// @Param   from query string false "Stays overlapping on/after (YYYY-MM-DD)"
// @Param   to query string false "Stays overlapping before (YYYY-MM-DD)"
// @Param   page query int false "Page number"
// @Param   page_size query int false "Page size"
// @Success 200 {array} dto.BookingResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	filter := domain.BookingFilter{
		TenantID:   tenantID,
		RoomID:     c.Query("room_id"),
		CustomerID: c.Query("customer_id"),
		Status:     domain.BookingStatus(c.Query("status")),
		Payment:    domain.PaymentStatus(c.Query("payment_status")),
	}
	if from := c.Query("from"); from != "" {
		t, err := utils.ParseDate(from)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid from date format"})
			return
		}
		filter.From = t
	}
	if to := c.Query("to"); to != "" {
		t, err := utils.ParseDate(to)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Error{Error: "Invalid to date format"})
			return
		}
		filter.To = t
	}
	if page := c.Query("page"); page != "" {
		if n, err := strconv.Atoi(page); err == nil {
			filter.Page = n
		}
	}
	if size := c.Query("page_size"); size != "" {
		if n, err := strconv.Atoi(size); err == nil {
			filter.PageSize = n
		}
	}

	resp, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateBooking Update a booking
// @Summary Update booking
// @Description Update booking fields; moving the stay re-checks availability
// @Tags    bookings
// @Accept  json
// @Produce json
// @Param   id path string true "Booking ID"
// @Param   body body dto.UpdateBookingRequest true "Fields to update"
// @Success 200 {object} dto.BookingResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Update(h.RequestCtx(c), tenantID, c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteBooking Delete a booking
// @Summary Delete booking
// @Description Delete a booking by its ID
// @Tags    bookings
// @Produce json
// @Param   id path string true "Booking ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings/{id} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CheckConflicts Check a stay for conflicts
// @Summary Check booking conflicts
// @Description Report whether a stay conflicts with existing bookings without creating anything
// @Tags    bookings
// @Accept  json
// @Produce json
// @Param   body body dto.CheckConflictsRequest true "Stay to check"
// @Success 200 {object} dto.CheckConflictsResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /bookings/check-conflicts [post]
func (h *BookingHandler) CheckConflicts(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CheckConflictsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.CheckConflicts(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
