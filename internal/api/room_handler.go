package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
)

//go:generate mockery --name RoomService --output ../mocks
type RoomService interface {
	Create(ctx context.Context, tenantID string, req dto.CreateRoomRequest) (*dto.RoomResponse, error)
	GetByID(ctx context.Context, tenantID, id string) (*dto.RoomResponse, error)
	Update(ctx context.Context, tenantID, id string, req dto.UpdateRoomRequest) (*dto.RoomResponse, error)
	Delete(ctx context.Context, tenantID, id string) error
	List(ctx context.Context, tenantID string) ([]dto.RoomResponse, error)
	CreateSeasonalRate(ctx context.Context, tenantID string, req dto.CreateSeasonalRateRequest) (*dto.SeasonalRateResponse, error)
	ListSeasonalRates(ctx context.Context, tenantID, roomID string) ([]dto.SeasonalRateResponse, error)
	DeleteSeasonalRate(ctx context.Context, tenantID, id string) error
	CreateCoupon(ctx context.Context, tenantID string, req dto.CreateCouponRequest) (*dto.CouponResponse, error)
	ListCoupons(ctx context.Context, tenantID string) ([]dto.CouponResponse, error)
	DeleteCoupon(ctx context.Context, tenantID, id string) error
	CreateAddon(ctx context.Context, tenantID string, req dto.CreateAddonRequest) (*dto.AddonResponse, error)
	ListAddons(ctx context.Context, tenantID string) ([]dto.AddonResponse, error)
	DeleteAddon(ctx context.Context, tenantID, id string) error
}

type RoomHandler struct {
	*BaseHandler
	service RoomService
}

func NewRoomHandler(service RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// CreateRoom Create a room
// @Summary Create room
// @Description Create a bookable room type for the tenant
// @Tags    rooms
// @Accept  json
// @Produce json
// @Param   body body dto.CreateRoomRequest true "Room object"
// @Success 201 {object} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateRoomRequest
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

// GetRoom Get a room by ID
// @Summary Get room
// @Tags    rooms
// @Produce json
// @Param   id path string true "Room ID"
// @Success 200 {object} dto.RoomResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
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

// ListRooms List the tenant's rooms
// @Summary List rooms
// @Tags    rooms
// @Produce json
// @Success 200 {array} dto.RoomResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.List(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateRoom Update a room
// @Summary Update room
// @Tags    rooms
// @Accept  json
// @Produce json
// @Param   id path string true "Room ID"
// @Param   body body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} dto.RoomResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rooms/{id} [put]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
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

// DeleteRoom Delete a room
// @Summary Delete room
// @Tags    rooms
// @Produce json
// @Param   id path string true "Room ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rooms/{id} [delete]
func (h *RoomHandler) DeleteRoom(c *gin.Context) {
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

// CreateSeasonalRate Create a seasonal rate
// @Summary Create seasonal rate
// @Description Create a date-ranged price override for a room
// @Tags    rates
// @Accept  json
// @Produce json
// @Param   body body dto.CreateSeasonalRateRequest true "Seasonal rate object"
// @Success 201 {object} dto.SeasonalRateResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rates [post]
func (h *RoomHandler) CreateSeasonalRate(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateSeasonalRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.CreateSeasonalRate(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListSeasonalRates List a room's seasonal rates
// @Summary List seasonal rates
// @Tags    rates
// @Produce json
// @Param   room_id query string true "Room ID"
// @Success 200 {array} dto.SeasonalRateResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rates [get]
func (h *RoomHandler) ListSeasonalRates(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListSeasonalRates(h.RequestCtx(c), tenantID, c.Query("room_id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteSeasonalRate Delete a seasonal rate
// @Summary Delete seasonal rate
// @Tags    rates
// @Produce json
// @Param   id path string true "Seasonal rate ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /rates/{id} [delete]
func (h *RoomHandler) DeleteSeasonalRate(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteSeasonalRate(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateCoupon Create a coupon
// @Summary Create coupon
// @Tags    coupons
// @Accept  json
// @Produce json
// @Param   body body dto.CreateCouponRequest true "Coupon object"
// @Success 201 {object} dto.CouponResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /coupons [post]
func (h *RoomHandler) CreateCoupon(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.CreateCoupon(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListCoupons List the tenant's coupons
// @Summary List coupons
// @Tags    coupons
// @Produce json
// @Success 200 {array} dto.CouponResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /coupons [get]
func (h *RoomHandler) ListCoupons(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListCoupons(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteCoupon Delete a coupon
// @Summary Delete coupon
// @Tags    coupons
// @Produce json
// @Param   id path string true "Coupon ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /coupons/{id} [delete]
func (h *RoomHandler) DeleteCoupon(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCoupon(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAddon Create an addon
// @Summary Create addon
// @Tags    addons
// @Accept  json
// @Produce json
// @Param   body body dto.CreateAddonRequest true "Addon object"
// @Success 201 {object} dto.AddonResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /addons [post]
func (h *RoomHandler) CreateAddon(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.CreateAddon(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// ListAddons List the tenant's addons
// @Summary List addons
// @Tags    addons
// @Produce json
// @Success 200 {array} dto.AddonResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /addons [get]
func (h *RoomHandler) ListAddons(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListAddons(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteAddon Delete an addon
// @Summary Delete addon
// @Tags    addons
// @Produce json
// @Param   id path string true "Addon ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /addons/{id} [delete]
func (h *RoomHandler) DeleteAddon(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAddon(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
