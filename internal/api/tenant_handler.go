package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
)

//go:generate mockery --name TenantService --output ../mocks
type TenantService interface {
	Create(ctx context.Context, req dto.CreateTenantRequest) (*dto.TenantResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TenantResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateTenantRequest) (*dto.TenantResponse, error)
	List(ctx context.Context) ([]dto.TenantResponse, error)
}

type TenantHandler struct {
	*BaseHandler
	service TenantService
}

func NewTenantHandler(service TenantService) *TenantHandler {
	return &TenantHandler{service: service}
}

// CreateTenant Create a new tenant
// @Summary Create tenant
// @Description Register a new property tenant
// @Tags    tenants
// @Accept  json
// @Produce json
// @Param   body body dto.CreateTenantRequest true "Tenant object"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Create(h.RequestCtx(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetTenant Get a tenant by ID
// @Summary Get tenant
// @Tags    tenants
// @Produce json
// @Param   id path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tenants/{id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	resp, err := h.service.GetByID(h.RequestCtx(c), c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateTenant Update a tenant
// @Summary Update tenant
// @Description Update tenant settings including discoverability and property profile
// @Tags    tenants
// @Accept  json
// @Produce json
// @Param   id path string true "Tenant ID"
// @Param   body body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tenants/{id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Update(h.RequestCtx(c), c.Param("id"), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTenants List all tenants
// @Summary List tenants
// @Tags    tenants
// @Produce json
// @Success 200 {array} dto.TenantResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	resp, err := h.service.List(h.RequestCtx(c))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
