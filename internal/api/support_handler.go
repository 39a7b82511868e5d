package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/middleware"
	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/internal/utils"
)

//go:generate mockery --name SupportService --output ../mocks
type SupportService interface {
	OpenThread(ctx context.Context, tenantID string, customerID *string, req dto.CreateSupportThreadRequest) (*dto.SupportThreadResponse, error)
	GetThread(ctx context.Context, tenantID, id string) (*dto.SupportThreadResponse, error)
	ListThreads(ctx context.Context, tenantID string, customerID *string, status domain.SupportStatus) ([]dto.SupportThreadResponse, error)
	Reply(ctx context.Context, tenantID, threadID string, author domain.SupportAuthor, authorID string, req dto.AddSupportMessageRequest) (*dto.SupportMessageResponse, error)
	CloseThread(ctx context.Context, tenantID, id string) error
}

// SupportHandler serves both the staff console and the customer portal.
// Customer requests carry a session set by CustomerSessionAuth; staff
// requests carry a JWT.
type SupportHandler struct {
	*BaseHandler
	service SupportService
}

func NewSupportHandler(service SupportService) *SupportHandler {
	return &SupportHandler{service: service}
}

// OpenThread Open a support thread
// @Summary Open support thread
// @Description Open a new support thread with an initial message
// @Tags    support
// @Accept  json
// @Produce json
// @Param   body body dto.CreateSupportThreadRequest true "Thread object"
// @Success 201 {object} dto.SupportThreadResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /support/threads [post]
func (h *SupportHandler) OpenThread(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.CreateSupportThreadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.OpenThread(h.RequestCtx(c), tenantID, h.customerID(c), req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetThread Get a support thread
// @Summary Get support thread
// @Description Get a thread with its full message history
// @Tags    support
// @Produce json
// @Param   id path string true "Thread ID"
// @Success 200 {object} dto.SupportThreadResponse
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /support/threads/{id} [get]
func (h *SupportHandler) GetThread(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.GetThread(h.RequestCtx(c), tenantID, c.Param("id"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	// Portal callers only see their own conversations.
	if customerID := h.customerID(c); customerID != nil {
		if resp.CustomerID == nil || *resp.CustomerID != *customerID {
			c.JSON(http.StatusNotFound, dto.Error{Error: service.ErrThreadNotFound.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}

// ListThreads List support threads
// @Summary List support threads
// @Tags    support
// @Produce json
// @Param   status query string false "Thread status (open, closed)"
// @Success 200 {array} dto.SupportThreadResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /support/threads [get]
func (h *SupportHandler) ListThreads(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.ListThreads(h.RequestCtx(c), tenantID, h.customerID(c), domain.SupportStatus(c.Query("status")))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ReplyToThread Reply to a support thread
// @Summary Reply to support thread
// @Description Append a message to an open thread
// @Tags    support
// @Accept  json
// @Produce json
// @Param   id path string true "Thread ID"
// @Param   body body dto.AddSupportMessageRequest true "Message object"
// @Success 201 {object} dto.SupportMessageResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 409 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /support/threads/{id}/messages [post]
func (h *SupportHandler) ReplyToThread(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.AddSupportMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	author := domain.AuthorStaff
	authorID := utils.GetUserIDFromContext(h.RequestCtx(c))
	if customerID := h.customerID(c); customerID != nil {
		author = domain.AuthorCustomer
		authorID = *customerID
	}

	resp, err := h.service.Reply(h.RequestCtx(c), tenantID, c.Param("id"), author, authorID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// CloseThread Close a support thread
// @Summary Close support thread
// @Tags    support
// @Produce json
// @Param   id path string true "Thread ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /support/threads/{id}/close [post]
func (h *SupportHandler) CloseThread(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.CloseThread(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *SupportHandler) customerID(c *gin.Context) *string {
	v, exists := c.Get(middleware.CustomerKey)
	if !exists {
		return nil
	}
	customer, ok := v.(*domain.Customer)
	if !ok {
		return nil
	}
	return &customer.ID
}
