package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
)

//go:generate mockery --name NotificationService --output ../mocks
type NotificationService interface {
	List(ctx context.Context, filter domain.NotificationFilter) ([]dto.NotificationResponse, error)
	MarkRead(ctx context.Context, tenantID, id string) error
	MarkAllRead(ctx context.Context, tenantID string) (int64, error)
	Activity(ctx context.Context, filter domain.ActivityFilter) ([]dto.ActivityResponse, error)
}

type NotificationHandler struct {
	*BaseHandler
	service NotificationService
}

func NewNotificationHandler(service NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// ListNotifications List the tenant's notifications
// @Summary List notifications
// @Tags    notifications
// @Produce json
// @Param   unread query bool false "Only unread notifications"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Result offset"
// @Success 200 {array} dto.NotificationResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /notifications [get]
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	filter := domain.NotificationFilter{TenantID: tenantID}
	if unread := c.Query("unread"); unread != "" {
		v := unread == "true"
		filter.Unread = &v
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			filter.Offset = n
		}
	}

	resp, err := h.service.List(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead Mark a notification as read
// @Summary Mark notification read
// @Tags    notifications
// @Produce json
// @Param   id path string true "Notification ID"
// @Success 204
// @Failure 401 {object} dto.Error
// @Failure 404 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /notifications/{id}/read [post]
func (h *NotificationHandler) MarkNotificationRead(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	if err := h.service.MarkRead(h.RequestCtx(c), tenantID, c.Param("id")); err != nil {
		h.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// MarkAllNotificationsRead Mark every notification as read
// @Summary Mark all notifications read
// @Tags    notifications
// @Produce json
// @Success 200
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /notifications/read-all [post]
func (h *NotificationHandler) MarkAllNotificationsRead(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	updated, err := h.service.MarkAllRead(h.RequestCtx(c), tenantID)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

// ListActivity List the tenant's activity feed
// @Summary List activity
// @Description List activity recorded for the tenant's resources
// @Tags    notifications
// @Produce json
// @Param   action query string false "Activity action"
// @Param   resource_type query string false "Resource type"
// @Param   resource_id query string false "Resource ID"
// @Param   limit query int false "Page size"
// @Param   offset query int false "Result offset"
// @Success 200 {array} dto.ActivityResponse
// @Failure 401 {object} dto.Error
// @Failure 500 {object} dto.Error
// @Router  /activity [get]
func (h *NotificationHandler) ListActivity(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	filter := domain.ActivityFilter{
		TenantID:     tenantID,
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
	}
	if limit := c.Query("limit"); limit != "" {
		if n, err := strconv.Atoi(limit); err == nil {
			filter.Limit = n
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if n, err := strconv.Atoi(offset); err == nil {
			filter.Offset = n
		}
	}

	resp, err := h.service.Activity(h.RequestCtx(c), filter)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
