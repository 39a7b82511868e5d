package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/service"
	"github.com/vilohq/vilo-api/internal/utils"
)

type BaseHandler struct{}

func (h *BaseHandler) RequestCtx(ginCtx *gin.Context) context.Context {
	ctx := ginCtx.Request.Context()
	for k, v := range ginCtx.Keys {
		// Convert string keys to proper context key types to avoid collisions
		contextKey := utils.ContextKey(k)
		ctx = context.WithValue(ctx, contextKey, v)
	}
	return ctx
}

// TenantID pulls the request's tenant scope set by the auth middleware.
func (h *BaseHandler) TenantID(c *gin.Context) (string, bool) {
	tenantID, err := utils.GetTenantIDFromContext(h.RequestCtx(c))
	if err != nil {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "No tenant scope found"})
		return "", false
	}
	return tenantID, true
}

// RespondError translates service errors into HTTP statuses: validation
// failures are 400, missing rows 404, booking conflicts 409, everything
// else 500.
func (h *BaseHandler) RespondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrInvalidRange),
		errors.Is(err, service.ErrStayTooShort),
		errors.Is(err, service.ErrStayTooLong),
		errors.Is(err, service.ErrCouponNotUsable):
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrTenantNotFound),
		errors.Is(err, service.ErrRoomNotFound),
		errors.Is(err, service.ErrBookingNotFound),
		errors.Is(err, service.ErrRateNotFound),
		errors.Is(err, service.ErrCouponNotFound),
		errors.Is(err, service.ErrCustomerNotFound),
		errors.Is(err, service.ErrThreadNotFound),
		errors.Is(err, service.ErrNotificationNotFound):
		c.JSON(http.StatusNotFound, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrRoomUnavailable),
		errors.Is(err, service.ErrRoomInactive),
		errors.Is(err, service.ErrTenantExists),
		errors.Is(err, service.ErrThreadClosed):
		c.JSON(http.StatusConflict, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrSessionExpired):
		c.JSON(http.StatusUnauthorized, dto.Error{Error: err.Error()})
	case errors.Is(err, service.ErrPaymentGateway):
		c.JSON(http.StatusBadGateway, dto.Error{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, dto.Error{Error: err.Error()})
	}
}
