package api

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilohq/vilo-api/internal/api/dto"
)

//go:generate mockery --name PaymentService --output ../mocks
type PaymentService interface {
	Initialize(ctx context.Context, tenantID string, req dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error)
	Verify(ctx context.Context, tenantID, reference string) (*dto.VerifyPaymentResponse, error)
	HandleWebhook(ctx context.Context, payload []byte) error
	VerifyWebhookSignature(payload []byte, signature string) bool
}

type PaymentHandler struct {
	*BaseHandler
	service PaymentService
}

func NewPaymentHandler(service PaymentService) *PaymentHandler {
	return &PaymentHandler{service: service}
}

// InitializePayment Start a subscription checkout
// @Summary Initialize payment
// @Description Start a gateway checkout session for a subscription plan
// @Tags    payments
// @Accept  json
// @Produce json
// @Param   body body dto.InitializePaymentRequest true "Checkout object"
// @Success 200 {object} dto.InitializePaymentResponse
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Router  /payments/initialize [post]
func (h *PaymentHandler) InitializePayment(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	var req dto.InitializePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	resp, err := h.service.Initialize(h.RequestCtx(c), tenantID, req)
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// VerifyPayment Verify a checkout by reference
// @Summary Verify payment
// @Description Confirm a transaction with the gateway and activate the subscription on success
// @Tags    payments
// @Produce json
// @Param   reference path string true "Transaction reference"
// @Success 200 {object} dto.VerifyPaymentResponse
// @Failure 401 {object} dto.Error
// @Failure 502 {object} dto.Error
// @Router  /payments/verify/{reference} [get]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	tenantID, ok := h.TenantID(c)
	if !ok {
		return
	}

	resp, err := h.service.Verify(h.RequestCtx(c), tenantID, c.Param("reference"))
	if err != nil {
		h.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HandleWebhook Receive gateway webhook events
// @Summary Payment webhook
// @Description Receive signed gateway events; successful charges activate subscriptions
// @Tags    payments
// @Accept  json
// @Produce json
// @Success 200
// @Failure 400 {object} dto.Error
// @Failure 401 {object} dto.Error
// @Router  /payments/webhook [post]
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: "Failed to read request body"})
		return
	}

	signature := c.GetHeader("x-paystack-signature")
	if !h.service.VerifyWebhookSignature(payload, signature) {
		c.JSON(http.StatusUnauthorized, dto.Error{Error: "Invalid webhook signature"})
		return
	}

	if err := h.service.HandleWebhook(c.Request.Context(), payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.Error{Error: err.Error()})
		return
	}

	c.Status(http.StatusOK)
}
