package service

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
)

// PaymentService drives subscription billing through the payment gateway.
// The gateway speaks plain JSON over HTTPS; amounts go over the wire in
// minor units.
type PaymentService struct {
	repo      repository.Repository
	client    *http.Client
	baseURL   string
	secretKey string
	callback  string
	logger    *logger.Logger
}

func NewPaymentService(repo repository.Repository, baseURL, secretKey, callbackURL string, logger *logger.Logger) *PaymentService {
	return &PaymentService{
		repo:      repo,
		client:    &http.Client{Timeout: 15 * time.Second},
		baseURL:   baseURL,
		secretKey: secretKey,
		callback:  callbackURL,
		logger:    logger,
	}
}

// VerifyWebhookSignature checks the HMAC-SHA512 signature the gateway
// attaches to webhook deliveries.
func (s *PaymentService) VerifyWebhookSignature(payload []byte, signature string) bool {
	mac := hmac.New(sha512.New, []byte(s.secretKey))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

type gatewayInitData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

type gatewayVerifyData struct {
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	PaidAt   string  `json:"paid_at"`
	Customer struct {
		Email string `json:"email"`
	} `json:"customer"`
	Metadata map[string]string `json:"metadata"`
}

// Initialize starts a gateway checkout for a tenant subscription.
func (s *PaymentService) Initialize(ctx context.Context, tenantID string, req dto.InitializePaymentRequest) (*dto.InitializePaymentResponse, error) {
	payload := map[string]any{
		"email":        req.Email,
		"amount":       int64(req.Amount * 100),
		"callback_url": s.callback,
		"metadata": map[string]string{
			"tenant_id": tenantID,
			"plan":      req.Plan,
		},
	}

	var data gatewayInitData
	if err := s.post(ctx, "/transaction/initialize", payload, &data); err != nil {
		return nil, err
	}

	return &dto.InitializePaymentResponse{
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Reference:        data.Reference,
	}, nil
}

// Verify fetches a transaction's state from the gateway and, on success,
// activates the tenant's subscription.
func (s *PaymentService) Verify(ctx context.Context, tenantID, reference string) (*dto.VerifyPaymentResponse, error) {
	var data gatewayVerifyData
	if err := s.get(ctx, "/transaction/verify/"+reference, &data); err != nil {
		return nil, err
	}

	if data.Status == "success" {
		s.activateSubscription(ctx, tenantID, data.Metadata["plan"])
	}

	return &dto.VerifyPaymentResponse{
		Status:    data.Status,
		Reference: reference,
		Amount:    data.Amount / 100,
		PaidAt:    data.PaidAt,
	}, nil
}

// WebhookEvent is the gateway's event envelope. The endpoint trusts the
// payload shape; only events carrying a known tenant id are acted on.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference string            `json:"reference"`
		Status    string            `json:"status"`
		Amount    float64           `json:"amount"`
		Metadata  map[string]string `json:"metadata"`
	} `json:"data"`
}

// HandleWebhook processes a gateway callback. charge.success activates the
// subscription named in the event metadata; everything else is ignored.
func (s *PaymentService) HandleWebhook(ctx context.Context, payload []byte) error {
	var event WebhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if event.Event != "charge.success" {
		s.logger.Infof("Ignoring gateway event %s", event.Event)
		return nil
	}

	tenantID := event.Data.Metadata["tenant_id"]
	if tenantID == "" {
		s.logger.Warnf("charge.success without tenant metadata, reference %s", event.Data.Reference)
		return nil
	}

	s.activateSubscription(ctx, tenantID, event.Data.Metadata["plan"])
	return nil
}

func (s *PaymentService) activateSubscription(ctx context.Context, tenantID, plan string) {
	tenant, err := s.repo.Tenant().GetByID(ctx, tenantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warnf("Payment for unknown tenant %s", tenantID)
		} else {
			s.logger.Errorf("Failed to load tenant %s for subscription update: %v", tenantID, err)
		}
		return
	}

	tenant.SubscriptionStatus = domain.SubscriptionActive
	if plan != "" {
		tenant.SubscriptionPlan = plan
	}
	if err := s.repo.Tenant().Update(ctx, tenant); err != nil {
		s.logger.Errorf("Failed to activate subscription for tenant %s: %v", tenantID, err)
	}
}

func (s *PaymentService) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.do(req, out)
}

func (s *PaymentService) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	return s.do(req, out)
}

func (s *PaymentService) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+s.secretKey)

	res, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if res.StatusCode >= 400 {
		return fmt.Errorf("%w: status %d: %s", ErrPaymentGateway, res.StatusCode, string(body))
	}

	var envelope struct {
		Status  bool            `json:"status"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	if !envelope.Status {
		return fmt.Errorf("%w: %s", ErrPaymentGateway, envelope.Message)
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}
	return nil
}
