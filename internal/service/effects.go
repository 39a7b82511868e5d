package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/internal/service/queue"
	"github.com/vilohq/vilo-api/pkg/logger"
	"github.com/vilohq/vilo-api/pkg/utils"
)

//go:generate mockery --name NotificationPublisher --output ../mocks
type NotificationPublisher interface {
	Publish(ctx context.Context, notification *dto.NotificationResponse) error
}

// BookingEffectsService executes the secondary effects of a booking event:
// invoice generation, notification fan-out and activity logging. Every
// effect is best-effort; a failure is logged and never fails the others.
type BookingEffectsService struct {
	repo      repository.PostgresRepository
	publisher NotificationPublisher
	logger    *logger.Logger
}

func NewBookingEffectsService(repo repository.PostgresRepository, logger *logger.Logger) *BookingEffectsService {
	return &BookingEffectsService{
		repo:   repo,
		logger: logger,
	}
}

// SetNotificationPublisher sets the live-stream publisher for staff
// notifications
func (s *BookingEffectsService) SetNotificationPublisher(publisher NotificationPublisher) {
	s.publisher = publisher
}

// statusEffects dispatches on the transition target. Effects fire from the
// change descriptor, never from re-derived state.
var statusEffects = map[domain.BookingStatus]func(*BookingEffectsService, context.Context, *domain.Booking){
	domain.BookingConfirmed:  (*BookingEffectsService).onConfirmed,
	domain.BookingCancelled:  (*BookingEffectsService).onCancelled,
	domain.BookingCheckedIn:  (*BookingEffectsService).onCheckedIn,
	domain.BookingCheckedOut: (*BookingEffectsService).onCheckedOut,
}

// Apply runs every effect the event's change descriptor calls for.
func (s *BookingEffectsService) Apply(ctx context.Context, event queue.BookingEvent) {
	booking := event.Booking

	switch event.Type {
	case queue.EventBookingCreated:
		s.onCreated(ctx, &booking)

	case queue.EventBookingChanged:
		change := event.Change

		if change.PaymentBecame(domain.PaymentPaid) {
			s.onPaid(ctx, &booking)
		}

		if change.Status != nil {
			if effect, ok := statusEffects[change.Status.To]; ok {
				effect(s, ctx, &booking)
			}
		}

		// A cancellation suppresses the modified notice for the same update.
		if len(change.Details) > 0 && !change.StatusBecame(domain.BookingCancelled) {
			s.onModified(ctx, &booking, change)
		}

	default:
		s.logger.Warnf("Unknown booking event type: %s", event.Type)
	}
}

func (s *BookingEffectsService) onCreated(ctx context.Context, b *domain.Booking) {
	title := fmt.Sprintf("New booking for %s", b.GuestName)
	body := fmt.Sprintf("%s to %s, %d guest(s)", utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut), b.Guests)
	s.notifyStaff(ctx, b, domain.NotifyBookingCreated, title, body)
	s.logActivity(ctx, b, domain.ActivityBookingCreated, fmt.Sprintf("Booking created for %s", b.GuestName), nil)
}

func (s *BookingEffectsService) onPaid(ctx context.Context, b *domain.Booking) {
	s.ensureInvoice(ctx, b)
	s.logActivity(ctx, b, domain.ActivityPaymentReceived,
		fmt.Sprintf("Payment of %.2f %s received for booking %s", b.TotalAmount, b.Currency, b.ID), nil)

	title := fmt.Sprintf("Payment received for booking %s", b.ID)
	body := fmt.Sprintf("%.2f %s from %s", b.TotalAmount, b.Currency, b.GuestName)
	s.notifyStaff(ctx, b, domain.NotifyPaymentReceived, title, body)
	s.notifyCustomer(ctx, b, domain.NotifyPaymentReceived, "Payment received", body)
}

func (s *BookingEffectsService) onConfirmed(ctx context.Context, b *domain.Booking) {
	body := fmt.Sprintf("Your stay from %s to %s is confirmed", utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut))
	s.notifyCustomer(ctx, b, domain.NotifyBookingConfirmed, "Booking confirmed", body)
}

func (s *BookingEffectsService) onCancelled(ctx context.Context, b *domain.Booking) {
	title := fmt.Sprintf("Booking cancelled for %s", b.GuestName)
	body := fmt.Sprintf("%s to %s", utils.FormatDate(b.CheckIn), utils.FormatDate(b.CheckOut))
	s.notifyStaff(ctx, b, domain.NotifyBookingCancelled, title, body)
	s.notifyCustomer(ctx, b, domain.NotifyBookingCancelled, "Booking cancelled", body)
}

func (s *BookingEffectsService) onCheckedIn(ctx context.Context, b *domain.Booking) {
	s.notifyStaff(ctx, b, domain.NotifyCheckedIn,
		fmt.Sprintf("%s checked in", b.GuestName), "")
}

func (s *BookingEffectsService) onCheckedOut(ctx context.Context, b *domain.Booking) {
	s.notifyStaff(ctx, b, domain.NotifyCheckedOut,
		fmt.Sprintf("%s checked out", b.GuestName), "")
}

func (s *BookingEffectsService) onModified(ctx context.Context, b *domain.Booking, change domain.BookingChange) {
	summary := change.Summary()
	title := fmt.Sprintf("Booking updated for %s", b.GuestName)
	s.notifyStaff(ctx, b, domain.NotifyBookingModified, title, summary)
	s.notifyCustomer(ctx, b, domain.NotifyBookingModified, "Your booking was updated", summary)

	metadata, err := json.Marshal(change)
	if err != nil {
		metadata = nil
	}
	s.logActivity(ctx, b, domain.ActivityBookingUpdated, summary, metadata)
}

// ensureInvoice generates the booking's invoice if one does not already
// exist. The unique index on booking_id closes the concurrent window the
// check-then-create leaves open.
func (s *BookingEffectsService) ensureInvoice(ctx context.Context, b *domain.Booking) {
	_, err := s.repo.Invoice().GetByBookingID(ctx, b.TenantID, b.ID)
	if err == nil {
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Errorf("Failed to look up invoice for booking %s: %v", b.ID, err)
		return
	}

	id := uuid.New().String()
	invoice := &domain.Invoice{
		ID:        id,
		TenantID:  b.TenantID,
		BookingID: b.ID,
		Number:    fmt.Sprintf("INV-%s-%s", time.Now().Format("200601"), strings.ToUpper(id[:8])),
		Amount:    b.TotalAmount,
		Currency:  b.Currency,
		Status:    domain.InvoiceIssued,
		IssuedAt:  time.Now(),
	}
	if err := s.repo.Invoice().Create(ctx, invoice); err != nil {
		s.logger.Errorf("Failed to create invoice for booking %s: %v", b.ID, err)
	}
}

func (s *BookingEffectsService) notifyStaff(ctx context.Context, b *domain.Booking, t domain.NotificationType, title, body string) {
	notification := &domain.Notification{
		ID:        uuid.New().String(),
		TenantID:  b.TenantID,
		Type:      t,
		Title:     title,
		Body:      body,
		BookingID: &b.ID,
	}
	if err := s.repo.Notification().Create(ctx, notification); err != nil {
		s.logger.Errorf("Failed to create staff notification for booking %s: %v", b.ID, err)
		return
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, dto.FromNotification(notification)); err != nil {
			s.logger.Errorf("Failed to publish notification %s: %v", notification.ID, err)
		}
	}
}

func (s *BookingEffectsService) notifyCustomer(ctx context.Context, b *domain.Booking, t domain.NotificationType, title, body string) {
	if b.CustomerID == nil {
		return
	}
	notification := &domain.Notification{
		ID:         uuid.New().String(),
		TenantID:   b.TenantID,
		CustomerID: b.CustomerID,
		Type:       t,
		Title:      title,
		Body:       body,
		BookingID:  &b.ID,
	}
	if err := s.repo.Notification().Create(ctx, notification); err != nil {
		s.logger.Errorf("Failed to create customer notification for booking %s: %v", b.ID, err)
	}
}

func (s *BookingEffectsService) logActivity(ctx context.Context, b *domain.Booking, action domain.ActivityAction, message string, metadata json.RawMessage) {
	entry := &domain.ActivityEntry{
		ID:           uuid.New().String(),
		TenantID:     b.TenantID,
		Action:       action,
		ResourceType: "booking",
		ResourceID:   b.ID,
		Message:      message,
		Metadata:     metadata,
	}
	if err := s.repo.Activity().Create(ctx, entry); err != nil {
		s.logger.Errorf("Failed to log activity for booking %s: %v", b.ID, err)
	}
}
