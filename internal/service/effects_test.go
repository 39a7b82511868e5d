package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/mocks"
	"github.com/vilohq/vilo-api/internal/service/queue"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type BookingEffectsTestSuite struct {
	suite.Suite
	mockRepo         *mocks.Repository
	mockInvoice      *mocks.InvoiceRepository
	mockNotification *mocks.NotificationRepository
	mockActivity     *mocks.ActivityRepository
	mockPublisher    *mocks.NotificationPublisher
	service          *BookingEffectsService
}

func (s *BookingEffectsTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockInvoice = new(mocks.InvoiceRepository)
	s.mockNotification = new(mocks.NotificationRepository)
	s.mockActivity = new(mocks.ActivityRepository)
	s.mockPublisher = new(mocks.NotificationPublisher)

	s.mockRepo.On("Invoice").Return(s.mockInvoice)
	s.mockRepo.On("Notification").Return(s.mockNotification)
	s.mockRepo.On("Activity").Return(s.mockActivity)

	s.service = NewBookingEffectsService(s.mockRepo, logger.NewLogger("test"))
	s.service.SetNotificationPublisher(s.mockPublisher)
}

func TestBookingEffects(t *testing.T) {
	suite.Run(t, new(BookingEffectsTestSuite))
}

func (s *BookingEffectsTestSuite) paidBooking() domain.Booking {
	customerID := "cust1"
	return domain.Booking{
		ID:            "booking1",
		TenantID:      "tenant1",
		RoomID:        "room1",
		CustomerID:    &customerID,
		GuestName:     "Ada Lovelace",
		CheckIn:       date(s.T(), "2024-03-01"),
		CheckOut:      date(s.T(), "2024-03-04"),
		Guests:        2,
		Status:        domain.BookingConfirmed,
		PaymentStatus: domain.PaymentPaid,
		TotalAmount:   900,
		Currency:      "USD",
	}
}

func (s *BookingEffectsTestSuite) TestApply_PaymentPaid_GeneratesInvoiceOnce() {
	ctx := context.Background()
	booking := s.paidBooking()
	change := domain.BookingChange{
		Payment: &domain.PaymentTransition{From: domain.PaymentPending, To: domain.PaymentPaid},
	}

	s.mockInvoice.On("GetByBookingID", ctx, "tenant1", "booking1").
		Return(nil, gorm.ErrRecordNotFound).Once()
	s.mockInvoice.On("Create", ctx, mock.AnythingOfType("*domain.Invoice")).Return(nil).Once()
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.ActivityEntry")).Return(nil).Once()
	// One staff notification plus one customer notification.
	s.mockNotification.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Times(2)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.NotificationResponse")).Return(nil).Once()

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingChanged,
		TenantID: "tenant1",
		Booking:  booking,
		Change:   change,
	})

	s.mockInvoice.AssertExpectations(s.T())
	s.mockNotification.AssertExpectations(s.T())
	s.mockActivity.AssertExpectations(s.T())
	s.mockPublisher.AssertExpectations(s.T())
}

func (s *BookingEffectsTestSuite) TestApply_RepeatedEventWithoutTransition_FiresNothing() {
	ctx := context.Background()
	booking := s.paidBooking()

	// Replaying the same state produces an empty diff, so no effect fires.
	change := domain.DiffBookings(&booking, &booking)
	s.Require().True(change.Empty())

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingChanged,
		TenantID: "tenant1",
		Booking:  booking,
		Change:   change,
	})

	s.mockInvoice.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.mockNotification.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BookingEffectsTestSuite) TestApply_PaymentPaid_ExistingInvoiceNotDuplicated() {
	ctx := context.Background()
	booking := s.paidBooking()
	change := domain.BookingChange{
		Payment: &domain.PaymentTransition{From: domain.PaymentPending, To: domain.PaymentPaid},
	}

	s.mockInvoice.On("GetByBookingID", ctx, "tenant1", "booking1").
		Return(&domain.Invoice{ID: "inv1", BookingID: "booking1"}, nil).Once()
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.ActivityEntry")).Return(nil)
	s.mockNotification.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.NotificationResponse")).Return(nil)

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingChanged,
		TenantID: "tenant1",
		Booking:  booking,
		Change:   change,
	})

	s.mockInvoice.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *BookingEffectsTestSuite) TestApply_CancellationSuppressesModifiedNotice() {
	ctx := context.Background()
	booking := s.paidBooking()
	booking.Status = domain.BookingCancelled
	change := domain.BookingChange{
		Status: &domain.Transition{From: domain.BookingConfirmed, To: domain.BookingCancelled},
		Details: []domain.FieldChange{
			{Field: "check_out", From: "2024-03-04", To: "2024-03-03"},
		},
	}

	// Cancellation notifies staff and customer; the modified notice for the
	// date change is suppressed, so exactly two notifications are written.
	s.mockNotification.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Times(2)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.NotificationResponse")).Return(nil).Once()

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingChanged,
		TenantID: "tenant1",
		Booking:  booking,
		Change:   change,
	})

	s.mockNotification.AssertExpectations(s.T())
}

func (s *BookingEffectsTestSuite) TestApply_DateChangeFiresModifiedNotice() {
	ctx := context.Background()
	booking := s.paidBooking()
	change := domain.BookingChange{
		Details: []domain.FieldChange{
			{Field: "check_in", From: "2024-03-01", To: "2024-03-02"},
		},
	}

	s.mockNotification.On("Create", ctx, mock.AnythingOfType("*domain.Notification")).Return(nil).Times(2)
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.NotificationResponse")).Return(nil).Once()
	s.mockActivity.On("Create", ctx, mock.MatchedBy(func(e *domain.ActivityEntry) bool {
		return e.Action == domain.ActivityBookingUpdated && e.ResourceID == "booking1"
	})).Return(nil).Once()

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingChanged,
		TenantID: "tenant1",
		Booking:  booking,
		Change:   change,
	})

	s.mockNotification.AssertExpectations(s.T())
	s.mockActivity.AssertExpectations(s.T())
}

func (s *BookingEffectsTestSuite) TestApply_Created_NotifiesStaffAndLogs() {
	ctx := context.Background()
	booking := s.paidBooking()

	s.mockNotification.On("Create", ctx, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == domain.NotifyBookingCreated && n.CustomerID == nil
	})).Return(nil).Once()
	s.mockPublisher.On("Publish", ctx, mock.AnythingOfType("*dto.NotificationResponse")).Return(nil).Once()
	s.mockActivity.On("Create", ctx, mock.AnythingOfType("*domain.ActivityEntry")).Return(nil).Once()

	s.service.Apply(ctx, queue.BookingEvent{
		Type:     queue.EventBookingCreated,
		TenantID: "tenant1",
		Booking:  booking,
	})

	s.mockNotification.AssertExpectations(s.T())
	s.mockActivity.AssertExpectations(s.T())
}
