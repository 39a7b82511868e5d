package service

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/mocks"
	"github.com/vilohq/vilo-api/pkg/logger"
)

type BookingServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockRoom    *mocks.RoomRepository
	mockBooking *mocks.BookingRepository
	mockRates   *mocks.SeasonalRateRepository
	mockCoupon  *mocks.CouponRepository
	mockEvents  *mocks.BookingEventPublisher
	service     *BookingService
}

func (s *BookingServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockRoom = new(mocks.RoomRepository)
	s.mockBooking = new(mocks.BookingRepository)
	s.mockRates = new(mocks.SeasonalRateRepository)
	s.mockCoupon = new(mocks.CouponRepository)
	s.mockEvents = new(mocks.BookingEventPublisher)

	s.mockRepo.On("Room").Return(s.mockRoom)
	s.mockRepo.On("Booking").Return(s.mockBooking)
	s.mockRepo.On("SeasonalRate").Return(s.mockRates)
	s.mockRepo.On("Coupon").Return(s.mockCoupon)

	s.service = NewBookingService(s.mockRepo, s.mockEvents, logger.NewLogger("test"))
}

func TestBookingService(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

// guardedCreate wires the mock so CreateGuarded invokes the guard with the
// given overlapping bookings, the way the real transaction does.
func (s *BookingServiceTestSuite) guardedCreate(overlapping []domain.Booking) {
	s.mockBooking.On("CreateGuarded", mock.Anything, mock.AnythingOfType("*domain.Booking"), mock.Anything).
		Return(func(ctx context.Context, b *domain.Booking, guard func([]domain.Booking) error) error {
			return guard(overlapping)
		})
}

func (s *BookingServiceTestSuite) TestCreate_Success() {
	ctx := context.Background()
	room := singleUnitRoom()
	req := dto.CreateBookingRequest{
		RoomID:    "room1",
		GuestName: "Ada Okafor",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
		Guests:    2,
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockRates.On("ListForRoom", ctx, "tenant1", "room1").Return([]domain.SeasonalRate{}, nil)
	s.guardedCreate(nil)
	s.mockEvents.On("SendBookingCreated", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	resp, err := s.service.Create(ctx, "tenant1", req)

	s.NoError(err)
	s.Equal("pending", resp.Booking.Status)
	s.Equal(900.0, resp.Booking.TotalAmount) // 3 nights at the base price
	s.Empty(resp.Conflicts)
	s.mockEvents.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreate_ConflictRejected() {
	ctx := context.Background()
	room := singleUnitRoom()
	req := dto.CreateBookingRequest{
		RoomID:    "room1",
		GuestName: "Ada Okafor",
		CheckIn:   "2024-01-12",
		CheckOut:  "2024-01-14",
	}
	overlapping := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(s.T(), "2024-01-10"), CheckOut: date(s.T(), "2024-01-15")},
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockRates.On("ListForRoom", ctx, "tenant1", "room1").Return([]domain.SeasonalRate{}, nil)
	s.guardedCreate(overlapping)

	resp, err := s.service.Create(ctx, "tenant1", req)

	s.Nil(resp)
	s.ErrorIs(err, ErrRoomUnavailable)
	s.mockEvents.AssertNotCalled(s.T(), "SendBookingCreated", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCreate_ForceCreateProceedsAndReportsConflicts() {
	ctx := context.Background()
	room := singleUnitRoom()
	req := dto.CreateBookingRequest{
		RoomID:      "room1",
		GuestName:   "Ada Okafor",
		CheckIn:     "2024-01-12",
		CheckOut:    "2024-01-14",
		ForceCreate: true,
	}
	overlapping := []domain.Booking{
		{ID: "b1", GuestName: "Prior Guest", Status: domain.BookingConfirmed,
			CheckIn: date(s.T(), "2024-01-10"), CheckOut: date(s.T(), "2024-01-15")},
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockRates.On("ListForRoom", ctx, "tenant1", "room1").Return([]domain.SeasonalRate{}, nil)
	s.guardedCreate(overlapping)
	s.mockEvents.On("SendBookingCreated", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	resp, err := s.service.Create(ctx, "tenant1", req)

	s.NoError(err)
	s.Require().Len(resp.Conflicts, 1)
	s.Equal("b1", resp.Conflicts[0].ID)
}

func (s *BookingServiceTestSuite) TestCreate_CouponApplied() {
	ctx := context.Background()
	room := singleUnitRoom()
	req := dto.CreateBookingRequest{
		RoomID:     "room1",
		GuestName:  "Ada Okafor",
		CheckIn:    "2024-06-10",
		CheckOut:   "2024-06-13",
		CouponCode: "SAVE10",
	}
	maxUses := 100
	coupon := &domain.Coupon{
		ID: "coupon1", Code: "SAVE10",
		DiscountType: domain.DiscountPercent, DiscountValue: 10,
		MaxUses: &maxUses, Active: true,
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockRates.On("ListForRoom", ctx, "tenant1", "room1").Return([]domain.SeasonalRate{}, nil)
	s.mockCoupon.On("GetByCode", ctx, "tenant1", "SAVE10").Return(coupon, nil)
	s.guardedCreate(nil)
	s.mockCoupon.On("IncrementUsage", ctx, "tenant1", "coupon1").Return(nil)
	s.mockEvents.On("SendBookingCreated", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	resp, err := s.service.Create(ctx, "tenant1", req)

	s.NoError(err)
	s.Equal(90.0, resp.Booking.DiscountAmount)
	s.Equal(810.0, resp.Booking.TotalAmount)
	s.mockCoupon.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestCreate_SerializationFailureRetriedOnce() {
	ctx := context.Background()
	room := singleUnitRoom()
	req := dto.CreateBookingRequest{
		RoomID:    "room1",
		GuestName: "Ada Okafor",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockRates.On("ListForRoom", ctx, "tenant1", "room1").Return([]domain.SeasonalRate{}, nil)
	s.mockBooking.On("CreateGuarded", mock.Anything, mock.AnythingOfType("*domain.Booking"), mock.Anything).
		Return(&pgconn.PgError{Code: "40001"}).Once()
	s.mockBooking.On("CreateGuarded", mock.Anything, mock.AnythingOfType("*domain.Booking"), mock.Anything).
		Return(func(ctx context.Context, b *domain.Booking, guard func([]domain.Booking) error) error {
			return guard(nil)
		}).Once()
	s.mockEvents.On("SendBookingCreated", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	resp, err := s.service.Create(ctx, "tenant1", req)

	s.NoError(err)
	s.NotNil(resp)
	s.mockBooking.AssertNumberOfCalls(s.T(), "CreateGuarded", 2)
}

func (s *BookingServiceTestSuite) TestUpdate_StatusChangePublishesEvent() {
	ctx := context.Background()
	prev := &domain.Booking{
		ID: "booking1", TenantID: "tenant1", RoomID: "room1",
		GuestName: "Ada Okafor",
		CheckIn:   date(s.T(), "2024-06-10"), CheckOut: date(s.T(), "2024-06-13"),
		Guests: 2, Status: domain.BookingPending, PaymentStatus: domain.PaymentPending,
	}
	status := "confirmed"

	s.mockBooking.On("GetByID", ctx, "tenant1", "booking1").Return(prev, nil)
	s.mockBooking.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	s.mockEvents.On("SendBookingChanged", ctx, mock.AnythingOfType("*domain.Booking"),
		mock.MatchedBy(func(c domain.BookingChange) bool {
			return c.StatusBecame(domain.BookingConfirmed) && len(c.Details) == 0
		})).Return(nil).Once()

	resp, err := s.service.Update(ctx, "tenant1", "booking1", dto.UpdateBookingRequest{Status: &status})

	s.NoError(err)
	s.Equal("confirmed", resp.Status)
	s.mockEvents.AssertExpectations(s.T())
}

func (s *BookingServiceTestSuite) TestUpdate_NoChangePublishesNothing() {
	ctx := context.Background()
	prev := &domain.Booking{
		ID: "booking1", TenantID: "tenant1", RoomID: "room1",
		GuestName: "Ada Okafor",
		CheckIn:   date(s.T(), "2024-06-10"), CheckOut: date(s.T(), "2024-06-13"),
		Guests: 2, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending,
	}
	same := "confirmed"

	s.mockBooking.On("GetByID", ctx, "tenant1", "booking1").Return(prev, nil)
	s.mockBooking.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)

	_, err := s.service.Update(ctx, "tenant1", "booking1", dto.UpdateBookingRequest{Status: &same})

	s.NoError(err)
	s.mockEvents.AssertNotCalled(s.T(), "SendBookingChanged", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestUpdate_MovedStayRechecksAvailability() {
	ctx := context.Background()
	room := singleUnitRoom()
	prev := &domain.Booking{
		ID: "booking1", TenantID: "tenant1", RoomID: "room1",
		GuestName: "Ada Okafor",
		CheckIn:   date(s.T(), "2024-06-10"), CheckOut: date(s.T(), "2024-06-13"),
		Guests: 1, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending,
	}
	newCheckOut := "2024-06-15"
	blocker := []domain.Booking{
		{ID: "other", Status: domain.BookingConfirmed,
			CheckIn: date(s.T(), "2024-06-13"), CheckOut: date(s.T(), "2024-06-16")},
	}

	s.mockBooking.On("GetByID", ctx, "tenant1", "booking1").Return(prev, nil)
	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockBooking.On("Overlapping", ctx, "tenant1", "room1",
		prev.CheckIn, date(s.T(), "2024-06-15"), "booking1").Return(blocker, nil)

	resp, err := s.service.Update(ctx, "tenant1", "booking1", dto.UpdateBookingRequest{CheckOut: &newCheckOut})

	s.Nil(resp)
	s.ErrorIs(err, ErrRoomUnavailable)
	s.mockBooking.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestUpdate_CancellationSkipsAvailabilityCheck() {
	ctx := context.Background()
	prev := &domain.Booking{
		ID: "booking1", TenantID: "tenant1", RoomID: "room1",
		GuestName: "Ada Okafor",
		CheckIn:   date(s.T(), "2024-06-10"), CheckOut: date(s.T(), "2024-06-13"),
		Guests: 1, Status: domain.BookingConfirmed, PaymentStatus: domain.PaymentPending,
	}
	cancelled := "cancelled"
	newCheckOut := "2024-06-15"

	s.mockBooking.On("GetByID", ctx, "tenant1", "booking1").Return(prev, nil)
	s.mockBooking.On("Update", ctx, mock.AnythingOfType("*domain.Booking")).Return(nil)
	s.mockEvents.On("SendBookingChanged", ctx, mock.AnythingOfType("*domain.Booking"),
		mock.AnythingOfType("domain.BookingChange")).Return(nil)

	resp, err := s.service.Update(ctx, "tenant1", "booking1", dto.UpdateBookingRequest{
		Status:   &cancelled,
		CheckOut: &newCheckOut,
	})

	s.NoError(err)
	s.Equal("cancelled", resp.Status)
	s.mockBooking.AssertNotCalled(s.T(), "Overlapping",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingServiceTestSuite) TestCheckConflicts_ReportsWithoutCreating() {
	ctx := context.Background()
	room := singleUnitRoom()
	room.TotalUnits = 2
	req := dto.CheckConflictsRequest{
		RoomID:  "room1",
		CheckIn: "2024-01-12", CheckOut: "2024-01-14",
	}
	overlapping := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(s.T(), "2024-01-10"), CheckOut: date(s.T(), "2024-01-15")},
		{ID: "b2", Status: domain.BookingPending,
			CheckIn: date(s.T(), "2024-01-10"), CheckOut: date(s.T(), "2024-01-15")},
	}

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockBooking.On("Overlapping", ctx, "tenant1", "room1",
		date(s.T(), "2024-01-12"), date(s.T(), "2024-01-14"), "").Return(overlapping, nil)

	resp, err := s.service.CheckConflicts(ctx, "tenant1", req)

	s.NoError(err)
	s.True(resp.HasConflict)
	s.False(resp.Available)
	s.Equal(0, resp.AvailableUnits)
	s.Equal(2, resp.Nights)
	s.Len(resp.Conflicts, 2)
	s.mockBooking.AssertNotCalled(s.T(), "CreateGuarded", mock.Anything, mock.Anything, mock.Anything)
}
