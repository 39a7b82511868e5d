package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/mocks"
	"github.com/vilohq/vilo-api/pkg/utils"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := utils.ParseDate(s)
	require.NoError(t, err)
	return d
}

func singleUnitRoom() *domain.Room {
	return &domain.Room{
		ID:                "room1",
		TenantID:          "tenant1",
		Name:              "Garden Suite",
		BasePricePerNight: 300,
		Currency:          "USD",
		TotalUnits:        1,
		MinStayNights:     1,
	}
}

func TestValidateStay(t *testing.T) {
	maxStay := 7
	room := singleUnitRoom()
	room.MinStayNights = 2
	room.MaxStayNights = &maxStay

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  error
	}{
		{"valid stay", "2024-03-01", "2024-03-04", nil},
		{"check-out equals check-in", "2024-03-01", "2024-03-01", ErrInvalidRange},
		{"check-out before check-in", "2024-03-04", "2024-03-01", ErrInvalidRange},
		{"below minimum", "2024-03-01", "2024-03-02", ErrStayTooShort},
		{"above maximum", "2024-03-01", "2024-03-10", ErrStayTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStay(room, date(t, tt.checkIn), date(t, tt.checkOut))
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestResolveAvailability_SingleUnitConflict(t *testing.T) {
	room := singleUnitRoom()
	existing := []domain.Booking{
		{ID: "b1", RoomID: "room1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-15")},
	}

	result := ResolveAvailability(room, existing, date(t, "2024-01-12"), date(t, "2024-01-14"), "")

	assert.False(t, result.Available)
	assert.Equal(t, 0, result.AvailableUnits)
	assert.Equal(t, 2, result.Nights)
	require.Len(t, result.Conflicts, 1)
	assert.Equal(t, "b1", result.Conflicts[0].ID)
}

func TestResolveAvailability_BackToBackStaysDoNotConflict(t *testing.T) {
	room := singleUnitRoom()
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-12")},
	}

	// Check-in on the other booking's check-out day: half-open ranges touch
	// but do not overlap.
	result := ResolveAvailability(room, existing, date(t, "2024-01-12"), date(t, "2024-01-14"), "")

	assert.True(t, result.Available)
	assert.Equal(t, 1, result.AvailableUnits)
	assert.Empty(t, result.Conflicts)
}

func TestResolveAvailability_CancelledBookingsNeverCount(t *testing.T) {
	room := singleUnitRoom()
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingCancelled,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-15")},
	}

	result := ResolveAvailability(room, existing, date(t, "2024-01-12"), date(t, "2024-01-14"), "")

	assert.True(t, result.Available)
	assert.Empty(t, result.Conflicts)
}

func TestResolveAvailability_ExcludesBookingUnderEdit(t *testing.T) {
	room := singleUnitRoom()
	existing := []domain.Booking{
		{ID: "editing", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-15")},
	}

	result := ResolveAvailability(room, existing, date(t, "2024-01-11"), date(t, "2024-01-13"), "editing")

	assert.True(t, result.Available)
	assert.Empty(t, result.Conflicts)
}

func TestResolveAvailability_MultiUnitCountsWorstNight(t *testing.T) {
	room := singleUnitRoom()
	room.TotalUnits = 2
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-15")},
		{ID: "b2", Status: domain.BookingPending,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-15")},
	}

	// Both units taken on every requested night.
	result := ResolveAvailability(room, existing, date(t, "2024-01-12"), date(t, "2024-01-14"), "")

	assert.False(t, result.Available)
	assert.Equal(t, 0, result.AvailableUnits)
	assert.Len(t, result.Conflicts, 2)
}

func TestResolveAvailability_MultiUnitPartialOccupancy(t *testing.T) {
	room := singleUnitRoom()
	room.TotalUnits = 3
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-12")},
		{ID: "b2", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-11"), CheckOut: date(t, "2024-01-13")},
	}

	// Worst night is Jan 11 with two units occupied.
	result := ResolveAvailability(room, existing, date(t, "2024-01-10"), date(t, "2024-01-13"), "")

	assert.True(t, result.Available)
	assert.Equal(t, 1, result.AvailableUnits)
}

func TestResolveBookedDates(t *testing.T) {
	room := singleUnitRoom()
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-12")},
		{ID: "b2", Status: domain.BookingCancelled,
			CheckIn: date(t, "2024-01-12"), CheckOut: date(t, "2024-01-14")},
	}

	booked := ResolveBookedDates(room, existing, date(t, "2024-01-09"), date(t, "2024-01-15"))

	assert.Equal(t, []string{"2024-01-10", "2024-01-11"}, booked)
}

func TestResolveBookedDates_Deterministic(t *testing.T) {
	room := singleUnitRoom()
	room.TotalUnits = 2
	existing := []domain.Booking{
		{ID: "b1", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-10"), CheckOut: date(t, "2024-01-13")},
		{ID: "b2", Status: domain.BookingConfirmed,
			CheckIn: date(t, "2024-01-11"), CheckOut: date(t, "2024-01-14")},
	}

	first := ResolveBookedDates(room, existing, date(t, "2024-01-09"), date(t, "2024-01-15"))
	second := ResolveBookedDates(room, existing, date(t, "2024-01-09"), date(t, "2024-01-15"))

	assert.Equal(t, []string{"2024-01-11", "2024-01-12"}, first)
	assert.Equal(t, first, second)
}

type AvailabilityServiceTestSuite struct {
	suite.Suite
	mockRepo    *mocks.Repository
	mockRoom    *mocks.RoomRepository
	mockBooking *mocks.BookingRepository
	service     *AvailabilityService
}

func (s *AvailabilityServiceTestSuite) SetupTest() {
	s.mockRepo = new(mocks.Repository)
	s.mockRoom = new(mocks.RoomRepository)
	s.mockBooking = new(mocks.BookingRepository)

	s.mockRepo.On("Room").Return(s.mockRoom)
	s.mockRepo.On("Booking").Return(s.mockBooking)

	s.service = NewAvailabilityService(s.mockRepo)
}

func TestAvailabilityService(t *testing.T) {
	suite.Run(t, new(AvailabilityServiceTestSuite))
}

func (s *AvailabilityServiceTestSuite) TestCheck_Success() {
	ctx := context.Background()
	room := singleUnitRoom()
	checkIn := date(s.T(), "2024-01-12")
	checkOut := date(s.T(), "2024-01-14")

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(room, nil)
	s.mockBooking.On("Overlapping", ctx, "tenant1", "room1", checkIn, checkOut, "").
		Return([]domain.Booking{}, nil)

	result, err := s.service.Check(ctx, "tenant1", "room1", checkIn, checkOut, "")

	s.NoError(err)
	s.True(result.Available)
	s.Equal(1, result.AvailableUnits)
	s.mockBooking.AssertExpectations(s.T())
}

func (s *AvailabilityServiceTestSuite) TestCheck_RoomNotFound() {
	ctx := context.Background()

	s.mockRoom.On("GetByID", ctx, "tenant1", "missing").Return(nil, assert.AnError)

	result, err := s.service.Check(ctx, "tenant1", "missing", date(s.T(), "2024-01-12"), date(s.T(), "2024-01-14"), "")

	s.Nil(result)
	s.ErrorIs(err, ErrRoomNotFound)
}

func (s *AvailabilityServiceTestSuite) TestBookedDates_InvalidWindow() {
	ctx := context.Background()

	s.mockRoom.On("GetByID", ctx, "tenant1", "room1").Return(singleUnitRoom(), nil)

	dates, err := s.service.BookedDates(ctx, "tenant1", "room1", date(s.T(), "2024-01-14"), date(s.T(), "2024-01-12"))

	s.Nil(dates)
	s.ErrorIs(err, ErrInvalidRange)
}
