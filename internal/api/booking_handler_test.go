package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/service"
	contextutils "github.com/vilohq/vilo-api/internal/utils"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockBookingService
	handler     *BookingHandler
}

type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CreateBookingResponse), args.Error(1)
}

func (m *MockBookingService) GetByID(ctx context.Context, tenantID, id string) (*dto.BookingResponse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *MockBookingService) List(ctx context.Context, filter domain.BookingFilter) ([]dto.BookingResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.BookingResponse), args.Error(1)
}

func (m *MockBookingService) Update(ctx context.Context, tenantID, id string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	args := m.Called(ctx, tenantID, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BookingResponse), args.Error(1)
}

func (m *MockBookingService) Delete(ctx context.Context, tenantID, id string) error {
	args := m.Called(ctx, tenantID, id)
	return args.Error(0)
}

func (m *MockBookingService) CheckConflicts(ctx context.Context, tenantID string, req dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, error) {
	args := m.Called(ctx, tenantID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.CheckConflictsResponse), args.Error(1)
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockService = new(MockBookingService)
	s.handler = NewBookingHandler(s.mockService)

	// Setup routes
	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
	s.router.GET("/bookings", s.handler.ListBookings)
	s.router.POST("/bookings/check-conflicts", s.handler.CheckConflicts)
}

func TestBookingHandler(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestCreateBooking_Success() {
	// Arrange
	req := dto.CreateBookingRequest{
		RoomID:    "room1",
		GuestName: "Ada Okafor",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
		Guests:    2,
	}
	expected := &dto.CreateBookingResponse{
		Booking: dto.BookingResponse{
			ID:       "booking1",
			TenantID: "tenant1",
			RoomID:   "room1",
			Status:   "pending",
		},
	}

	s.mockService.On("Create", mock.Anything, "tenant1", mock.MatchedBy(func(r dto.CreateBookingRequest) bool {
		return r.RoomID == req.RoomID &&
			r.GuestName == req.GuestName &&
			r.CheckIn == req.CheckIn &&
			r.CheckOut == req.CheckOut &&
			r.Guests == req.Guests
	})).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.CreateBooking(c)

	// Assert
	s.Equal(http.StatusCreated, w.Code)
	var response dto.CreateBookingResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Equal("booking1", response.Booking.ID)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestCreateBooking_RoomUnavailable() {
	// Arrange
	req := dto.CreateBookingRequest{
		RoomID:    "room1",
		GuestName: "Ada Okafor",
		CheckIn:   "2024-06-10",
		CheckOut:  "2024-06-13",
	}

	s.mockService.On("Create", mock.Anything, "tenant1", mock.Anything).
		Return(nil, service.ErrRoomUnavailable)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.CreateBooking(c)

	// Assert
	s.Equal(http.StatusConflict, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestCreateBooking_MissingTenantScope() {
	// Arrange
	body, _ := json.Marshal(dto.CreateBookingRequest{RoomID: "room1", GuestName: "Ada Okafor"})
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/bookings", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")

	// Act
	s.handler.CreateBooking(c)

	// Assert
	s.Equal(http.StatusUnauthorized, w.Code)
	s.mockService.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestGetBooking_NotFound() {
	// Arrange
	s.mockService.On("GetByID", mock.Anything, "tenant1", "missing").
		Return(nil, service.ErrBookingNotFound)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/bookings/missing", nil)
	c.Params = []gin.Param{{Key: "id", Value: "missing"}}
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.GetBooking(c)

	// Assert
	s.Equal(http.StatusNotFound, w.Code)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestListBookings_FilterFromQuery() {
	// Arrange
	expected := []dto.BookingResponse{
		{ID: "booking1", TenantID: "tenant1", RoomID: "room1", Status: "confirmed"},
	}

	s.mockService.On("List", mock.Anything, mock.MatchedBy(func(f domain.BookingFilter) bool {
		return f.TenantID == "tenant1" &&
			f.RoomID == "room1" &&
			f.Status == "confirmed" &&
			f.Page == 2 &&
			f.PageSize == 10
	})).Return(expected, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/bookings?room_id=room1&status=confirmed&page=2&page_size=10", nil)
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.ListBookings(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response []dto.BookingResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.Len(response, 1)
	s.mockService.AssertExpectations(s.T())
}

func (s *BookingHandlerTestSuite) TestListBookings_BadDateRejected() {
	// Arrange
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/bookings?from=12-06-2024", nil)
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.ListBookings(c)

	// Assert
	s.Equal(http.StatusBadRequest, w.Code)
	s.mockService.AssertNotCalled(s.T(), "List", mock.Anything, mock.Anything)
}

func (s *BookingHandlerTestSuite) TestCheckConflicts_Success() {
	// Arrange
	req := dto.CheckConflictsRequest{
		RoomID:   "room1",
		CheckIn:  "2024-06-10",
		CheckOut: "2024-06-13",
	}
	expected := &dto.CheckConflictsResponse{
		HasConflict:    true,
		Available:      false,
		AvailableUnits: 0,
		Nights:         3,
		Conflicts: []dto.ConflictResponse{
			{ID: "other", GuestName: "Prior Guest", Status: "confirmed"},
		},
	}

	s.mockService.On("CheckConflicts", mock.Anything, "tenant1", mock.MatchedBy(func(r dto.CheckConflictsRequest) bool {
		return r.RoomID == req.RoomID && r.CheckIn == req.CheckIn && r.CheckOut == req.CheckOut
	})).Return(expected, nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/bookings/check-conflicts", bytes.NewBuffer(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set(string(contextutils.TenantIDKey), "tenant1")

	// Act
	s.handler.CheckConflicts(c)

	// Assert
	s.Equal(http.StatusOK, w.Code)
	var response dto.CheckConflictsResponse
	s.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	s.True(response.HasConflict)
	s.Len(response.Conflicts, 1)
	s.mockService.AssertExpectations(s.T())
}
