package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/vilohq/vilo-api/internal/api/dto"
	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/logger"
	"github.com/vilohq/vilo-api/pkg/utils"
)

//go:generate mockery --name BookingEventPublisher --output ../mocks
type BookingEventPublisher interface {
	SendBookingCreated(ctx context.Context, booking *domain.Booking) error
	SendBookingChanged(ctx context.Context, booking *domain.Booking, change domain.BookingChange) error
}

type BookingService struct {
	repo   repository.Repository
	events BookingEventPublisher
	logger *logger.Logger
}

func NewBookingService(repo repository.Repository, events BookingEventPublisher, logger *logger.Logger) *BookingService {
	return &BookingService{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

const serializationFailure = "40001"

func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == serializationFailure
}

// Create books a stay. The availability check and the insert run inside one
// serializable transaction so two concurrent requests for the last unit
// cannot both pass the check; a serialization failure is retried once.
func (s *BookingService) Create(ctx context.Context, tenantID string, req dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	return s.CreateForCustomer(ctx, tenantID, nil, req)
}

// CreateForCustomer is Create with the booking linked to a guest account;
// the public discovery flow provisions the customer first.
func (s *BookingService) CreateForCustomer(ctx context.Context, tenantID string, customerID *string, req dto.CreateBookingRequest) (*dto.CreateBookingResponse, error) {
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	room, err := s.repo.Room().GetByID(ctx, tenantID, req.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if err := ValidateStay(room, checkIn, checkOut); err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		RoomID:      room.ID,
		CustomerID:  customerID,
		GuestName:   req.GuestName,
		GuestEmail:  req.GuestEmail,
		GuestPhone:  req.GuestPhone,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Guests:      req.Guests,
		Status:      domain.BookingPending,
		Currency:    room.Currency,
		Source:      domain.SourceDirect,
		ExternalRef: req.ExternalRef,
		Notes:       req.Notes,
	}
	if booking.Guests == 0 {
		booking.Guests = 1
	}
	booking.PaymentStatus = domain.PaymentPending
	if req.Source == string(domain.SourceChannel) {
		booking.Source = domain.SourceChannel
	}

	rates, err := s.repo.SeasonalRate().ListForRoom(ctx, tenantID, room.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seasonal rates: %w", err)
	}
	schedule := ResolveSchedule(room, rates, checkIn, checkOut)
	booking.TotalAmount = schedule.Subtotal

	var coupon *domain.Coupon
	if req.CouponCode != "" {
		coupon, err = s.repo.Coupon().GetByCode(ctx, tenantID, req.CouponCode)
		if err != nil {
			return nil, ErrCouponNotFound
		}
		if !coupon.Usable(time.Now()) {
			return nil, ErrCouponNotUsable
		}
		booking.CouponID = &coupon.ID
		booking.DiscountAmount = coupon.DiscountOn(schedule.Subtotal)
		booking.TotalAmount = schedule.Subtotal - booking.DiscountAmount
	}

	var conflicts []domain.Booking
	guard := func(overlapping []domain.Booking) error {
		result := ResolveAvailability(room, overlapping, checkIn, checkOut, "")
		conflicts = result.Conflicts
		if !result.Available && !req.ForceCreate {
			return ErrRoomUnavailable
		}
		return nil
	}

	err = s.repo.Booking().CreateGuarded(ctx, booking, guard)
	if isSerializationFailure(err) {
		s.logger.Warnf("Booking insert hit serialization failure, retrying once: %s", booking.ID)
		err = s.repo.Booking().CreateGuarded(ctx, booking, guard)
	}
	if err != nil {
		return nil, err
	}

	if coupon != nil {
		if err := s.repo.Coupon().IncrementUsage(ctx, tenantID, coupon.ID); err != nil {
			s.logger.Errorf("Failed to record coupon usage for %s: %v", coupon.Code, err)
		}
	}

	if err := s.events.SendBookingCreated(ctx, booking); err != nil {
		s.logger.Errorf("Failed to publish booking created event for %s: %v", booking.ID, err)
	}

	return &dto.CreateBookingResponse{
		Booking:   *dto.FromBooking(booking),
		Conflicts: dto.FromConflicts(conflicts),
	}, nil
}

// Update applies a partial update to a booking. The pre-update row is read
// first; the change descriptor computed from prev vs. next drives the
// side-effect event, so each effect fires at most once per actual change.
func (s *BookingService) Update(ctx context.Context, tenantID, id string, req dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	prev, err := s.repo.Booking().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	next := *prev
	if req.RoomID != nil {
		next.RoomID = *req.RoomID
	}
	if req.GuestName != nil {
		next.GuestName = *req.GuestName
	}
	if req.GuestEmail != nil {
		next.GuestEmail = *req.GuestEmail
	}
	if req.GuestPhone != nil {
		next.GuestPhone = *req.GuestPhone
	}
	if req.CheckIn != nil {
		next.CheckIn, err = utils.ParseDate(*req.CheckIn)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if req.CheckOut != nil {
		next.CheckOut, err = utils.ParseDate(*req.CheckOut)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}
	if req.Guests != nil {
		next.Guests = *req.Guests
	}
	if req.Status != nil {
		next.Status = domain.BookingStatus(*req.Status)
	}
	if req.PaymentStatus != nil {
		next.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
	}
	if req.Notes != nil {
		next.Notes = *req.Notes
	}

	change := domain.DiffBookings(prev, &next)

	// Re-check availability when the stay moved, unless this update is the
	// cancellation itself.
	staysCountable := next.Status != domain.BookingCancelled
	stayMoved := next.RoomID != prev.RoomID ||
		!utils.SameDate(next.CheckIn, prev.CheckIn) ||
		!utils.SameDate(next.CheckOut, prev.CheckOut)
	if staysCountable && stayMoved {
		room, err := s.repo.Room().GetByID(ctx, tenantID, next.RoomID)
		if err != nil {
			return nil, ErrRoomNotFound
		}
		if err := ValidateStay(room, next.CheckIn, next.CheckOut); err != nil {
			return nil, err
		}
		existing, err := s.repo.Booking().Overlapping(ctx, tenantID, next.RoomID, next.CheckIn, next.CheckOut, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
		}
		result := ResolveAvailability(room, existing, next.CheckIn, next.CheckOut, id)
		if !result.Available && !req.ForceCreate {
			return nil, ErrRoomUnavailable
		}
	}

	if err := s.repo.Booking().Update(ctx, &next); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	if !change.Empty() {
		if err := s.events.SendBookingChanged(ctx, &next, change); err != nil {
			s.logger.Errorf("Failed to publish booking changed event for %s: %v", next.ID, err)
		}
	}

	return dto.FromBooking(&next), nil
}

func (s *BookingService) GetByID(ctx context.Context, tenantID, id string) (*dto.BookingResponse, error) {
	booking, err := s.repo.Booking().GetByID(ctx, tenantID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return dto.FromBooking(booking), nil
}

func (s *BookingService) List(ctx context.Context, filter domain.BookingFilter) ([]dto.BookingResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	filter.Limit = filter.PageSize
	filter.Offset = (filter.Page - 1) * filter.PageSize

	bookings, err := s.repo.Booking().List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return dto.FromBookings(bookings), nil
}

// Delete removes a booking outright. Normal flows cancel instead; this is
// the explicit admin action.
func (s *BookingService) Delete(ctx context.Context, tenantID, id string) error {
	if _, err := s.repo.Booking().GetByID(ctx, tenantID, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		return err
	}
	return s.repo.Booking().Delete(ctx, tenantID, id)
}

// CheckConflicts is the availability probe used by the booking form.
func (s *BookingService) CheckConflicts(ctx context.Context, tenantID string, req dto.CheckConflictsRequest) (*dto.CheckConflictsResponse, error) {
	checkIn, err := utils.ParseDate(req.CheckIn)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	checkOut, err := utils.ParseDate(req.CheckOut)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	room, err := s.repo.Room().GetByID(ctx, tenantID, req.RoomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if err := ValidateStay(room, checkIn, checkOut); err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking().Overlapping(ctx, tenantID, req.RoomID, checkIn, checkOut, req.ExcludeBookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}

	result := ResolveAvailability(room, existing, checkIn, checkOut, req.ExcludeBookingID)
	return &dto.CheckConflictsResponse{
		HasConflict:    !result.Available,
		Available:      result.Available,
		AvailableUnits: result.AvailableUnits,
		Nights:         result.Nights,
		Conflicts:      dto.FromConflicts(result.Conflicts),
	}, nil
}
