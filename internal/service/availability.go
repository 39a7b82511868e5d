package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/utils"
)

// AvailabilityResult is the outcome of one availability probe. Conflicts are
// always reported, even when ForceCreate lets the caller proceed anyway.
type AvailabilityResult struct {
	Available      bool             `json:"available"`
	AvailableUnits int              `json:"available_units"`
	Nights         int              `json:"nights"`
	Conflicts      []domain.Booking `json:"conflicts,omitempty"`
}

type AvailabilityService struct {
	repo repository.Repository
}

func NewAvailabilityService(repo repository.Repository) *AvailabilityService {
	return &AvailabilityService{repo: repo}
}

// ValidateStay checks the requested range against the room's stay bounds.
// Range and stay violations are validation failures, distinct from the
// normal negative "unavailable" result.
func ValidateStay(room *domain.Room, checkIn, checkOut time.Time) error {
	nights := utils.NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return ErrInvalidRange
	}
	if nights < room.MinStayNights {
		return fmt.Errorf("%w: %d nights, minimum %d", ErrStayTooShort, nights, room.MinStayNights)
	}
	if room.MaxStayNights != nil && nights > *room.MaxStayNights {
		return fmt.Errorf("%w: %d nights, maximum %d", ErrStayTooLong, nights, *room.MaxStayNights)
	}
	return nil
}

// ResolveAvailability is the pure conflict core: given the room and its
// existing bookings, it decides whether the requested range fits.
//
// Cancelled bookings and the booking under edit (excludeID) never count.
// For each night of the half-open range [checkIn, checkOut) the occupied
// unit count is the number of overlapping bookings covering that night;
// the request's available units are total_units minus the worst night.
func ResolveAvailability(room *domain.Room, existing []domain.Booking, checkIn, checkOut time.Time, excludeID string) AvailabilityResult {
	var conflicts []domain.Booking
	for _, b := range existing {
		if !b.Countable() {
			continue
		}
		if excludeID != "" && b.ID == excludeID {
			continue
		}
		if utils.RangesOverlap(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			conflicts = append(conflicts, b)
		}
	}

	maxOccupied := 0
	for _, night := range utils.NightsIn(checkIn, checkOut) {
		occupied := 0
		for _, c := range conflicts {
			if utils.CoversNight(c.CheckIn, c.CheckOut, night) {
				occupied++
			}
		}
		if occupied > maxOccupied {
			maxOccupied = occupied
		}
	}

	availableUnits := room.TotalUnits - maxOccupied
	if availableUnits < 0 {
		availableUnits = 0
	}

	return AvailabilityResult{
		Available:      availableUnits > 0,
		AvailableUnits: availableUnits,
		Nights:         utils.NightsBetween(checkIn, checkOut),
		Conflicts:      conflicts,
	}
}

// ResolveBookedDates returns the calendar dates in [from, to) on which every
// unit of the room is taken. Recomputed fresh each call, so identical inputs
// yield identical output.
func ResolveBookedDates(room *domain.Room, existing []domain.Booking, from, to time.Time) []string {
	var booked []string
	for _, night := range utils.NightsIn(from, to) {
		occupied := 0
		for _, b := range existing {
			if !b.Countable() {
				continue
			}
			if utils.CoversNight(b.CheckIn, b.CheckOut, night) {
				occupied++
			}
		}
		if occupied >= room.TotalUnits {
			booked = append(booked, utils.FormatDate(night))
		}
	}
	return booked
}

// Check probes availability for a proposed stay. Read-only; a data-access
// failure surfaces as an error, "unavailable" is a normal result.
func (s *AvailabilityService) Check(ctx context.Context, tenantID, roomID string, checkIn, checkOut time.Time, excludeID string) (*AvailabilityResult, error) {
	room, err := s.repo.Room().GetByID(ctx, tenantID, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}

	if err := ValidateStay(room, checkIn, checkOut); err != nil {
		return nil, err
	}

	existing, err := s.repo.Booking().Overlapping(ctx, tenantID, roomID, checkIn, checkOut, excludeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}

	result := ResolveAvailability(room, existing, checkIn, checkOut, excludeID)
	return &result, nil
}

// BookedDates returns the fully-booked dates for a room over a window.
func (s *AvailabilityService) BookedDates(ctx context.Context, tenantID, roomID string, from, to time.Time) ([]string, error) {
	room, err := s.repo.Room().GetByID(ctx, tenantID, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if utils.NightsBetween(from, to) <= 0 {
		return nil, ErrInvalidRange
	}

	existing, err := s.repo.Booking().Overlapping(ctx, tenantID, roomID, from, to, "")
	if err != nil {
		return nil, fmt.Errorf("failed to load overlapping bookings: %w", err)
	}

	return ResolveBookedDates(room, existing, from, to), nil
}
