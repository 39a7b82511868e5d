package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vilohq/vilo-api/internal/domain"
	"github.com/vilohq/vilo-api/internal/repository"
	"github.com/vilohq/vilo-api/pkg/utils"
)

// NightPrice is one line of the nightly schedule. RateName is empty when the
// base price applied.
type NightPrice struct {
	Date     string  `json:"date"`
	Price    float64 `json:"price"`
	RateName string  `json:"rate_name,omitempty"`
}

// PriceSchedule is the resolved price breakdown for a stay.
type PriceSchedule struct {
	Nights   []NightPrice `json:"nights"`
	Subtotal float64      `json:"subtotal"`
	Currency string       `json:"currency"`
}

type PricingService struct {
	repo repository.Repository
}

func NewPricingService(repo repository.Repository) *PricingService {
	return &PricingService{repo: repo}
}

// ResolveSchedule is the pure pricing core. For each night of the half-open
// stay it picks the first rate in the given slice whose inclusive window
// covers the night, falling back to the room's base price. The slice must
// already be ordered priority-descending then created-ascending; the first
// match therefore implements the highest-priority-wins rule with a stable
// tie-break.
func ResolveSchedule(room *domain.Room, rates []domain.SeasonalRate, checkIn, checkOut time.Time) PriceSchedule {
	schedule := PriceSchedule{Currency: room.Currency}

	for _, night := range utils.NightsIn(checkIn, checkOut) {
		price := room.BasePricePerNight
		rateName := ""
		for _, rate := range rates {
			if utils.WithinInclusive(night, rate.StartDate, rate.EndDate) {
				price = rate.PricePerNight
				rateName = rate.Name
				break
			}
		}
		schedule.Nights = append(schedule.Nights, NightPrice{
			Date:     utils.FormatDate(night),
			Price:    price,
			RateName: rateName,
		})
		schedule.Subtotal += price
	}

	return schedule
}

// Schedule resolves the nightly price breakdown for a stay.
func (s *PricingService) Schedule(ctx context.Context, tenantID, roomID string, checkIn, checkOut time.Time) (*PriceSchedule, error) {
	room, err := s.repo.Room().GetByID(ctx, tenantID, roomID)
	if err != nil {
		return nil, ErrRoomNotFound
	}
	if utils.NightsBetween(checkIn, checkOut) <= 0 {
		return nil, ErrInvalidRange
	}

	rates, err := s.repo.SeasonalRate().ListForRoom(ctx, tenantID, roomID)
	if err != nil {
		return nil, fmt.Errorf("failed to load seasonal rates: %w", err)
	}

	schedule := ResolveSchedule(room, rates, checkIn, checkOut)
	return &schedule, nil
}
