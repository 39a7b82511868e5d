package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vilohq/vilo-api/internal/domain"
)

func TestResolveSchedule_SeasonalRateCoversPartOfStay(t *testing.T) {
	room := singleUnitRoom()
	room.BasePricePerNight = 300
	rates := []domain.SeasonalRate{
		{Name: "Holiday Season", Priority: 1,
			StartDate: date(t, "2024-12-20"), EndDate: date(t, "2024-12-31"), PricePerNight: 500},
	}

	schedule := ResolveSchedule(room, rates, date(t, "2024-12-18"), date(t, "2024-12-22"))

	require.Len(t, schedule.Nights, 4)
	assert.Equal(t, "2024-12-18", schedule.Nights[0].Date)
	assert.Equal(t, 300.0, schedule.Nights[0].Price)
	assert.Empty(t, schedule.Nights[0].RateName)
	assert.Equal(t, 300.0, schedule.Nights[1].Price)
	assert.Equal(t, 500.0, schedule.Nights[2].Price)
	assert.Equal(t, "Holiday Season", schedule.Nights[2].RateName)
	assert.Equal(t, 500.0, schedule.Nights[3].Price)
	assert.Equal(t, 1600.0, schedule.Subtotal)
	assert.Equal(t, "USD", schedule.Currency)
}

func TestResolveSchedule_HigherPriorityWins(t *testing.T) {
	room := singleUnitRoom()
	room.BasePricePerNight = 300
	// Ordered priority-descending, the way the repository returns them.
	rates := []domain.SeasonalRate{
		{Name: "Festival Surge", Priority: 2,
			StartDate: date(t, "2024-12-24"), EndDate: date(t, "2024-12-26"), PricePerNight: 800},
		{Name: "Holiday Season", Priority: 1,
			StartDate: date(t, "2024-12-20"), EndDate: date(t, "2024-12-31"), PricePerNight: 500},
	}

	schedule := ResolveSchedule(room, rates, date(t, "2024-12-23"), date(t, "2024-12-26"))

	require.Len(t, schedule.Nights, 3)
	assert.Equal(t, 500.0, schedule.Nights[0].Price) // Dec 23: holiday only
	assert.Equal(t, 800.0, schedule.Nights[1].Price) // Dec 24: surge beats holiday
	assert.Equal(t, 800.0, schedule.Nights[2].Price) // Dec 25
	assert.Equal(t, "Festival Surge", schedule.Nights[1].RateName)
}

func TestResolveSchedule_EqualPriorityOlderRateWins(t *testing.T) {
	room := singleUnitRoom()
	// Same priority: the repository orders by created_at ascending, so the
	// older rate comes first and wins.
	rates := []domain.SeasonalRate{
		{Name: "Early Rate", Priority: 1,
			StartDate: date(t, "2024-06-01"), EndDate: date(t, "2024-06-30"), PricePerNight: 400},
		{Name: "Late Rate", Priority: 1,
			StartDate: date(t, "2024-06-01"), EndDate: date(t, "2024-06-30"), PricePerNight: 450},
	}

	schedule := ResolveSchedule(room, rates, date(t, "2024-06-10"), date(t, "2024-06-12"))

	require.Len(t, schedule.Nights, 2)
	assert.Equal(t, "Early Rate", schedule.Nights[0].RateName)
	assert.Equal(t, 400.0, schedule.Nights[0].Price)
}

func TestResolveSchedule_InclusiveRateBoundaries(t *testing.T) {
	room := singleUnitRoom()
	rates := []domain.SeasonalRate{
		{Name: "Window", Priority: 1,
			StartDate: date(t, "2024-07-10"), EndDate: date(t, "2024-07-11"), PricePerNight: 999},
	}

	schedule := ResolveSchedule(room, rates, date(t, "2024-07-09"), date(t, "2024-07-13"))

	require.Len(t, schedule.Nights, 4)
	assert.Equal(t, room.BasePricePerNight, schedule.Nights[0].Price) // Jul 9
	assert.Equal(t, 999.0, schedule.Nights[1].Price)                  // Jul 10: start inclusive
	assert.Equal(t, 999.0, schedule.Nights[2].Price)                  // Jul 11: end inclusive
	assert.Equal(t, room.BasePricePerNight, schedule.Nights[3].Price) // Jul 12
}

func TestResolveSchedule_NoRatesUsesBasePrice(t *testing.T) {
	room := singleUnitRoom()
	room.BasePricePerNight = 120

	schedule := ResolveSchedule(room, nil, date(t, "2024-05-01"), date(t, "2024-05-04"))

	require.Len(t, schedule.Nights, 3)
	assert.Equal(t, 360.0, schedule.Subtotal)
	for _, n := range schedule.Nights {
		assert.Equal(t, 120.0, n.Price)
		assert.Empty(t, n.RateName)
	}
}
