package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	require.NoError(t, err)
	return d
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.June, d.Month())
	assert.Equal(t, 10, d.Day())
	assert.Equal(t, 12, d.Hour())
	assert.Equal(t, time.UTC, d.Location())

	_, err = ParseDate("10-06-2024")
	assert.Error(t, err)
	_, err = ParseDate("2024-06-10T15:04:05Z")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	assert.Equal(t, 3, NightsBetween(mustParse(t, "2024-06-10"), mustParse(t, "2024-06-13")))
	assert.Equal(t, 0, NightsBetween(mustParse(t, "2024-06-10"), mustParse(t, "2024-06-10")))
	assert.Equal(t, -2, NightsBetween(mustParse(t, "2024-06-12"), mustParse(t, "2024-06-10")))
	// Spans a DST boundary in most zones; midday normalization keeps it exact.
	assert.Equal(t, 31, NightsBetween(mustParse(t, "2024-03-15"), mustParse(t, "2024-04-15")))
}

func TestNightsIn(t *testing.T) {
	nights := NightsIn(mustParse(t, "2024-06-10"), mustParse(t, "2024-06-13"))
	require.Len(t, nights, 3)
	assert.Equal(t, "2024-06-10", FormatDate(nights[0]))
	assert.Equal(t, "2024-06-12", FormatDate(nights[2]))

	assert.Nil(t, NightsIn(mustParse(t, "2024-06-10"), mustParse(t, "2024-06-10")))
	assert.Nil(t, NightsIn(mustParse(t, "2024-06-13"), mustParse(t, "2024-06-10")))
}

func TestRangesOverlap(t *testing.T) {
	a, b := mustParse(t, "2024-06-10"), mustParse(t, "2024-06-13")

	assert.True(t, RangesOverlap(a, b, mustParse(t, "2024-06-12"), mustParse(t, "2024-06-15")))
	assert.True(t, RangesOverlap(a, b, mustParse(t, "2024-06-01"), mustParse(t, "2024-06-30")))
	// Back-to-back stays share a calendar date but no night.
	assert.False(t, RangesOverlap(a, b, mustParse(t, "2024-06-13"), mustParse(t, "2024-06-15")))
	assert.False(t, RangesOverlap(a, b, mustParse(t, "2024-06-05"), mustParse(t, "2024-06-10")))
}

func TestCoversNight(t *testing.T) {
	in, out := mustParse(t, "2024-06-10"), mustParse(t, "2024-06-13")

	assert.True(t, CoversNight(in, out, mustParse(t, "2024-06-10")))
	assert.True(t, CoversNight(in, out, mustParse(t, "2024-06-12")))
	// Check-out date is not a night of the stay.
	assert.False(t, CoversNight(in, out, mustParse(t, "2024-06-13")))
	assert.False(t, CoversNight(in, out, mustParse(t, "2024-06-09")))
}

func TestWithinInclusive(t *testing.T) {
	start, end := mustParse(t, "2024-12-20"), mustParse(t, "2024-12-31")

	assert.True(t, WithinInclusive(mustParse(t, "2024-12-20"), start, end))
	assert.True(t, WithinInclusive(mustParse(t, "2024-12-31"), start, end))
	assert.False(t, WithinInclusive(mustParse(t, "2025-01-01"), start, end))
	assert.False(t, WithinInclusive(mustParse(t, "2024-12-19"), start, end))
}

func TestSameDate(t *testing.T) {
	morning := time.Date(2024, 6, 10, 3, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 10, 23, 0, 0, 0, time.UTC)

	assert.True(t, SameDate(morning, evening))
	assert.False(t, SameDate(morning, morning.AddDate(0, 0, 1)))
}

func TestParseUserTime(t *testing.T) {
	ts, err := ParseUserTime("2024-06-10T15:04:05Z", false)
	require.NoError(t, err)
	assert.Equal(t, 15, ts.Hour())

	ts, err = ParseUserTime("2024-06-10", true)
	require.NoError(t, err)
	assert.Equal(t, 23, ts.Hour())
	assert.Equal(t, 59, ts.Minute())

	_, err = ParseUserTime("not-a-time", false)
	assert.Error(t, err)
}
