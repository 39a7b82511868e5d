package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate parses a calendar date in YYYY-MM-DD form. The result is
// normalized to midday UTC so that differencing two dates is immune to
// daylight-saving boundaries.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected YYYY-MM-DD, got %s", dateStr)
	}
	return Midday(t), nil
}

// Midday returns the same calendar date pinned to 12:00 UTC.
func Midday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// NightsBetween returns the number of nights in [checkIn, checkOut).
// Both arguments are normalized to midday before differencing.
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(Midday(checkOut).Sub(Midday(checkIn)).Hours() / 24)
}

// NightsIn returns each night of the stay [checkIn, checkOut), one entry per
// calendar date, check-out exclusive.
func NightsIn(checkIn, checkOut time.Time) []time.Time {
	nights := NightsBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil
	}
	dates := make([]time.Time, 0, nights)
	for d := Midday(checkIn); d.Before(Midday(checkOut)); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

// RangesOverlap reports whether the half-open ranges [aIn, aOut) and
// [bIn, bOut) share at least one night.
func RangesOverlap(aIn, aOut, bIn, bOut time.Time) bool {
	return Midday(aIn).Before(Midday(bOut)) && Midday(aOut).After(Midday(bIn))
}

// CoversNight reports whether the stay [checkIn, checkOut) includes the
// given night.
func CoversNight(checkIn, checkOut, night time.Time) bool {
	n := Midday(night)
	return !n.Before(Midday(checkIn)) && n.Before(Midday(checkOut))
}

// WithinInclusive reports whether date falls inside [start, end], end
// inclusive. Seasonal rate windows use this convention.
func WithinInclusive(date, start, end time.Time) bool {
	d := Midday(date)
	return !d.Before(Midday(start)) && !d.After(Midday(end))
}

// SameDate reports whether two timestamps fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	return Midday(a).Equal(Midday(b))
}

// ParseUserTime parses a time string that can be either RFC3339 or YYYY-MM-DD format.
// For YYYY-MM-DD format, if isEndTime is true, it will set the time to end of day (23:59:59).
func ParseUserTime(timeStr string, isEndTime bool) (time.Time, error) {
	// Try RFC3339 first
	t, err := time.Parse(time.RFC3339, timeStr)
	if err == nil {
		return t, nil
	}

	// Try simple date format
	t, err = time.Parse(dateLayout, timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format, expected RFC3339 or YYYY-MM-DD, got %s", timeStr)
	}

	// For end_time with date only, set it to end of day
	if isEndTime {
		t = t.Add(24*time.Hour - time.Second)
	}

	return t, nil
}
