// File: services/reservation/availability.go
package reservation

import (
	"math"
	"time"
)

// Overlaps reports whether two closed date intervals share at least one day.
// Comparisons are inclusive on both ends, so an interval ending the day
// another starts still overlaps; back-to-back same-day bookings on one boat
// are not allowed.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aStart.After(bEnd) && !bStart.After(aEnd)
}

// Days returns the number of whole rental days between start and end,
// rounding partial days up.
func Days(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// startOfToday truncates now to midnight in its location.
func startOfToday(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
