// File: services/reservation/availability_test.go
package reservation

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "disjoint intervals",
			aStart: date(2026, 6, 1), aEnd: date(2026, 6, 5),
			bStart: date(2026, 6, 10), bEnd: date(2026, 6, 15),
			want: false,
		},
		{
			name:   "contained interval",
			aStart: date(2026, 6, 1), aEnd: date(2026, 6, 20),
			bStart: date(2026, 6, 5), bEnd: date(2026, 6, 10),
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: date(2026, 6, 1), aEnd: date(2026, 6, 10),
			bStart: date(2026, 6, 8), bEnd: date(2026, 6, 15),
			want: true,
		},
		{
			name:   "shared boundary day",
			aStart: date(2026, 6, 1), aEnd: date(2026, 6, 5),
			bStart: date(2026, 6, 5), bEnd: date(2026, 6, 10),
			want: true,
		},
		{
			name:   "adjacent but distinct days",
			aStart: date(2026, 6, 1), aEnd: date(2026, 6, 5),
			bStart: date(2026, 6, 6), bEnd: date(2026, 6, 10),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps(%v, %v, %v, %v) = %v, want %v",
					tt.aStart, tt.aEnd, tt.bStart, tt.bEnd, got, tt.want)
			}
			// Overlap is symmetric.
			if rev := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); rev != got {
				t.Errorf("Overlaps is not symmetric for %s: %v vs %v", tt.name, got, rev)
			}
		})
	}
}

func TestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"three whole days", date(2026, 6, 1), date(2026, 6, 4), 3},
		{"partial day rounds up", date(2026, 6, 1), date(2026, 6, 4).Add(6 * time.Hour), 4},
		{"single day", date(2026, 6, 1), date(2026, 6, 2), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Days(tt.start, tt.end); got != tt.want {
				t.Errorf("Days(%v, %v) = %d, want %d", tt.start, tt.end, got, tt.want)
			}
		})
	}
}
