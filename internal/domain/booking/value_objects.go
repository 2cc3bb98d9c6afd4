package booking

import (
	"fmt"
	"time"
)

// TimeSlot is a contiguous half-open interval [start, end).
type TimeSlot struct {
	start time.Time
	end   time.Time
}

// NewTimeSlot builds the interval covered by a booking of the given length.
// Fractional hours are permitted. Timestamps are normalized to UTC so the
// persisted record is location-independent. Positive duration is the
// caller's responsibility.
func NewTimeSlot(start time.Time, hours float64) TimeSlot {
	s := start.UTC()
	return TimeSlot{
		start: s,
		end:   s.Add(time.Duration(hours * float64(time.Hour))),
	}
}

func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start.UTC(), end: end.UTC()}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps reports whether two intervals on the same slot collide. Intervals
// are half-open, so a booking ending exactly when another starts does not
// overlap it.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && ts.end.After(other.start)
}

func (ts TimeSlot) String() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339), ts.end.Format(time.RFC3339))
}
