//go:build unit

package booking_test

import (
	"testing"
	"time"

	"parkdesk/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	t.Run("end is start plus duration", func(t *testing.T) {
		ts := booking.NewTimeSlot(start, 2)
		assert.Equal(t, start, ts.Start())
		assert.Equal(t, start.Add(2*time.Hour), ts.End())
		assert.Equal(t, 2*time.Hour, ts.Duration())
	})

	t.Run("fractional hours are permitted", func(t *testing.T) {
		ts := booking.NewTimeSlot(start, 1.5)
		assert.Equal(t, start.Add(90*time.Minute), ts.End())
	})

	t.Run("timestamps normalize to UTC", func(t *testing.T) {
		zone := time.FixedZone("UTC+9", 9*60*60)
		ts := booking.NewTimeSlot(time.Date(2024, 1, 1, 19, 0, 0, 0, zone), 1)
		assert.Equal(t, start, ts.Start())
	})
}

func TestTimeSlotOverlaps(t *testing.T) {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	alice := booking.NewTimeSlot(base, 1) // 10:00-11:00

	cases := []struct {
		name     string
		other    booking.TimeSlot
		overlaps bool
	}{
		{
			name:     "identical interval",
			other:    booking.NewTimeSlot(base, 1),
			overlaps: true,
		},
		{
			name:     "partial overlap from the middle",
			other:    booking.NewTimeSlot(base.Add(30*time.Minute), 1),
			overlaps: true,
		},
		{
			name:     "containing interval",
			other:    booking.NewTimeSlot(base.Add(-time.Hour), 3),
			overlaps: true,
		},
		{
			name:     "contained interval",
			other:    booking.NewTimeSlot(base.Add(15*time.Minute), 0.5),
			overlaps: true,
		},
		{
			name:     "starts exactly at the end",
			other:    booking.NewTimeSlot(base.Add(time.Hour), 1),
			overlaps: false,
		},
		{
			name:     "ends exactly at the start",
			other:    booking.NewTimeSlot(base.Add(-time.Hour), 1),
			overlaps: false,
		},
		{
			name:     "fully before",
			other:    booking.NewTimeSlot(base.Add(-3*time.Hour), 1),
			overlaps: false,
		},
		{
			name:     "fully after",
			other:    booking.NewTimeSlot(base.Add(5*time.Hour), 1),
			overlaps: false,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.overlaps, alice.Overlaps(c.other))
			// Overlap is symmetric
			assert.Equal(t, c.overlaps, c.other.Overlaps(alice))
		})
	}
}

func TestNewBooking(t *testing.T) {
	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	ts := booking.NewTimeSlot(start, 1.5)

	t.Run("fields are populated", func(t *testing.T) {
		b := booking.NewBooking(3, "Alice", ts, now)
		require.NotNil(t, b)

		assert.NotEmpty(t, b.ID())
		assert.Equal(t, 3, b.SlotID())
		assert.Equal(t, "Alice", b.Name())
		assert.Equal(t, ts, b.TimeSlot())
		assert.InDelta(t, 1.5, b.Hours(), 1e-9)
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("id uniqueness", func(t *testing.T) {
		b1 := booking.NewBooking(0, "Alice", ts, now)
		b2 := booking.NewBooking(0, "Alice", ts, now)
		assert.NotEqual(t, b1.ID(), b2.ID())
	})

	t.Run("conflict requires same slot and overlap", func(t *testing.T) {
		b := booking.NewBooking(0, "Alice", ts, now)

		assert.True(t, b.ConflictsWith(0, booking.NewTimeSlot(start.Add(30*time.Minute), 1)))
		assert.False(t, b.ConflictsWith(1, booking.NewTimeSlot(start.Add(30*time.Minute), 1)))
		assert.False(t, b.ConflictsWith(0, booking.NewTimeSlot(start.Add(2*time.Hour), 1)))
	})
}
