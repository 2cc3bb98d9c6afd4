//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"parkdesk/internal/domain/slot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("equal count is a no-op", func(t *testing.T) {
		h := newHarness(t)

		states, err := h.inventory.EnsureSlots(ctx, slot.DefaultCount)
		require.NoError(t, err)
		assert.Len(t, states, 12)
	})

	t.Run("growing appends available slots and keeps states", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.bookings.Create(ctx, 3, "Alice", bookingStart, 1)
		require.NoError(t, err)

		states, err := h.inventory.EnsureSlots(ctx, 20)
		require.NoError(t, err)
		require.Len(t, states, 20)

		assert.Equal(t, slot.Booked, states[3])
		for i := 12; i < 20; i++ {
			assert.Equal(t, slot.Available, states[i])
		}
	})

	t.Run("shrinking cascades bookings on removed indices", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.bookings.Create(ctx, 10, "Alice", bookingStart, 1)
		require.NoError(t, err)

		states, err := h.inventory.EnsureSlots(ctx, 4)
		require.NoError(t, err)
		assert.Len(t, states, 4)
		assert.Empty(t, h.allBookings(t))
	})

	t.Run("shrinking keeps bookings on retained indices", func(t *testing.T) {
		h := newHarness(t)

		keep, err := h.bookings.Create(ctx, 2, "Alice", bookingStart, 1)
		require.NoError(t, err)
		_, err = h.bookings.Create(ctx, 8, "Bob", bookingStart, 1)
		require.NoError(t, err)

		states, err := h.inventory.EnsureSlots(ctx, 4)
		require.NoError(t, err)
		require.Len(t, states, 4)
		assert.Equal(t, slot.Booked, states[2])

		remaining := h.allBookings(t)
		require.Len(t, remaining, 1)
		assert.Equal(t, keep.ID(), remaining[0].ID())
	})

	t.Run("resize sequences never leave dangling bookings", func(t *testing.T) {
		h := newHarness(t)

		for i := 0; i < 12; i += 2 {
			_, err := h.bookings.Create(ctx, i, "Fuzz", bookingStart.Add(time.Duration(i)*time.Hour), 1)
			require.NoError(t, err)
		}

		for _, n := range []int{36, 7, 4, 16, 5} {
			states, err := h.inventory.EnsureSlots(ctx, n)
			require.NoError(t, err)
			require.Len(t, states, n)

			for _, b := range h.allBookings(t) {
				assert.Less(t, b.SlotID(), n)
			}
		}
	})
}
