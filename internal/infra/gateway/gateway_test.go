//go:build unit

package gateway_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
	"parkdesk/internal/infra/gateway"
	"parkdesk/internal/infra/kvstore"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGateway(t *testing.T) (*gateway.Gateway, *kvstore.MemoryStore) {
	t.Helper()
	store := kvstore.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return gateway.New(store, logger), store
}

func makeBooking(slotID int, name string, start time.Time, hours float64) *booking.Booking {
	return booking.NewBooking(slotID, name, booking.NewTimeSlot(start, hours), start)
}

func TestLoadSlots(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store installs default board", func(t *testing.T) {
		gw, store := newGateway(t)

		states, err := gw.LoadSlots(ctx)
		require.NoError(t, err)
		assert.Equal(t, slot.NewBoard(12), states)

		// The default must be persisted, not just returned.
		data, ok, err := store.Get(ctx, gateway.RecordSlots)
		require.NoError(t, err)
		require.True(t, ok)
		assert.NotEmpty(t, data)
	})

	t.Run("malformed record replaced by default", func(t *testing.T) {
		cases := []struct {
			name string
			data string
		}{
			{name: "not JSON", data: `{{{`},
			{name: "not a sequence", data: `{"a":1}`},
			{name: "null", data: `null`},
			{name: "unknown state value", data: `["available","occupied"]`},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				gw, store := newGateway(t)
				require.NoError(t, store.Put(ctx, gateway.RecordSlots, []byte(c.data)))

				states, err := gw.LoadSlots(ctx)
				require.NoError(t, err)
				assert.Equal(t, slot.NewBoard(12), states)

				data, ok, err := store.Get(ctx, gateway.RecordSlots)
				require.NoError(t, err)
				require.True(t, ok)
				assert.NotEqual(t, c.data, string(data))
			})
		}
	})

	t.Run("save load round-trip", func(t *testing.T) {
		gw, _ := newGateway(t)
		board := []slot.State{slot.Booked, slot.Available, slot.Booked}

		require.NoError(t, gw.SaveSlots(ctx, board))
		loaded, err := gw.LoadSlots(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(board, loaded))

		// A second round-trip yields an identical sequence.
		require.NoError(t, gw.SaveSlots(ctx, loaded))
		again, err := gw.LoadSlots(ctx)
		require.NoError(t, err)
		assert.Empty(t, cmp.Diff(loaded, again))
	})
}

func TestLoadBookings(t *testing.T) {
	ctx := context.Background()

	t.Run("absent record yields empty list without persisting", func(t *testing.T) {
		gw, store := newGateway(t)

		bookings, err := gw.LoadBookings(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)

		_, ok, err := store.Get(ctx, gateway.RecordBookings)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed record yields empty list and stays untouched", func(t *testing.T) {
		gw, store := newGateway(t)
		require.NoError(t, store.Put(ctx, gateway.RecordBookings, []byte(`not json`)))

		bookings, err := gw.LoadBookings(ctx)
		require.NoError(t, err)
		assert.Empty(t, bookings)

		data, ok, err := store.Get(ctx, gateway.RecordBookings)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, "not json", string(data))
	})

	t.Run("save load round-trip", func(t *testing.T) {
		gw, _ := newGateway(t)
		start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
		saved := []*booking.Booking{
			makeBooking(0, "Alice", start, 1),
			makeBooking(5, "Bob", start.Add(2*time.Hour), 1.5),
		}

		require.NoError(t, gw.SaveBookings(ctx, saved))
		loaded, err := gw.LoadBookings(ctx)
		require.NoError(t, err)
		require.Len(t, loaded, 2)

		for i, b := range loaded {
			assert.Equal(t, saved[i].ID(), b.ID())
			assert.Equal(t, saved[i].SlotID(), b.SlotID())
			assert.Equal(t, saved[i].Name(), b.Name())
			assert.True(t, saved[i].TimeSlot().Start().Equal(b.TimeSlot().Start()))
			assert.True(t, saved[i].TimeSlot().End().Equal(b.TimeSlot().End()))
			assert.InDelta(t, saved[i].Hours(), b.Hours(), 1e-9)
			assert.True(t, saved[i].CreatedAt().Equal(b.CreatedAt()))
		}
	})
}

func TestSaveBookingsAndSlots(t *testing.T) {
	ctx := context.Background()
	gw, _ := newGateway(t)

	start := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	bookings := []*booking.Booking{makeBooking(1, "Alice", start, 1)}
	board := []slot.State{slot.Available, slot.Booked}

	require.NoError(t, gw.SaveBookingsAndSlots(ctx, bookings, board))

	loadedBookings, err := gw.LoadBookings(ctx)
	require.NoError(t, err)
	require.Len(t, loadedBookings, 1)
	assert.Equal(t, bookings[0].ID(), loadedBookings[0].ID())

	loadedSlots, err := gw.LoadSlots(ctx)
	require.NoError(t, err)
	assert.Equal(t, board, loadedSlots)
}
