// Package gateway is the storage gateway over the record store: it owns the
// two persisted records (slot states, booking list), their wire format, and
// the recovery behavior for absent or unreadable records.
package gateway

import (
	"context"
	"log/slog"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
	"parkdesk/internal/infra"
	"parkdesk/internal/infra/kvstore"
)

type Gateway struct {
	store  kvstore.RecordStore
	logger *slog.Logger
}

func New(store kvstore.RecordStore, logger *slog.Logger) *Gateway {
	return &Gateway{store: store, logger: logger}
}

// LoadSlots returns the persisted slot board. An absent or unreadable record
// is replaced by the default board, which is persisted before returning so
// the slot record always exists afterwards.
func (g *Gateway) LoadSlots(ctx context.Context) ([]slot.State, error) {
	data, ok, err := g.store.Get(ctx, RecordSlots)
	if err != nil {
		return nil, infra.WrapStorageErr(g.logger, infra.KindStoreFailure, "failed to read slot record", err)
	}
	if ok {
		states, decodeErr := decodeSlots(data)
		if decodeErr == nil {
			return states, nil
		}
		g.logger.Warn("slot record unreadable, installing default board", "error", decodeErr)
	}

	def := slot.NewBoard(slot.DefaultCount)
	if err := g.SaveSlots(ctx, def); err != nil {
		return nil, err
	}
	return def, nil
}

func (g *Gateway) SaveSlots(ctx context.Context, states []slot.State) error {
	data, err := encodeSlots(states)
	if err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindMalformed, "failed to encode slot record", err)
	}
	if err := g.store.Put(ctx, RecordSlots, data); err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindStoreFailure, "failed to write slot record", err)
	}
	return nil
}

// LoadBookings returns the persisted booking list. An absent or unreadable
// record yields an empty list WITHOUT persisting it: unlike the slot record,
// a transiently unreadable booking record is left in place rather than
// overwritten with nothing.
func (g *Gateway) LoadBookings(ctx context.Context) ([]*booking.Booking, error) {
	data, ok, err := g.store.Get(ctx, RecordBookings)
	if err != nil {
		return nil, infra.WrapStorageErr(g.logger, infra.KindStoreFailure, "failed to read booking record", err)
	}
	if !ok {
		return []*booking.Booking{}, nil
	}
	bookings, decodeErr := decodeBookings(data)
	if decodeErr != nil {
		g.logger.Warn("booking record unreadable, treating as empty", "error", decodeErr)
		return []*booking.Booking{}, nil
	}
	return bookings, nil
}

func (g *Gateway) SaveBookings(ctx context.Context, bookings []*booking.Booking) error {
	data, err := encodeBookings(bookings)
	if err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindMalformed, "failed to encode booking record", err)
	}
	if err := g.store.Put(ctx, RecordBookings, data); err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindStoreFailure, "failed to write booking record", err)
	}
	return nil
}

// SaveBookingsAndSlots commits the paired write of both records, bookings
// first, in one transaction where the backend supports it. Every operation
// that touches both collections goes through here so a crash cannot leave
// the booking list and the slot board disagreeing.
func (g *Gateway) SaveBookingsAndSlots(ctx context.Context, bookings []*booking.Booking, states []slot.State) error {
	bookingData, err := encodeBookings(bookings)
	if err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindMalformed, "failed to encode booking record", err)
	}
	slotData, err := encodeSlots(states)
	if err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindMalformed, "failed to encode slot record", err)
	}
	records := []kvstore.Record{
		{Name: RecordBookings, Data: bookingData},
		{Name: RecordSlots, Data: slotData},
	}
	if err := g.store.PutAll(ctx, records); err != nil {
		return infra.WrapStorageErr(g.logger, infra.KindStoreFailure, "failed to write paired records", err)
	}
	return nil
}
