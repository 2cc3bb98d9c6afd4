package commands

import (
	"context"
	"time"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
	"parkdesk/internal/pkg/clock"
	"parkdesk/internal/pkg/errs"
)

var (
	ErrBookingConflict = errs.New("booking conflict")
	ErrStorageFailure  = errs.New("storage operation failed")
)

type BookingCommands interface {
	// Create books a slot for [start, start+hours). Preconditions (slot in
	// range, non-empty name, positive hours) are the caller's responsibility.
	Create(ctx context.Context, slotID int, name string, start time.Time, hours float64) (*booking.Booking, error)
	// Cancel removes a booking by id. Unknown ids are a silent no-op.
	Cancel(ctx context.Context, id string) error
	// ResetAll clears every booking and frees every slot unconditionally.
	ResetAll(ctx context.Context) error
}

type bookingCommandsImpl struct {
	gateway StateGateway
	clock   clock.Clock
	ops     *OperationLock
}

func NewBookingCommands(gateway StateGateway, clk clock.Clock, ops *OperationLock) BookingCommands {
	return &bookingCommandsImpl{
		gateway: gateway,
		clock:   clk,
		ops:     ops,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, slotID int, name string, start time.Time, hours float64) (*booking.Booking, error) {
	c.ops.Lock()
	defer c.ops.Unlock()

	requested := booking.NewTimeSlot(start, hours)

	existing, err := c.gateway.LoadBookings(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	for _, b := range existing {
		if b.ConflictsWith(slotID, requested) {
			return nil, errs.Mark(
				errs.Newf("slot %d is already booked for %s", slotID, b.TimeSlot()),
				ErrBookingConflict,
			)
		}
	}

	states, err := c.gateway.LoadSlots(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	created := booking.NewBooking(slotID, name, requested, c.clock.Now())
	if slotID >= 0 && slotID < len(states) {
		states[slotID] = slot.Booked
	}

	if err := c.gateway.SaveBookingsAndSlots(ctx, append(existing, created), states); err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}
	return created, nil
}

func (c *bookingCommandsImpl) Cancel(ctx context.Context, id string) error {
	c.ops.Lock()
	defer c.ops.Unlock()

	bookings, err := c.gateway.LoadBookings(ctx)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}

	idx := -1
	for i, b := range bookings {
		if b.ID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	removed := bookings[idx]
	remaining := append(bookings[:idx], bookings[idx+1:]...)

	states, err := c.gateway.LoadSlots(ctx)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}

	// Free the slot only when no surviving booking still occupies it.
	slotID := removed.SlotID()
	if slotID >= 0 && slotID < len(states) && !anyReferences(remaining, slotID) {
		states[slotID] = slot.Available
		if err := c.gateway.SaveBookingsAndSlots(ctx, remaining, states); err != nil {
			return errs.Mark(err, ErrStorageFailure)
		}
		return nil
	}

	if err := c.gateway.SaveBookings(ctx, remaining); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func (c *bookingCommandsImpl) ResetAll(ctx context.Context) error {
	c.ops.Lock()
	defer c.ops.Unlock()

	states, err := c.gateway.LoadSlots(ctx)
	if err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	if err := c.gateway.SaveBookingsAndSlots(ctx, nil, slot.NewBoard(len(states))); err != nil {
		return errs.Mark(err, ErrStorageFailure)
	}
	return nil
}

func anyReferences(bookings []*booking.Booking, slotID int) bool {
	for _, b := range bookings {
		if b.References(slotID) {
			return true
		}
	}
	return false
}
