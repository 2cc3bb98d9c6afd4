package commands

import (
	"context"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
	"parkdesk/internal/pkg/errs"
)

type InventoryCommands interface {
	// EnsureSlots reconciles the board to exactly n slots. Shrinking cascades:
	// bookings on removed indices are purged in the same commit. Policy bounds
	// on n are enforced by the caller.
	EnsureSlots(ctx context.Context, n int) ([]slot.State, error)
}

type inventoryCommandsImpl struct {
	gateway StateGateway
	ops     *OperationLock
}

func NewInventoryCommands(gateway StateGateway, ops *OperationLock) InventoryCommands {
	return &inventoryCommandsImpl{gateway: gateway, ops: ops}
}

func (c *inventoryCommandsImpl) EnsureSlots(ctx context.Context, n int) ([]slot.State, error) {
	c.ops.Lock()
	defer c.ops.Unlock()

	states, err := c.gateway.LoadSlots(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrStorageFailure)
	}

	switch {
	case len(states) == n:
		return states, nil

	case len(states) < n:
		// Retained slots keep their state verbatim.
		for len(states) < n {
			states = append(states, slot.Available)
		}
		if err := c.gateway.SaveSlots(ctx, states); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return states, nil

	default:
		bookings, err := c.gateway.LoadBookings(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		kept := make([]*booking.Booking, 0, len(bookings))
		for _, b := range bookings {
			if b.SlotID() < n {
				kept = append(kept, b)
			}
		}
		states = states[:n]
		if err := c.gateway.SaveBookingsAndSlots(ctx, kept, states); err != nil {
			return nil, errs.Mark(err, ErrStorageFailure)
		}
		return states, nil
	}
}
