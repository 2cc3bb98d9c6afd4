package commands

import (
	"context"
	"sync"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
)

// StateGateway is the command side's view of the storage gateway. Every
// operation re-reads current state through it; nothing caches between calls.
type StateGateway interface {
	LoadSlots(ctx context.Context) ([]slot.State, error)
	SaveSlots(ctx context.Context, states []slot.State) error
	LoadBookings(ctx context.Context) ([]*booking.Booking, error)
	SaveBookings(ctx context.Context, bookings []*booking.Booking) error
	SaveBookingsAndSlots(ctx context.Context, bookings []*booking.Booking, states []slot.State) error
}

// OperationLock serializes all mutating operations. The system has exactly
// one logical actor; the lock keeps that model inside a concurrent HTTP
// server, so each command's read-modify-write span is indivisible.
type OperationLock struct {
	mu sync.Mutex
}

func NewOperationLock() *OperationLock {
	return &OperationLock{}
}

func (l *OperationLock) Lock()   { l.mu.Lock() }
func (l *OperationLock) Unlock() { l.mu.Unlock() }
