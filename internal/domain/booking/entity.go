package booking

import (
	"time"

	"github.com/google/uuid"
)

// Booking reserves one slot for a contiguous time interval. Bookings are
// immutable once created; the only lifecycle transition is deletion.
type Booking struct {
	id        string
	slotID    int
	name      string
	timeSlot  TimeSlot
	hours     float64
	createdAt time.Time
}

// NewBooking constructs a confirmed booking with a fresh opaque id. Input
// validation (name non-empty, positive duration, slot in range) belongs to
// the caller supplying the primitives.
func NewBooking(slotID int, name string, timeSlot TimeSlot, now time.Time) *Booking {
	return &Booking{
		id:        uuid.NewString(),
		slotID:    slotID,
		name:      name,
		timeSlot:  timeSlot,
		hours:     timeSlot.Duration().Hours(),
		createdAt: now.UTC(),
	}
}

func ReconstructBooking(id string, slotID int, name string, timeSlot TimeSlot, hours float64, createdAt time.Time) *Booking {
	return &Booking{
		id:        id,
		slotID:    slotID,
		name:      name,
		timeSlot:  timeSlot,
		hours:     hours,
		createdAt: createdAt,
	}
}

func (b *Booking) ID() string           { return b.id }
func (b *Booking) SlotID() int          { return b.slotID }
func (b *Booking) Name() string         { return b.name }
func (b *Booking) TimeSlot() TimeSlot   { return b.timeSlot }
func (b *Booking) Hours() float64       { return b.hours }
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// ConflictsWith reports whether two bookings contend for the same slot at an
// overlapping time.
func (b *Booking) ConflictsWith(slotID int, slot TimeSlot) bool {
	return b.slotID == slotID && b.timeSlot.Overlaps(slot)
}

// References reports whether the booking occupies the given slot index.
func (b *Booking) References(slotID int) bool {
	return b.slotID == slotID
}
