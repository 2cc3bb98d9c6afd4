package request

import (
	"strings"
	"time"
)

// CreateBookingRequest carries the raw form input for a new booking. SlotID
// is a pointer so a missing field is distinguishable from slot 0.
type CreateBookingRequest struct {
	SlotID *int      `json:"slotId" binding:"required"`
	Name   string    `json:"name" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	Hours  float64   `json:"hours" binding:"required,gt=0"`
}

// TrimmedName returns the requester name with surrounding whitespace removed;
// empty means the request is invalid.
func (r CreateBookingRequest) TrimmedName() string {
	return strings.TrimSpace(r.Name)
}
