package gateway

import (
	"encoding/json"
	"time"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
	"parkdesk/internal/pkg/errs"
)

// Persisted record names. The whole state of the system is these two records.
const (
	RecordSlots    = "slots"
	RecordBookings = "bookings"
)

// bookingRecord is the wire shape of one booking: timestamps serialize as
// RFC 3339 strings.
type bookingRecord struct {
	ID        string    `json:"id"`
	SlotID    int       `json:"slotId"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
}

func decodeSlots(data []byte) ([]slot.State, error) {
	var states []slot.State
	if err := json.Unmarshal(data, &states); err != nil {
		return nil, errs.Wrap(err, "slot record is not a valid sequence")
	}
	if states == nil {
		return nil, errs.New("slot record is null")
	}
	for i, s := range states {
		if !s.IsValid() {
			return nil, errs.Newf("slot record holds unknown state %q at index %d", s, i)
		}
	}
	return states, nil
}

func encodeSlots(states []slot.State) ([]byte, error) {
	if states == nil {
		states = []slot.State{}
	}
	return json.Marshal(states)
}

func decodeBookings(data []byte) ([]*booking.Booking, error) {
	var records []bookingRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, errs.Wrap(err, "booking record is not a valid sequence")
	}
	bookings := make([]*booking.Booking, 0, len(records))
	for _, rec := range records {
		bookings = append(bookings, booking.ReconstructBooking(
			rec.ID,
			rec.SlotID,
			rec.Name,
			booking.ReconstructTimeSlot(rec.Start, rec.End),
			rec.Hours,
			rec.CreatedAt,
		))
	}
	return bookings, nil
}

func encodeBookings(bookings []*booking.Booking) ([]byte, error) {
	records := make([]bookingRecord, 0, len(bookings))
	for _, b := range bookings {
		records = append(records, bookingRecord{
			ID:        b.ID(),
			SlotID:    b.SlotID(),
			Name:      b.Name(),
			Start:     b.TimeSlot().Start(),
			End:       b.TimeSlot().End(),
			Hours:     b.Hours(),
			CreatedAt: b.CreatedAt(),
		})
	}
	return json.Marshal(records)
}
