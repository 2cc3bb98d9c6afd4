package queries

import (
	"context"
	"time"

	"parkdesk/internal/domain/booking"
	"parkdesk/internal/domain/slot"
)

// Read models (DTO for read side)
type SlotView struct {
	Index          int    `json:"index"`
	State          string `json:"state"`
	ActiveBookings int    `json:"activeBookings"`
}

type BoardView struct {
	LotName string     `json:"lotName"`
	Slots   []SlotView `json:"slots"`
}

type BookingView struct {
	ID        string    `json:"id"`
	SlotID    int       `json:"slotId"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
}

// ExportView is the administrative export document: a plain serialization of
// both records, no schema versioning.
type ExportView struct {
	Slots    []string      `json:"slots"`
	Bookings []BookingView `json:"bookings"`
}

// StateReader is the query side's view of the storage gateway.
type StateReader interface {
	LoadSlots(ctx context.Context) ([]slot.State, error)
	LoadBookings(ctx context.Context) ([]*booking.Booking, error)
}

type BoardQueries interface {
	Board(ctx context.Context) (*BoardView, error)
	ListBookings(ctx context.Context) ([]BookingView, error)
	Export(ctx context.Context) (*ExportView, error)
	SlotCount(ctx context.Context) (int, error)
}

type boardQueriesImpl struct {
	reader  StateReader
	lotName string
}

func NewBoardQueries(reader StateReader, lotName string) BoardQueries {
	return &boardQueriesImpl{reader: reader, lotName: lotName}
}

func (q *boardQueriesImpl) Board(ctx context.Context) (*BoardView, error) {
	states, err := q.reader.LoadSlots(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := q.reader.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[int]int, len(bookings))
	for _, b := range bookings {
		counts[b.SlotID()]++
	}

	slots := make([]SlotView, len(states))
	for i, s := range states {
		slots[i] = SlotView{
			Index:          i,
			State:          s.String(),
			ActiveBookings: counts[i],
		}
	}
	return &BoardView{LotName: q.lotName, Slots: slots}, nil
}

func (q *boardQueriesImpl) ListBookings(ctx context.Context) ([]BookingView, error) {
	bookings, err := q.reader.LoadBookings(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]BookingView, len(bookings))
	for i, b := range bookings {
		views[i] = NewBookingView(b)
	}
	return views, nil
}

func (q *boardQueriesImpl) Export(ctx context.Context) (*ExportView, error) {
	states, err := q.reader.LoadSlots(ctx)
	if err != nil {
		return nil, err
	}
	bookings, err := q.ListBookings(ctx)
	if err != nil {
		return nil, err
	}

	slots := make([]string, len(states))
	for i, s := range states {
		slots[i] = s.String()
	}
	return &ExportView{Slots: slots, Bookings: bookings}, nil
}

func (q *boardQueriesImpl) SlotCount(ctx context.Context) (int, error) {
	states, err := q.reader.LoadSlots(ctx)
	if err != nil {
		return 0, err
	}
	return len(states), nil
}

func NewBookingView(b *booking.Booking) BookingView {
	return BookingView{
		ID:        b.ID(),
		SlotID:    b.SlotID(),
		Name:      b.Name(),
		Start:     b.TimeSlot().Start(),
		End:       b.TimeSlot().End(),
		Hours:     b.Hours(),
		CreatedAt: b.CreatedAt(),
	}
}
