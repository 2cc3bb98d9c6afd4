package response

import (
	"parkdesk/internal/usecase/queries"
)

// ExportResponse mirrors the persisted state layout exactly: the slot record
// as a string array and the booking record as stored objects.
type ExportResponse struct {
	Slots    []string          `json:"slots"`
	Bookings []BookingResponse `json:"bookings"`
}

func FromExportView(view *queries.ExportView) ExportResponse {
	return ExportResponse{
		Slots:    view.Slots,
		Bookings: FromBookingViews(view.Bookings),
	}
}
