package response

import (
	"time"

	"parkdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	SlotID    int       `json:"slotId"`
	Name      string    `json:"name"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"createdAt"`
}

func FromBookingView(view queries.BookingView) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, &view)
	return resp
}

func FromBookingViews(views []queries.BookingView) []BookingResponse {
	resps := make([]BookingResponse, len(views))
	for i, v := range views {
		resps[i] = FromBookingView(v)
	}
	return resps
}
