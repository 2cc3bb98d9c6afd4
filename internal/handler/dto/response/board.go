package response

import (
	"parkdesk/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type SlotResponse struct {
	Index          int    `json:"index"`
	State          string `json:"state"`
	ActiveBookings int    `json:"activeBookings"`
}

type BoardResponse struct {
	LotName string         `json:"lotName"`
	Slots   []SlotResponse `json:"slots"`
}

func FromBoardView(view *queries.BoardView) BoardResponse {
	var resp BoardResponse
	_ = copier.Copy(&resp, view)
	return resp
}
