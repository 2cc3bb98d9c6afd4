package api

import (
	"errors"
	"net/http"

	reqdto "parkdesk/internal/handler/dto/request"
	resdto "parkdesk/internal/handler/dto/response"
	"parkdesk/internal/usecase/commands"
	"parkdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingsHandler struct {
	bookings commands.BookingCommands
	queries  queries.BoardQueries
}

func NewBookingsHandler(bookingCommands commands.BookingCommands, boardQueries queries.BoardQueries) *BookingsHandler {
	return &BookingsHandler{
		bookings: bookingCommands,
		queries:  boardQueries,
	}
}

// List returns every booking in the ledger.
func (h *BookingsHandler) List(c *gin.Context) {
	views, err := h.queries.ListBookings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// Create books a slot for a time interval. The ledger trusts its inputs, so
// every precondition (trimmed non-empty name, positive hours, slot index in
// range) is checked here.
func (h *BookingsHandler) Create(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	name := req.TrimmedName()
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Name must not be empty",
		})
		return
	}

	slotID := *req.SlotID
	count, err := h.queries.SlotCount(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	if slotID < 0 || slotID >= count {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot does not exist",
		})
		return
	}

	created, err := h.bookings.Create(c.Request.Context(), slotID, name, req.Start, req.Hours)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrBookingConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Requested time overlaps an existing booking for this slot",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(queries.NewBookingView(created)))
}

// Cancel removes a booking by id. Cancelling an unknown or already-cancelled
// id succeeds silently, so the response is 204 either way.
func (h *BookingsHandler) Cancel(c *gin.Context) {
	if err := h.bookings.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
