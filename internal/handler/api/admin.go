package api

import (
	"net/http"

	resdto "parkdesk/internal/handler/dto/response"
	"parkdesk/internal/usecase/commands"
	"parkdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookings commands.BookingCommands
	queries  queries.BoardQueries
}

func NewAdminHandler(bookingCommands commands.BookingCommands, boardQueries queries.BoardQueries) *AdminHandler {
	return &AdminHandler{
		bookings: bookingCommands,
		queries:  boardQueries,
	}
}

// Export serves the full persisted state as a JSON download.
func (h *AdminHandler) Export(c *gin.Context) {
	view, err := h.queries.Export(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Header("Content-Disposition", `attachment; filename="parkdesk-export.json"`)
	c.JSON(http.StatusOK, resdto.FromExportView(view))
}

// Reset clears every booking and frees every slot. A blunt escape hatch: it
// bypasses the conflict machinery entirely.
func (h *AdminHandler) Reset(c *gin.Context) {
	if err := h.bookings.ResetAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.Status(http.StatusNoContent)
}
