package api

import (
	"fmt"
	"net/http"

	reqdto "parkdesk/internal/handler/dto/request"
	resdto "parkdesk/internal/handler/dto/response"
	"parkdesk/internal/pkg/policy"
	"parkdesk/internal/usecase/commands"
	"parkdesk/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotsHandler struct {
	inventory commands.InventoryCommands
	queries   queries.BoardQueries
	policy    policy.InventoryPolicy
}

func NewSlotsHandler(inventory commands.InventoryCommands, boardQueries queries.BoardQueries, pol policy.InventoryPolicy) *SlotsHandler {
	return &SlotsHandler{
		inventory: inventory,
		queries:   boardQueries,
		policy:    pol,
	}
}

// List returns the current slot board.
func (h *SlotsHandler) List(c *gin.Context) {
	board, err := h.queries.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoardView(board))
}

// Resize reconciles the inventory to the requested slot count. The policy
// bounds are enforced here, before the request reaches the inventory
// manager.
func (h *SlotsHandler) Resize(c *gin.Context) {
	var req reqdto.ResizeInventoryRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	count := *req.Count
	if !h.policy.AllowsCount(count) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("Slot count must be between %d and %d", h.policy.MinSlots, h.policy.MaxSlots),
		})
		return
	}

	if _, err := h.inventory.EnsureSlots(c.Request.Context(), count); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	board, err := h.queries.Board(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, resdto.FromBoardView(board))
}
