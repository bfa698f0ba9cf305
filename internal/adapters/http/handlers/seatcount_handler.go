package handlers

import (
	"bwi2-seattrack/internal/core/services"
	"bwi2-seattrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// SeatCountHandler handles the seat occupancy snapshot endpoint
type SeatCountHandler struct {
	occupancyService *services.OccupancyService
}

// NewSeatCountHandler creates a new seat count handler
func NewSeatCountHandler(occupancyService *services.OccupancyService) *SeatCountHandler {
	return &SeatCountHandler{
		occupancyService: occupancyService,
	}
}

// Get returns the current seat occupancy snapshot
// @Summary Seat occupancy snapshot
// @Description Day-by-shift coverage grid and per-bucket distinct counts over all Approved seated accommodations
// @Tags SeatCounts
// @Accept json
// @Produce json
// @Success 200 {object} services.SeatCountSnapshot
// @Failure 500 {object} response.Response
// @Router /seatCounts [get]
func (h *SeatCountHandler) Get(c *fiber.Ctx) error {
	snapshot, err := h.occupancyService.Snapshot(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to compute seat counts")
	}
	return c.JSON(snapshot)
}
