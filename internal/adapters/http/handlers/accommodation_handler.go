package handlers

import (
	"errors"
	"strconv"

	"bwi2-seattrack/internal/adapters/persistence/repositories"
	"bwi2-seattrack/internal/core/domain"
	"bwi2-seattrack/internal/core/services"
	"bwi2-seattrack/internal/pkg/pagination"
	"bwi2-seattrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AccommodationHandler handles accommodation record endpoints
type AccommodationHandler struct {
	accommodationService *services.AccommodationService
}

// NewAccommodationHandler creates a new accommodation handler
func NewAccommodationHandler(accommodationService *services.AccommodationService) *AccommodationHandler {
	return &AccommodationHandler{
		accommodationService: accommodationService,
	}
}

// parseIDParam parses the :id path parameter
func parseIDParam(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid record id")
	}
	return uint(id), nil
}

// List lists accommodation records
// @Summary List accommodation records
// @Description List all accommodation records, optionally filtered by site and shift bucket
// @Tags Records
// @Accept json
// @Produce json
// @Param site query string false "Filter by site code"
// @Param shift query string false "Filter by shift bucket (FHD, FHN, BHD, BHN, FLEX)"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(25)
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /records [get]
func (h *AccommodationHandler) List(c *fiber.Ctx) error {
	filter := repositories.ListFilter{
		Site: c.Query("site"),
	}
	if shift := c.Query("shift"); shift != "" {
		bucket := domain.ParseBucket(shift)
		if bucket == domain.BucketUnknown {
			return response.BadRequest(c, "Invalid shift bucket: "+shift)
		}
		filter.ShiftType = string(bucket)
	}

	params := pagination.GetParams(c)

	records, total, err := h.accommodationService.List(c.Context(), filter, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list records")
	}

	items := make([]interface{}, 0, len(records))
	for _, rec := range records {
		items = append(items, rec.ToResponse())
	}

	return response.Success(c, "Records retrieved", pagination.NewResponse(items, params, total))
}

// Get fetches one accommodation record
// @Summary Get accommodation record
// @Description Fetch one accommodation record by id (used for resubmission auto-fill)
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /records/{id} [get]
func (h *AccommodationHandler) Get(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	rec, err := h.accommodationService.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return response.NotFound(c, "Record not found")
		}
		return response.InternalServerError(c, "Failed to fetch record")
	}

	return response.Success(c, "Record retrieved", rec.ToResponse())
}

// PatchRecordRequest represents a partial record update
type PatchRecordRequest struct {
	AccommodationRole *string `json:"accommodationRole"`
	IsSeated          *bool   `json:"isSeated"`
	Status            *string `json:"status"`
}

// Patch partially updates an accommodation record
// @Summary Update accommodation record
// @Description Partially update role, seated flag, or status of a record
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param body body PatchRecordRequest true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /records/{id} [patch]
func (h *AccommodationHandler) Patch(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	var req PatchRecordRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rec, err := h.accommodationService.Patch(c.Context(), id, &services.UpdateRecordInput{
		AccommodationRole: req.AccommodationRole,
		IsSeated:          req.IsSeated,
		Status:            req.Status,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return response.NotFound(c, "Record not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to update record")
		}
	}

	return response.Success(c, "Record updated", rec.ToResponse())
}

// Delete removes an accommodation record
// @Summary Delete accommodation record
// @Description Remove an accommodation record by id
// @Tags Records
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /records/{id} [delete]
func (h *AccommodationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, err.Error())
	}

	if err := h.accommodationService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return response.NotFound(c, "Record not found")
		}
		return response.InternalServerError(c, "Failed to delete record")
	}

	return response.Success(c, "Record deleted", fiber.Map{"id": id})
}
