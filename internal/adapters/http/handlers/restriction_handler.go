package handlers

import (
	"errors"

	"bwi2-seattrack/internal/core/domain"
	"bwi2-seattrack/internal/core/services"
	"bwi2-seattrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// RestrictionHandler handles the restriction submission endpoint
type RestrictionHandler struct {
	accommodationService *services.AccommodationService
	attachmentService    *services.AttachmentService // nil when object storage is not configured
}

// NewRestrictionHandler creates a new restriction handler
func NewRestrictionHandler(accommodationService *services.AccommodationService, attachmentService *services.AttachmentService) *RestrictionHandler {
	return &RestrictionHandler{
		accommodationService: accommodationService,
		attachmentService:    attachmentService,
	}
}

// SubmitRestrictionRequest represents a restriction submission.
// Field names match the intake form wire format.
type SubmitRestrictionRequest struct {
	IsNew             string `json:"isNew" form:"isNew"`
	ClaimNumber       string `json:"claimNumber" form:"claimNumber"`
	AssociateName     string `json:"associateName" form:"associateName"`
	AssociateLogin    string `json:"associateLogin" form:"associateLogin"`
	ManagerLogin      string `json:"managerLogin" form:"managerLogin"`
	AssociateHomePath string `json:"associateHomePath" form:"associateHomePath"`
	ShiftPattern      string `json:"shiftPattern" form:"shiftPattern"`
	AccommodationRole string `json:"accommodationRole" form:"accommodationRole"`
	IsSeated          bool   `json:"isSeated" form:"isSeated"`
	AARestrictions    string `json:"aaRestrictions" form:"aaRestrictions"`
	RequestorLogin    string `json:"requestorLogin" form:"requestorLogin"`
	Status            string `json:"status" form:"status"`
	StartDate         string `json:"startDate" form:"startDate"`
	EndDate           string `json:"endDate" form:"endDate"`
	ExistingRecordID  uint   `json:"existingRecordId" form:"existingRecordId"`
}

// Submit creates or updates a restriction record and notifies the channel
// @Summary Submit restrictions
// @Description Create or update an accommodation request. Accepts JSON or multipart form data with an optional "supportingDoc" file. After the record is saved, a notification with current seat occupancy is pushed to the messaging webhook (best-effort).
// @Tags Restrictions
// @Accept json
// @Accept mpfd
// @Produce json
// @Param body body SubmitRestrictionRequest true "Submission data"
// @Success 200 {object} response.Response
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /restrictions [post]
func (h *RestrictionHandler) Submit(c *fiber.Ctx) error {
	var req SubmitRestrictionRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	input := &services.SubmitRestrictionInput{
		IsNew:             req.IsNew,
		ClaimNumber:       req.ClaimNumber,
		AssociateName:     req.AssociateName,
		AssociateLogin:    req.AssociateLogin,
		ManagerLogin:      req.ManagerLogin,
		AssociateHomePath: req.AssociateHomePath,
		ShiftPattern:      req.ShiftPattern,
		AccommodationRole: req.AccommodationRole,
		IsSeated:          req.IsSeated,
		Restrictions:      req.AARestrictions,
		RequestorLogin:    req.RequestorLogin,
		Status:            req.Status,
		StartDate:         req.StartDate,
		EndDate:           req.EndDate,
		ExistingRecordID:  req.ExistingRecordID,
	}

	// Optional supporting document (multipart submissions only)
	if file, err := c.FormFile("supportingDoc"); err == nil && file != nil {
		if h.attachmentService == nil {
			return response.BadRequest(c, domain.ErrAttachmentUnavailable.Error())
		}
		src, err := file.Open()
		if err != nil {
			return response.BadRequest(c, "Failed to read supporting document")
		}
		defer src.Close()

		stored, err := h.attachmentService.Store(c.Context(), file.Filename, file.Size, src, file.Header.Get("Content-Type"))
		if err != nil {
			return response.InternalServerError(c, "Failed to store supporting document")
		}
		input.SupportingDocKey = stored.Key
		input.SupportingDocURL = stored.URL
	}

	result, err := h.accommodationService.SubmitRestriction(c.Context(), input)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			return response.NotFound(c, "Record not found for existingRecordId")
		case errors.Is(err, domain.ErrMissingExistingID),
			errors.Is(err, domain.ErrInvalidIsNew),
			errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, err.Error())
		default:
			return response.InternalServerError(c, "Failed to save restrictions")
		}
	}

	data := fiber.Map{
		"id":      result.Record.ID,
		"created": result.Created,
		"record":  result.Record.ToResponse(),
	}
	if result.Created {
		return response.Created(c, "Restrictions saved", data)
	}
	return response.Success(c, "Restrictions updated", data)
}
