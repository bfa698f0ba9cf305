package handlers

import (
	"errors"

	"bwi2-seattrack/internal/core/domain"
	"bwi2-seattrack/internal/core/services"
	"bwi2-seattrack/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// WebhookHandler handles inbound callbacks from the notification system
type WebhookHandler struct {
	accommodationService *services.AccommodationService
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(accommodationService *services.AccommodationService) *WebhookHandler {
	return &WebhookHandler{
		accommodationService: accommodationService,
	}
}

// WebhookRequest represents an inbound notification-system callback
type WebhookRequest struct {
	AssociateLogin    string `json:"associateLogin"`
	AssociateName     string `json:"associateName"`
	ManagerLogin      string `json:"managerLogin"`
	ClaimNumber       string `json:"claimNumber"`
	ShiftPattern      string `json:"shiftPattern"`
	AccommodationRole string `json:"accommodationRole"`
	IsSeated          bool   `json:"isSeated"`
	AARestrictions    string `json:"aaRestrictions"`
	Status            string `json:"status"`
	RequestorLogin    string `json:"requestorLogin"`
}

// Receive handles an inbound callback: a bucket-classified upsert keyed by
// associate login
// @Summary Inbound webhook
// @Description Notification-system callback. Upserts the associate's latest accommodation record, classifying the shift bucket from the submitted pattern.
// @Tags Webhook
// @Accept json
// @Produce json
// @Param body body WebhookRequest true "Callback payload"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /webhook [post]
func (h *WebhookHandler) Receive(c *fiber.Ctx) error {
	var req WebhookRequest
	if err := c.BodyParser(&req); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	rec, created, err := h.accommodationService.UpsertFromWebhook(c.Context(), &services.WebhookUpsertInput{
		AssociateLogin:    req.AssociateLogin,
		AssociateName:     req.AssociateName,
		ManagerLogin:      req.ManagerLogin,
		ClaimNumber:       req.ClaimNumber,
		ShiftPattern:      req.ShiftPattern,
		AccommodationRole: req.AccommodationRole,
		IsSeated:          req.IsSeated,
		Restrictions:      req.AARestrictions,
		Status:            req.Status,
		RequestorLogin:    req.RequestorLogin,
	})
	if err != nil {
		if errors.Is(err, domain.ErrMissingAssociateLogin) {
			return response.BadRequest(c, err.Error())
		}
		return response.InternalServerError(c, "Failed to process webhook")
	}

	action := "updated"
	if created {
		action = "created"
	}
	return response.Success(c, "Webhook processed", fiber.Map{
		"received": true,
		"action":   action,
		"id":       rec.ID,
	})
}
