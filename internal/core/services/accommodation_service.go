package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"
	"bwi2-seattrack/internal/adapters/persistence/repositories"
	"bwi2-seattrack/internal/core/domain"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// AccommodationService handles accommodation record operations: the
// create-or-update submission policy, partial updates, the inbound webhook
// upsert, and the post-commit notification.
type AccommodationService struct {
	repo      AccommodationStore
	notifier  Notifier
	occupancy *OccupancyService
	site      string
	validate  *validator.Validate
}

// NewAccommodationService creates a new accommodation service.
// notifier and occupancy may be nil; notification and cache invalidation are
// then skipped.
func NewAccommodationService(repo AccommodationStore, notifier Notifier, occupancy *OccupancyService, site string) *AccommodationService {
	return &AccommodationService{
		repo:      repo,
		notifier:  notifier,
		occupancy: occupancy,
		site:      site,
		validate:  validator.New(),
	}
}

// SubmitRestrictionInput is the POST /restrictions submission body
type SubmitRestrictionInput struct {
	IsNew             string `validate:"required,oneof=yes no"`
	ClaimNumber       string `validate:"required_if=IsNew yes"`
	AssociateLogin    string `validate:"required_if=IsNew yes"`
	AssociateName     string
	ManagerLogin      string
	AssociateHomePath string
	ShiftPattern      string
	AccommodationRole string
	IsSeated          bool
	Restrictions      string
	RequestorLogin    string
	Status            string
	StartDate         string `validate:"omitempty,datetime=2006-01-02"`
	EndDate           string `validate:"omitempty,datetime=2006-01-02"`
	ExistingRecordID  uint
	SupportingDocKey  string
	SupportingDocURL  string
}

// SubmitResult reports the outcome of a submission
type SubmitResult struct {
	Record  *models.Accommodation
	Created bool
}

// SubmitRestriction applies the create-or-update policy:
//
//	isNew="yes": atomic upsert keyed on claim_number; a fresh shift bucket is
//	classified from the submitted pattern, but a conflicting existing row
//	keeps its original shift columns.
//	isNew="no": requires ExistingRecordID and fails with ErrRecordNotFound
//	when the row is missing. Shift columns are never touched: the bucket is
//	fixed at creation time, even if the payload carries a new pattern.
//
// After the write commits, a notice is pushed to the messaging webhook with
// the current occupancy numbers for the record's bucket. Delivery failures
// are logged and never fail the submission.
func (s *AccommodationService) SubmitRestriction(ctx context.Context, input *SubmitRestrictionInput) (*SubmitResult, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, err.Error())
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}

	var result *SubmitResult
	switch input.IsNew {
	case "yes":
		rec := &models.Accommodation{
			ClaimNumber:       input.ClaimNumber,
			AssociateLogin:    input.AssociateLogin,
			AssociateName:     input.AssociateName,
			ManagerLogin:      input.ManagerLogin,
			AssociateHomePath: input.AssociateHomePath,
			ShiftPattern:      input.ShiftPattern,
			ShiftType:         string(domain.Classify(input.ShiftPattern)),
			Site:              s.site,
			AccommodationRole: input.AccommodationRole,
			IsSeated:          input.IsSeated,
			Restrictions:      input.Restrictions,
			Status:            status,
			StartDate:         parseDate(input.StartDate),
			EndDate:           parseDate(input.EndDate),
			RequestorLogin:    input.RequestorLogin,
			SupportingDocKey:  input.SupportingDocKey,
			SupportingDocURL:  input.SupportingDocURL,
		}
		created, err := s.repo.UpsertByClaimNumber(ctx, rec)
		if err != nil {
			return nil, err
		}
		result = &SubmitResult{Record: rec, Created: created}

	case "no":
		if input.ExistingRecordID == 0 {
			return nil, domain.ErrMissingExistingID
		}
		if _, err := s.repo.GetByID(ctx, input.ExistingRecordID); err != nil {
			return nil, err
		}

		// Shift columns stay as stored; the bucket was fixed at creation
		updates := map[string]interface{}{
			"accommodation_role": input.AccommodationRole,
			"is_seated":          input.IsSeated,
			"restrictions":       input.Restrictions,
			"requestor_login":    input.RequestorLogin,
			"status":             status,
			"site":               s.site,
		}
		if d := parseDate(input.StartDate); d != nil {
			updates["start_date"] = d
		}
		if d := parseDate(input.EndDate); d != nil {
			updates["end_date"] = d
		}
		if input.SupportingDocURL != "" {
			updates["supporting_doc_key"] = input.SupportingDocKey
			updates["supporting_doc_url"] = input.SupportingDocURL
		}
		if err := s.repo.Update(ctx, input.ExistingRecordID, updates); err != nil {
			return nil, err
		}
		rec, err := s.repo.GetByID(ctx, input.ExistingRecordID)
		if err != nil {
			return nil, err
		}
		result = &SubmitResult{Record: rec, Created: false}

	default:
		return nil, domain.ErrInvalidIsNew
	}

	s.invalidateSnapshot(ctx)
	s.notifySubmission(ctx, result.Record)

	return result, nil
}

// Get fetches one record by id
func (s *AccommodationService) Get(ctx context.Context, id uint) (*models.Accommodation, error) {
	return s.repo.GetByID(ctx, id)
}

// List lists records with optional site/shift filters
func (s *AccommodationService) List(ctx context.Context, filter repositories.ListFilter, offset, limit int) ([]*models.Accommodation, int64, error) {
	return s.repo.List(ctx, filter, offset, limit)
}

// UpdateRecordInput is the PATCH /records/:id body; nil fields stay untouched
type UpdateRecordInput struct {
	AccommodationRole *string
	IsSeated          *bool
	Status            *string
}

// Patch applies a partial role/status update to a record
func (s *AccommodationService) Patch(ctx context.Context, id uint, input *UpdateRecordInput) (*models.Accommodation, error) {
	updates := map[string]interface{}{}
	if input.AccommodationRole != nil {
		updates["accommodation_role"] = *input.AccommodationRole
	}
	if input.IsSeated != nil {
		updates["is_seated"] = *input.IsSeated
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}
	if len(updates) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields in request", domain.ErrInvalidInput)
	}

	if err := s.repo.Update(ctx, id, updates); err != nil {
		return nil, err
	}
	s.invalidateSnapshot(ctx)
	return s.repo.GetByID(ctx, id)
}

// Delete removes a record
func (s *AccommodationService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateSnapshot(ctx)
	return nil
}

// WebhookUpsertInput is the inbound notification-system callback body
type WebhookUpsertInput struct {
	AssociateLogin    string
	AssociateName     string
	ManagerLogin      string
	ClaimNumber       string
	ShiftPattern      string
	AccommodationRole string
	IsSeated          bool
	Restrictions      string
	Status            string
	RequestorLogin    string
}

// UpsertFromWebhook handles the inbound callback: a bucket-classified upsert
// keyed by associate login. Returns the record and whether it was created.
func (s *AccommodationService) UpsertFromWebhook(ctx context.Context, input *WebhookUpsertInput) (*models.Accommodation, bool, error) {
	if strings.TrimSpace(input.AssociateLogin) == "" {
		return nil, false, domain.ErrMissingAssociateLogin
	}

	status := input.Status
	if status == "" {
		status = models.StatusPending
	}
	claimNumber := input.ClaimNumber
	if claimNumber == "" {
		// Callbacks do not always carry a claim; synthesize one so the
		// natural-key column stays unique
		claimNumber = "WH-" + uuid.NewString()
	}

	rec := &models.Accommodation{
		ClaimNumber:       claimNumber,
		AssociateLogin:    input.AssociateLogin,
		AssociateName:     input.AssociateName,
		ManagerLogin:      input.ManagerLogin,
		ShiftPattern:      input.ShiftPattern,
		ShiftType:         string(domain.Classify(input.ShiftPattern)),
		Site:              s.site,
		AccommodationRole: input.AccommodationRole,
		IsSeated:          input.IsSeated,
		Restrictions:      input.Restrictions,
		Status:            status,
		RequestorLogin:    input.RequestorLogin,
	}

	created, err := s.repo.UpsertByAssociateLogin(ctx, rec)
	if err != nil {
		return nil, false, err
	}
	s.invalidateSnapshot(ctx)
	return rec, created, nil
}

// notifySubmission pushes a restriction notice with current occupancy
// numbers for the record's bucket. Best-effort only.
func (s *AccommodationService) notifySubmission(ctx context.Context, rec *models.Accommodation) {
	if s.notifier == nil || !s.notifier.IsEnabled() {
		return
	}

	bucket := domain.EffectiveBucket(rec.ShiftType, rec.ShiftPattern)
	bucketCount, err := s.repo.CountApprovedSeatedByBucket(ctx, s.site, string(bucket))
	if err != nil {
		log.Printf("⚠️ Seat count query for notification failed: %v", err)
	}
	total, err := s.repo.CountApprovedSeated(ctx, s.site)
	if err != nil {
		log.Printf("⚠️ Seated total query for notification failed: %v", err)
	}

	notice := RestrictionNotice{
		AssociateName:   rec.AssociateName,
		AssociateLogin:  rec.AssociateLogin,
		HomePath:        rec.AssociateHomePath,
		Restrictions:    rec.Restrictions,
		RecommendedRole: rec.AccommodationRole,
		RequestorLogin:  rec.RequestorLogin,
		Bucket:          string(bucket),
		BucketSeated:    bucketCount,
		TotalSeated:     total,
		AttachmentURL:   rec.SupportingDocURL,
	}
	if err := s.notifier.SendRestrictionNotice(ctx, notice); err != nil {
		log.Printf("⚠️ Notification delivery failed (record %d): %v", rec.ID, err)
	}
}

func (s *AccommodationService) invalidateSnapshot(ctx context.Context) {
	if s.occupancy != nil {
		s.occupancy.Invalidate(ctx)
	}
}

func parseDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(models.DateFormat, s)
	if err != nil {
		return nil
	}
	return &t
}
