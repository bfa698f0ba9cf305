package repositories

import (
	"context"
	"errors"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"
	"bwi2-seattrack/internal/core/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ListFilter holds the optional filters for listing accommodations
type ListFilter struct {
	Site      string
	ShiftType string
}

// AccommodationRepository handles accommodation data access
type AccommodationRepository struct {
	db *gorm.DB
}

// NewAccommodationRepository creates a new accommodation repository
func NewAccommodationRepository(db *gorm.DB) *AccommodationRepository {
	return &AccommodationRepository{db: db}
}

// Create creates a new accommodation record
func (r *AccommodationRepository) Create(ctx context.Context, rec *models.Accommodation) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

// GetByID gets an accommodation record by ID
func (r *AccommodationRepository) GetByID(ctx context.Context, id uint) (*models.Accommodation, error) {
	var rec models.Accommodation
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetByClaimNumber gets an accommodation record by its natural key
func (r *AccommodationRepository) GetByClaimNumber(ctx context.Context, claimNumber string) (*models.Accommodation, error) {
	var rec models.Accommodation
	err := r.db.WithContext(ctx).Where("claim_number = ?", claimNumber).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// List lists accommodation records with optional filters and pagination
func (r *AccommodationRepository) List(ctx context.Context, filter ListFilter, offset, limit int) ([]*models.Accommodation, int64, error) {
	var recs []*models.Accommodation
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Accommodation{})
	if filter.Site != "" {
		query = query.Where("site = ?", filter.Site)
	}
	if filter.ShiftType != "" {
		query = query.Where("shift_type = ?", filter.ShiftType)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("id DESC").
		Offset(offset).
		Limit(limit).
		Find(&recs).Error

	return recs, total, err
}

// Update applies a partial update to an accommodation record
func (r *AccommodationRepository) Update(ctx context.Context, id uint, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).
		Model(&models.Accommodation{}).
		Where("id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// Distinguish "no such row" from "nothing changed"
		var count int64
		r.db.WithContext(ctx).Model(&models.Accommodation{}).Where("id = ?", id).Count(&count)
		if count == 0 {
			return domain.ErrRecordNotFound
		}
	}
	return nil
}

// Delete soft-deletes an accommodation record
func (r *AccommodationRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Accommodation{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecordNotFound
	}
	return nil
}

// UpsertByClaimNumber performs an atomic insert-or-update guarded by the
// unique claim_number index (ON DUPLICATE KEY UPDATE on MySQL), closing the
// check-then-insert race on concurrent resubmissions of the same claim.
// Shift columns are excluded from the conflict update: the shift bucket is
// fixed at creation time. Returns true when a new row was inserted.
func (r *AccommodationRepository) UpsertByClaimNumber(ctx context.Context, rec *models.Accommodation) (bool, error) {
	// deleted_at is part of the conflict update: the unique index still holds
	// soft-deleted rows, so resubmitting a deleted claim restores the row
	// (the insert values carry a NULL deleted_at)
	res := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "claim_number"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"associate_login", "associate_name", "manager_login", "associate_home_path",
			"accommodation_role", "is_seated", "restrictions", "status",
			"start_date", "end_date", "requestor_login", "site",
			"supporting_doc_key", "supporting_doc_url", "deleted_at",
		}),
	}).Create(rec)
	if res.Error != nil {
		return false, res.Error
	}

	// MySQL reports 1 affected row for an insert, 2 for a duplicate-key update
	created := res.RowsAffected == 1

	// Reload so callers see the stored row: the real id, and the original
	// shift columns on the update path
	var stored models.Accommodation
	if err := r.db.WithContext(ctx).Where("claim_number = ?", rec.ClaimNumber).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return created, domain.ErrRecordNotFound
		}
		return created, err
	}
	*rec = stored
	return created, nil
}

// UpsertByAssociateLogin creates or updates the latest record for an
// associate login. Used by the inbound webhook path, where the notification
// system keys its callbacks by login rather than claim number.
func (r *AccommodationRepository) UpsertByAssociateLogin(ctx context.Context, rec *models.Accommodation) (bool, error) {
	var existing models.Accommodation
	err := r.db.WithContext(ctx).
		Where("associate_login = ?", rec.AssociateLogin).
		Order("id DESC").
		First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return true, r.db.WithContext(ctx).Create(rec).Error
	}
	if err != nil {
		return false, err
	}

	updates := map[string]interface{}{
		"accommodation_role": rec.AccommodationRole,
		"is_seated":          rec.IsSeated,
		"restrictions":       rec.Restrictions,
		"status":             rec.Status,
		"requestor_login":    rec.RequestorLogin,
	}
	if rec.AssociateName != "" {
		updates["associate_name"] = rec.AssociateName
	}
	if rec.ManagerLogin != "" {
		updates["manager_login"] = rec.ManagerLogin
	}
	if err := r.db.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		return false, err
	}

	// Reload so the caller sees the stored row, shift columns included
	var stored models.Accommodation
	if err := r.db.WithContext(ctx).First(&stored, existing.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, domain.ErrRecordNotFound
		}
		return false, err
	}
	*rec = stored
	return false, nil
}

// ListApprovedSeated returns the shift columns of all records that count
// toward seat occupancy: Approved status and a seated role
func (r *AccommodationRepository) ListApprovedSeated(ctx context.Context, site string) ([]*models.Accommodation, error) {
	var recs []*models.Accommodation
	query := r.db.WithContext(ctx).
		Select("id", "shift_pattern", "shift_type").
		Where("status = ? AND is_seated = ?", models.StatusApproved, true)
	if site != "" {
		query = query.Where("site = ?", site)
	}
	err := query.Find(&recs).Error
	return recs, err
}

// CountApprovedSeatedByBucket counts countable records in one shift bucket
func (r *AccommodationRepository) CountApprovedSeatedByBucket(ctx context.Context, site, shiftType string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Accommodation{}).
		Where("status = ? AND is_seated = ? AND shift_type = ?", models.StatusApproved, true, shiftType)
	if site != "" {
		query = query.Where("site = ?", site)
	}
	err := query.Count(&count).Error
	return count, err
}

// CountApprovedSeated counts all countable records for a site
func (r *AccommodationRepository) CountApprovedSeated(ctx context.Context, site string) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.Accommodation{}).
		Where("status = ? AND is_seated = ?", models.StatusApproved, true)
	if site != "" {
		query = query.Where("site = ?", site)
	}
	err := query.Count(&count).Error
	return count, err
}

// ExpireOutdated transitions all records whose end date has passed, and that
// are not already carrying the expiry marker, into the marker status.
// Returns the number of transitioned rows.
//
// end_date is a DATE column stored at midnight; a restriction stays valid
// through its end date, so the cutoff is the start of the current day.
func (r *AccommodationRepository) ExpireOutdated(ctx context.Context, now time.Time, marker string) (int64, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	res := r.db.WithContext(ctx).Model(&models.Accommodation{}).
		Where("end_date IS NOT NULL AND end_date < ? AND status <> ?", today, marker).
		Update("status", marker)
	return res.RowsAffected, res.Error
}
