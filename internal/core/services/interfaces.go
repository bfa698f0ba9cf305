package services

import (
	"context"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"
	"bwi2-seattrack/internal/adapters/persistence/repositories"
)

// Note: AccommodationService implementation is in accommodation_service.go
// Note: OccupancyService implementation is in occupancy_service.go

// AccommodationStore defines the persistence operations the services need.
// *repositories.AccommodationRepository is the production implementation;
// tests substitute a map-backed mock.
type AccommodationStore interface {
	Create(ctx context.Context, rec *models.Accommodation) error
	GetByID(ctx context.Context, id uint) (*models.Accommodation, error)
	GetByClaimNumber(ctx context.Context, claimNumber string) (*models.Accommodation, error)
	List(ctx context.Context, filter repositories.ListFilter, offset, limit int) ([]*models.Accommodation, int64, error)
	Update(ctx context.Context, id uint, updates map[string]interface{}) error
	Delete(ctx context.Context, id uint) error
	UpsertByClaimNumber(ctx context.Context, rec *models.Accommodation) (bool, error)
	UpsertByAssociateLogin(ctx context.Context, rec *models.Accommodation) (bool, error)
	ListApprovedSeated(ctx context.Context, site string) ([]*models.Accommodation, error)
	CountApprovedSeatedByBucket(ctx context.Context, site, shiftType string) (int64, error)
	CountApprovedSeated(ctx context.Context, site string) (int64, error)
	ExpireOutdated(ctx context.Context, now time.Time, marker string) (int64, error)
}

// Notifier delivers restriction notices to the messaging webhook.
// Delivery is best-effort: callers log failures and never roll back.
type Notifier interface {
	IsEnabled() bool
	SendRestrictionNotice(ctx context.Context, notice RestrictionNotice) error
}
