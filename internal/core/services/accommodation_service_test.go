package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"
	"bwi2-seattrack/internal/adapters/persistence/repositories"
	"bwi2-seattrack/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================
// Map-backed mock store
// ============================================================

type mockStore struct {
	records map[uint]*models.Accommodation
	nextID  uint

	expireErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		records: make(map[uint]*models.Accommodation),
		nextID:  1,
	}
}

func (m *mockStore) Create(_ context.Context, rec *models.Accommodation) error {
	rec.ID = m.nextID
	m.nextID++
	clone := *rec
	m.records[rec.ID] = &clone
	return nil
}

func (m *mockStore) GetByID(_ context.Context, id uint) (*models.Accommodation, error) {
	rec, ok := m.records[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	clone := *rec
	return &clone, nil
}

func (m *mockStore) GetByClaimNumber(_ context.Context, claimNumber string) (*models.Accommodation, error) {
	for _, rec := range m.records {
		if rec.ClaimNumber == claimNumber {
			clone := *rec
			return &clone, nil
		}
	}
	return nil, domain.ErrRecordNotFound
}

func (m *mockStore) List(_ context.Context, filter repositories.ListFilter, offset, limit int) ([]*models.Accommodation, int64, error) {
	var out []*models.Accommodation
	for _, rec := range m.records {
		if filter.Site != "" && rec.Site != filter.Site {
			continue
		}
		if filter.ShiftType != "" && rec.ShiftType != filter.ShiftType {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (m *mockStore) Update(_ context.Context, id uint, updates map[string]interface{}) error {
	rec, ok := m.records[id]
	if !ok {
		return domain.ErrRecordNotFound
	}
	applyUpdates(rec, updates)
	return nil
}

func (m *mockStore) Delete(_ context.Context, id uint) error {
	if _, ok := m.records[id]; !ok {
		return domain.ErrRecordNotFound
	}
	delete(m.records, id)
	return nil
}

func (m *mockStore) UpsertByClaimNumber(_ context.Context, rec *models.Accommodation) (bool, error) {
	for _, existing := range m.records {
		if existing.ClaimNumber == rec.ClaimNumber {
			// Mirror the production upsert: mutable fields change, shift
			// columns stay as stored
			existing.AssociateLogin = rec.AssociateLogin
			existing.AssociateName = rec.AssociateName
			existing.ManagerLogin = rec.ManagerLogin
			existing.AssociateHomePath = rec.AssociateHomePath
			existing.AccommodationRole = rec.AccommodationRole
			existing.IsSeated = rec.IsSeated
			existing.Restrictions = rec.Restrictions
			existing.Status = rec.Status
			existing.StartDate = rec.StartDate
			existing.EndDate = rec.EndDate
			existing.RequestorLogin = rec.RequestorLogin
			existing.Site = rec.Site
			existing.SupportingDocKey = rec.SupportingDocKey
			existing.SupportingDocURL = rec.SupportingDocURL
			*rec = *existing
			return false, nil
		}
	}
	rec.ID = m.nextID
	m.nextID++
	clone := *rec
	m.records[rec.ID] = &clone
	return true, nil
}

func (m *mockStore) UpsertByAssociateLogin(_ context.Context, rec *models.Accommodation) (bool, error) {
	var latest *models.Accommodation
	for _, existing := range m.records {
		if existing.AssociateLogin != rec.AssociateLogin {
			continue
		}
		if latest == nil || existing.ID > latest.ID {
			latest = existing
		}
	}
	if latest == nil {
		rec.ID = m.nextID
		m.nextID++
		clone := *rec
		m.records[rec.ID] = &clone
		return true, nil
	}

	latest.AccommodationRole = rec.AccommodationRole
	latest.IsSeated = rec.IsSeated
	latest.Restrictions = rec.Restrictions
	latest.Status = rec.Status
	latest.RequestorLogin = rec.RequestorLogin
	if rec.AssociateName != "" {
		latest.AssociateName = rec.AssociateName
	}
	if rec.ManagerLogin != "" {
		latest.ManagerLogin = rec.ManagerLogin
	}
	*rec = *latest
	return false, nil
}

func (m *mockStore) ListApprovedSeated(_ context.Context, site string) ([]*models.Accommodation, error) {
	var out []*models.Accommodation
	for _, rec := range m.records {
		if !rec.IsCountable() {
			continue
		}
		if site != "" && rec.Site != site {
			continue
		}
		clone := *rec
		out = append(out, &clone)
	}
	return out, nil
}

func (m *mockStore) CountApprovedSeatedByBucket(_ context.Context, site, shiftType string) (int64, error) {
	var count int64
	for _, rec := range m.records {
		if rec.IsCountable() && rec.ShiftType == shiftType && (site == "" || rec.Site == site) {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) CountApprovedSeated(_ context.Context, site string) (int64, error) {
	var count int64
	for _, rec := range m.records {
		if rec.IsCountable() && (site == "" || rec.Site == site) {
			count++
		}
	}
	return count, nil
}

func (m *mockStore) ExpireOutdated(_ context.Context, now time.Time, marker string) (int64, error) {
	if m.expireErr != nil {
		return 0, m.expireErr
	}
	// Records stay valid through their end date
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var n int64
	for _, rec := range m.records {
		if rec.EndDate != nil && rec.EndDate.Before(today) && rec.Status != marker {
			rec.Status = marker
			n++
		}
	}
	return n, nil
}

func applyUpdates(rec *models.Accommodation, updates map[string]interface{}) {
	for key, value := range updates {
		switch key {
		case "associate_name":
			rec.AssociateName = value.(string)
		case "manager_login":
			rec.ManagerLogin = value.(string)
		case "accommodation_role":
			rec.AccommodationRole = value.(string)
		case "is_seated":
			rec.IsSeated = value.(bool)
		case "restrictions":
			rec.Restrictions = value.(string)
		case "requestor_login":
			rec.RequestorLogin = value.(string)
		case "status":
			rec.Status = value.(string)
		case "site":
			rec.Site = value.(string)
		case "start_date":
			rec.StartDate = value.(*time.Time)
		case "end_date":
			rec.EndDate = value.(*time.Time)
		case "supporting_doc_key":
			rec.SupportingDocKey = value.(string)
		case "supporting_doc_url":
			rec.SupportingDocURL = value.(string)
		}
	}
}

// ============================================================
// Stub notifier
// ============================================================

type stubNotifier struct {
	notices []RestrictionNotice
	err     error
}

func (n *stubNotifier) IsEnabled() bool { return true }

func (n *stubNotifier) SendRestrictionNotice(_ context.Context, notice RestrictionNotice) error {
	n.notices = append(n.notices, notice)
	return n.err
}

func newTestService() (*AccommodationService, *mockStore, *stubNotifier) {
	store := newMockStore()
	notifier := &stubNotifier{}
	svc := NewAccommodationService(store, notifier, nil, "BWI2")
	return svc, store, notifier
}

// ============================================================
// Submission policy
// ============================================================

func TestSubmitRestrictionCreatesRecord(t *testing.T) {
	svc, _, notifier := newTestService()

	result, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew:             "yes",
		ClaimNumber:       "CLM-100",
		AssociateLogin:    "jdoe",
		AssociateName:     "Jane Doe",
		AssociateHomePath: "Pick Tower A",
		ShiftPattern:      "DA5-1830",
		AccommodationRole: "Asset tagging",
		IsSeated:          true,
		Restrictions:      "Seated work only",
		RequestorLogin:    "msmith",
		StartDate:         "2025-01-06",
		EndDate:           "2025-03-06",
	})
	require.NoError(t, err)

	assert.True(t, result.Created)
	assert.Equal(t, "FHD", result.Record.ShiftType)
	assert.Equal(t, "BWI2", result.Record.Site)
	assert.Equal(t, models.StatusPending, result.Record.Status)
	require.NotNil(t, result.Record.StartDate)
	assert.Equal(t, "2025-01-06", result.Record.StartDate.Format(models.DateFormat))

	require.Len(t, notifier.notices, 1)
	assert.Equal(t, "FHD", notifier.notices[0].Bucket)
	assert.Equal(t, "jdoe", notifier.notices[0].AssociateLogin)
}

func TestSubmitRestrictionUpsertsExistingClaim(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.SubmitRestriction(ctx, &SubmitRestrictionInput{
		IsNew:          "yes",
		ClaimNumber:    "CLM-200",
		AssociateLogin: "jdoe",
		ShiftPattern:   "DB3-2230",
	})
	require.NoError(t, err)
	require.True(t, first.Created)
	require.Equal(t, "BHD", first.Record.ShiftType)

	// Resubmitting the same claim updates in place; the shift bucket stays
	// fixed even though the payload carries a different pattern
	second, err := svc.SubmitRestriction(ctx, &SubmitRestrictionInput{
		IsNew:             "yes",
		ClaimNumber:       "CLM-200",
		AssociateLogin:    "jdoe",
		ShiftPattern:      "NA-1800",
		AccommodationRole: "Seated PA role",
		IsSeated:          true,
	})
	require.NoError(t, err)

	assert.False(t, second.Created)
	assert.Equal(t, first.Record.ID, second.Record.ID)
	assert.Equal(t, "BHD", second.Record.ShiftType)
	assert.Equal(t, "Seated PA role", second.Record.AccommodationRole)
}

func TestSubmitRestrictionUpdatePreservesShiftType(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	created, err := svc.SubmitRestriction(ctx, &SubmitRestrictionInput{
		IsNew:          "yes",
		ClaimNumber:    "CLM-300",
		AssociateLogin: "bwayne",
		ShiftPattern:   "DB3-night",
	})
	require.NoError(t, err)
	require.Equal(t, "BHD", created.Record.ShiftType)

	result, err := svc.SubmitRestriction(ctx, &SubmitRestrictionInput{
		IsNew:            "no",
		ExistingRecordID: created.Record.ID,
		ShiftPattern:     "NA-9999", // must be ignored
		Status:           models.StatusApproved,
	})
	require.NoError(t, err)

	assert.False(t, result.Created)
	assert.Equal(t, "BHD", result.Record.ShiftType)
	assert.Equal(t, "DB3-night", result.Record.ShiftPattern)
	assert.Equal(t, models.StatusApproved, result.Record.Status)

	stored, err := store.GetByID(ctx, created.Record.ID)
	require.NoError(t, err)
	assert.Equal(t, "BHD", stored.ShiftType)
}

func TestSubmitRestrictionUpdateRequiresExistingID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew: "no",
	})
	assert.ErrorIs(t, err, domain.ErrMissingExistingID)
}

func TestSubmitRestrictionUpdateUnknownID(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew:            "no",
		ExistingRecordID: 9999,
	})
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestSubmitRestrictionRejectsInvalidIsNew(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew:          "maybe",
		ClaimNumber:    "CLM-400",
		AssociateLogin: "jdoe",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitRestrictionRejectsBadDate(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew:          "yes",
		ClaimNumber:    "CLM-401",
		AssociateLogin: "jdoe",
		StartDate:      "06/01/2025",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSubmitRestrictionNotificationFailureDoesNotFail(t *testing.T) {
	svc, _, notifier := newTestService()
	notifier.err = errors.New("webhook down")

	result, err := svc.SubmitRestriction(context.Background(), &SubmitRestrictionInput{
		IsNew:          "yes",
		ClaimNumber:    "CLM-500",
		AssociateLogin: "jdoe",
		ShiftPattern:   "DA1",
	})
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Len(t, notifier.notices, 1)
}

func TestSubmitRestrictionNoticeCarriesOccupancy(t *testing.T) {
	svc, _, notifier := newTestService()
	ctx := context.Background()

	_, err := svc.SubmitRestriction(ctx, &SubmitRestrictionInput{
		IsNew:          "yes",
		ClaimNumber:    "CLM-600",
		AssociateLogin: "jdoe",
		ShiftPattern:   "DA1",
		IsSeated:       true,
		Status:         models.StatusApproved,
	})
	require.NoError(t, err)

	require.Len(t, notifier.notices, 1)
	notice := notifier.notices[0]
	assert.Equal(t, "FHD", notice.Bucket)
	assert.Equal(t, int64(1), notice.BucketSeated)
	assert.Equal(t, int64(1), notice.TotalSeated)
}

// ============================================================
// Record operations
// ============================================================

func TestPatchRecord(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	rec := &models.Accommodation{ClaimNumber: "CLM-700", AssociateLogin: "jdoe", Status: models.StatusPending}
	require.NoError(t, store.Create(ctx, rec))

	role := "Seated PA role"
	seated := true
	status := models.StatusApproved
	updated, err := svc.Patch(ctx, rec.ID, &UpdateRecordInput{
		AccommodationRole: &role,
		IsSeated:          &seated,
		Status:            &status,
	})
	require.NoError(t, err)

	assert.Equal(t, role, updated.AccommodationRole)
	assert.True(t, updated.IsSeated)
	assert.Equal(t, models.StatusApproved, updated.Status)
}

func TestPatchRecordRejectsEmptyBody(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	rec := &models.Accommodation{ClaimNumber: "CLM-701", AssociateLogin: "jdoe"}
	require.NoError(t, store.Create(ctx, rec))

	_, err := svc.Patch(ctx, rec.ID, &UpdateRecordInput{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPatchRecordNotFound(t *testing.T) {
	svc, _, _ := newTestService()

	status := models.StatusApproved
	_, err := svc.Patch(context.Background(), 42, &UpdateRecordInput{Status: &status})
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)
}

func TestDeleteRecord(t *testing.T) {
	svc, store, _ := newTestService()
	ctx := context.Background()

	rec := &models.Accommodation{ClaimNumber: "CLM-702", AssociateLogin: "jdoe"}
	require.NoError(t, store.Create(ctx, rec))

	require.NoError(t, svc.Delete(ctx, rec.ID))
	_, err := store.GetByID(ctx, rec.ID)
	assert.ErrorIs(t, err, domain.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, rec.ID), domain.ErrRecordNotFound)
}

// ============================================================
// Inbound webhook upsert
// ============================================================

func TestUpsertFromWebhookCreates(t *testing.T) {
	svc, _, _ := newTestService()

	rec, created, err := svc.UpsertFromWebhook(context.Background(), &WebhookUpsertInput{
		AssociateLogin: "ckent",
		ShiftPattern:   "RTN0600",
		IsSeated:       true,
	})
	require.NoError(t, err)

	assert.True(t, created)
	assert.Equal(t, "BHN", rec.ShiftType)
	assert.Equal(t, models.StatusPending, rec.Status)
	assert.NotEmpty(t, rec.ClaimNumber, "a claim number must be synthesized")
}

func TestUpsertFromWebhookUpdatesExisting(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, created, err := svc.UpsertFromWebhook(ctx, &WebhookUpsertInput{
		AssociateLogin: "ckent",
		ShiftPattern:   "DA1",
	})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.UpsertFromWebhook(ctx, &WebhookUpsertInput{
		AssociateLogin: "ckent",
		ShiftPattern:   "NB2200", // ignored: shift fixed at creation
		Status:         models.StatusApproved,
	})
	require.NoError(t, err)

	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "FHD", second.ShiftType)
	assert.Equal(t, models.StatusApproved, second.Status)
}

func TestUpsertFromWebhookRequiresLogin(t *testing.T) {
	svc, _, _ := newTestService()

	_, _, err := svc.UpsertFromWebhook(context.Background(), &WebhookUpsertInput{})
	assert.ErrorIs(t, err, domain.ErrMissingAssociateLogin)
}

// ============================================================
// Expiry sweep (store contract used by the cron service)
// ============================================================

func TestExpireOutdated(t *testing.T) {
	store := newMockStore()
	ctx := context.Background()

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	past := today.AddDate(0, 0, -1)
	future := today.AddDate(0, 1, 0)
	require.NoError(t, store.Create(ctx, &models.Accommodation{ClaimNumber: "C1", AssociateLogin: "a", Status: models.StatusApproved, EndDate: &past}))
	require.NoError(t, store.Create(ctx, &models.Accommodation{ClaimNumber: "C2", AssociateLogin: "b", Status: models.StatusApproved, EndDate: &future}))
	require.NoError(t, store.Create(ctx, &models.Accommodation{ClaimNumber: "C3", AssociateLogin: "c", Status: models.StatusPendingUpdate, EndDate: &past}))
	require.NoError(t, store.Create(ctx, &models.Accommodation{ClaimNumber: "C4", AssociateLogin: "d", Status: models.StatusApproved, EndDate: &today}))

	n, err := store.ExpireOutdated(ctx, now, models.StatusPendingUpdate)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "only the expired, unmarked record transitions")

	rec, err := store.GetByClaimNumber(ctx, "C1")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPendingUpdate, rec.Status)

	// Valid through the end date: ending today is not yet expired
	rec, err = store.GetByClaimNumber(ctx, "C4")
	require.NoError(t, err)
	assert.Equal(t, models.StatusApproved, rec.Status)
}
