package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bwi2-seattrack/internal/core/domain"

	"github.com/redis/go-redis/v9"
)

// snapshotCacheTTL bounds how stale a cached seat-count snapshot can get
// between the write-path invalidations.
const snapshotCacheTTL = 30 * time.Second

// OccupancyService computes the seat-occupancy snapshot: a day-by-bucket
// coverage grid plus per-bucket distinct counts over all Approved + seated
// records for the site.
type OccupancyService struct {
	repo  AccommodationStore
	cache *redis.Client // nil disables caching
	site  string
}

// NewOccupancyService creates a new occupancy service. cache may be nil;
// every snapshot is then computed from the store.
func NewOccupancyService(repo AccommodationStore, cache *redis.Client, site string) *OccupancyService {
	return &OccupancyService{
		repo:  repo,
		cache: cache,
		site:  site,
	}
}

// SeatCountSnapshot is the GET /seatCounts response body
type SeatCountSnapshot struct {
	Site           string                `json:"site"`
	DayGrid        domain.DayGrid        `json:"dayGrid"`
	DistinctCounts domain.DistinctCounts `json:"distinctCounts"`
	GeneratedAt    time.Time             `json:"generated_at"`
}

// Snapshot returns the current occupancy snapshot, serving from the Redis
// cache when possible. Cache errors degrade to an uncached read.
func (s *OccupancyService) Snapshot(ctx context.Context) (*SeatCountSnapshot, error) {
	if s.cache != nil {
		if raw, err := s.cache.Get(ctx, s.cacheKey()).Bytes(); err == nil {
			var snap SeatCountSnapshot
			if err := json.Unmarshal(raw, &snap); err == nil {
				return &snap, nil
			}
		}
	}

	rows, err := s.repo.ListApprovedSeated(ctx, s.site)
	if err != nil {
		return nil, err
	}

	records := make([]domain.ShiftRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, domain.ShiftRecord{
			ShiftPattern: row.ShiftPattern,
			ShiftType:    row.ShiftType,
		})
	}

	grid, counts := domain.Aggregate(records)
	snap := &SeatCountSnapshot{
		Site:           s.site,
		DayGrid:        grid,
		DistinctCounts: counts,
		GeneratedAt:    time.Now().UTC(),
	}

	if s.cache != nil {
		if raw, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, s.cacheKey(), raw, snapshotCacheTTL).Err(); err != nil {
				log.Printf("⚠️ Seat count cache write failed: %v", err)
			}
		}
	}

	return snap, nil
}

// Invalidate drops the cached snapshot after a write
func (s *OccupancyService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, s.cacheKey()).Err(); err != nil {
		log.Printf("⚠️ Seat count cache invalidation failed: %v", err)
	}
}

func (s *OccupancyService) cacheKey() string {
	return "seatcounts:" + s.site
}
