package services

import (
	"context"
	"log"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"

	"github.com/robfig/cron/v3"
)

// CronService runs the scheduled background work: a daily sweep that marks
// accommodations whose end date has passed. The sweep runs on the cron
// goroutine and never blocks request handling.
type CronService struct {
	repo      AccommodationStore
	occupancy *OccupancyService
	schedule  string
	cron      *cron.Cron
}

// NewCronService creates a new cron service. schedule is a standard cron
// expression for the daily expiry sweep (e.g. "30 8 * * *").
func NewCronService(repo AccommodationStore, occupancy *OccupancyService, schedule string) *CronService {
	return &CronService{
		repo:      repo,
		occupancy: occupancy,
		schedule:  schedule,
	}
}

// Start schedules the expiry sweep and launches the cron runner
func (s *CronService) Start() {
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(s.schedule, s.sweepExpired); err != nil {
		log.Printf("❌ Failed to schedule expiry sweep (%q): %v", s.schedule, err)
		return
	}
	s.cron.Start()
	log.Printf("🚀 CronService started [expiry sweep: %s]", s.schedule)
}

// Stop stops the cron runner, waiting for a running sweep to finish
func (s *CronService) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	log.Println("🛑 CronService stopped")
}

// sweepExpired transitions all records whose end date has passed into the
// expiry status, then drops the cached seat counts if anything changed.
func (s *CronService) sweepExpired() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	n, err := s.repo.ExpireOutdated(ctx, time.Now(), models.StatusPendingUpdate)
	if err != nil {
		log.Printf("❌ Expiry sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("⏳ Expiry sweep marked %d record(s) as %q", n, models.StatusPendingUpdate)
		if s.occupancy != nil {
			s.occupancy.Invalidate(ctx)
		}
	}
}
