package config

import (
	"log"
	"time"

	"bwi2-seattrack/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db   *gorm.DB
	site string
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, site string) *Seeder {
	return &Seeder{db: db, site: site}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedSampleAccommodations(); err != nil {
		log.Printf("⚠️ Sample accommodation seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedSampleAccommodations inserts a small set of accommodation records
// when the table is empty. Development/testing only: gives /seatCounts and
// the record list something to show on a fresh database.
func (s *Seeder) seedSampleAccommodations() error {
	var count int64
	s.db.Model(&models.Accommodation{}).Count(&count)
	if count > 0 {
		return nil // already populated
	}

	start := time.Now().AddDate(0, 0, -14)
	end := time.Now().AddDate(0, 2, 0)

	samples := []models.Accommodation{
		{
			ClaimNumber:       "DEMO-1001",
			AssociateLogin:    "jdoe",
			AssociateName:     "Jane Doe",
			ManagerLogin:      "msmith",
			AssociateHomePath: "Pick Tower A",
			ShiftPattern:      "DA5-1830",
			ShiftType:         "FHD",
			Site:              s.site,
			AccommodationRole: "Asset tagging",
			IsSeated:          true,
			Restrictions:      "No standing longer than 30 minutes",
			Status:            models.StatusApproved,
			StartDate:         &start,
			EndDate:           &end,
			RequestorLogin:    "msmith",
		},
		{
			ClaimNumber:       "DEMO-1002",
			AssociateLogin:    "bwayne",
			AssociateName:     "Bruce Wayne",
			ManagerLogin:      "agordon",
			AssociateHomePath: "Pack Singles",
			ShiftPattern:      "RTN0600",
			ShiftType:         "BHN",
			Site:              s.site,
			AccommodationRole: "Seated PA role",
			IsSeated:          true,
			Restrictions:      "Seated work only",
			Status:            models.StatusApproved,
			StartDate:         &start,
			EndDate:           &end,
			RequestorLogin:    "agordon",
		},
		{
			ClaimNumber:       "DEMO-1003",
			AssociateLogin:    "ckent",
			AssociateName:     "Clark Kent",
			ManagerLogin:      "pwhite",
			AssociateHomePath: "Inbound Dock",
			ShiftPattern:      "FLEXPT",
			ShiftType:         "FLEX",
			Site:              s.site,
			AccommodationRole: "Water spider",
			IsSeated:          false,
			Restrictions:      "No lifting above 15 lbs",
			Status:            models.StatusPending,
			StartDate:         &start,
			EndDate:           &end,
			RequestorLogin:    "pwhite",
		},
	}

	if err := s.db.Create(&samples).Error; err != nil {
		return err
	}

	log.Printf("🌱 Seeded %d sample accommodation records", len(samples))
	return nil
}
