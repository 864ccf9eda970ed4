package config

import (
	"log"

	"samajam-backend/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// Run executes all seeders. Development only; production data is
// managed through the admin back office.
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedOfficeBearers(); err != nil {
		log.Printf("⚠️ Office bearer seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedOfficeBearers seeds a placeholder committee for the current term
// so the frontend has something to render in development.
func (s *Seeder) seedOfficeBearers() error {
	var count int64
	if err := s.db.Model(&models.OfficeBearer{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Already seeded or managed manually
	}

	bearers := []models.OfficeBearer{
		{Name: "Sample President", Designation: "President", TermStart: "2025", TermEnd: "2028", DisplayOrder: 1},
		{Name: "Sample Secretary", Designation: "General Secretary", TermStart: "2025", TermEnd: "2028", DisplayOrder: 2},
		{Name: "Sample Treasurer", Designation: "Treasurer", TermStart: "2025", TermEnd: "2028", DisplayOrder: 3},
	}

	if err := s.db.Create(&bearers).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded %d office bearers for development", len(bearers))
	return nil
}
