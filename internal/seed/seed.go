package seed

import (
	"log"

	"gorm.io/gorm"
	"yourtour/internal/models/db_models"
)

// Run migrates the schema and seeds the read-only reference data. Seeding is
// idempotent: rows are keyed on their natural unique columns.
func Run(db *gorm.DB) error {
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Trip{},
		&db_models.Location{},
		&db_models.History{},
		&db_models.Badge{},
		&db_models.UserBadge{},
		&db_models.Gem{},
		&db_models.UserGem{},
		&db_models.Interest{},
		&db_models.LocationEmbedding{},
	); err != nil {
		return err
	}

	for _, badge := range badgeCatalog {
		if err := db.Where("name = ?", badge.Name).
			FirstOrCreate(&db_models.Badge{}, badge).Error; err != nil {
			return err
		}
	}

	for _, gem := range gemCatalog {
		if err := db.Where("city = ? AND state = ?", gem.City, gem.State).
			FirstOrCreate(&db_models.Gem{}, gem).Error; err != nil {
			return err
		}
	}

	for _, name := range interestCatalog {
		if err := db.Where("name = ?", name).
			FirstOrCreate(&db_models.Interest{}, db_models.Interest{Name: name}).Error; err != nil {
			return err
		}
	}

	log.Println("Reference data seeded")
	return nil
}
