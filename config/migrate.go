package config

import (
	"gorm.io/gorm"

	"shop_backend/models"
	"shop_backend/pkg/logger"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.Category{},
		&models.Product{},
	)

	if err != nil {
		logger.Error().Err(err).Msg("Failed to migrate database schema")
		return err
	}

	logger.Info().Msg("Database migrations completed succesfully...")

	// Ensure categories are seeded even on normal migration
	SeedCategories(db)
	SeedProducts(db)

	return nil
}
