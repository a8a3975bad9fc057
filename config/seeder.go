package config

import (
	"gorm.io/gorm"

	"shop_backend/models"
	"shop_backend/pkg/logger"
)

func SeedCategories(db *gorm.DB) {
	logger.Info().Msg("🌱 Seeding categories...")

	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Clothing & Apparel", Slug: "clothing-apparel"},
		{Name: "Books & Media", Slug: "books-media"},
		{Name: "Home & Garden", Slug: "home-garden"},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&category).Error; err != nil {
					logger.Error().Err(err).Msgf("Failed to seed category %s", category.Name)
				} else {
					logger.Info().Msgf("Category seeded: %s (ID: %d)", category.Name, category.ID)
				}
			}
		} else {
			logger.Info().Msgf("Category already exists: %s", category.Name)
		}
	}

	logger.Info().Msg("✅ Seeding complete.")
}

func SeedProducts(db *gorm.DB) {
	logger.Info().Msg("🌱 Seeding products...")

	var electronics models.Category
	if err := db.Where("slug = ?", "electronics").First(&electronics).Error; err != nil {
		logger.Error().Err(err).Msg("Cannot seed products without the electronics category")
		return
	}

	products := []models.Product{
		{
			Name:        "Wireless Headphones",
			Description: "Over-ear wireless headphones with noise cancellation",
			Price:       129.99,
			CategoryID:  electronics.ID,
			ImageURL:    "/static/images/wireless-headphones.jpg",
		},
		{
			Name:        "Mechanical Keyboard",
			Description: "Compact 75% mechanical keyboard with hot-swappable switches",
			Price:       89.50,
			CategoryID:  electronics.ID,
			ImageURL:    "/static/images/mechanical-keyboard.jpg",
		},
	}

	for _, product := range products {
		var existing models.Product
		if err := db.Where("name = ?", product.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&product).Error; err != nil {
					logger.Error().Err(err).Msgf("Failed to seed product %s", product.Name)
				} else {
					logger.Info().Msgf("Product seeded: %s (ID: %d)", product.Name, product.ID)
				}
			}
		} else {
			logger.Info().Msgf("Product already exists: %s", product.Name)
		}
	}

	logger.Info().Msg("✅ Seeding complete.")
}
