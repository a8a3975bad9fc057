package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"shop_backend/config"
)

// Connect opens the database from the configured DSN. TranslateError is
// on so driver constraint violations surface as gorm sentinel errors
// (gorm.ErrDuplicatedKey and friends).
func Connect(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}
	return db, nil
}
