package database

import (
	"health-backend/internal/config"
	"health-backend/internal/identity"
	"health-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DB holds the database connection.
var DB *gorm.DB

// InitDB initializes the database connection. TranslateError is on so that
// driver-specific failures surface as gorm sentinel errors.
func InitDB(cfg *config.Config) error {
	var err error
	DB, err = gorm.Open(postgres.Open(cfg.PostgresURI), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return err
	}
	return nil
}

// Migrate creates or updates the schema for all entities.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&identity.Group{},
		&identity.Permission{},
		&models.Patient{},
		&models.Record{},
		&models.LabResults{},
		&models.PatientProfile{},
	)
}
