package database

import (
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/skillconnect/skillconnect-backend/internal/models"
)

// Connect opens the Postgres connection and runs schema migrations.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	slog.Info("database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the tables. Shared with the test setup, which runs the
// same migrations against sqlite.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Skill{},
		&models.RecruiterProfile{},
		&models.FreelancerProfile{},
		&models.Job{},
		&models.Application{},
		&models.Review{},
		&models.Notification{},
		&models.Testimonial{},
	)
}
