package connect

import (
	"fmt"

	"github.com/joshua-takyi/eventhub/internal/models"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema. Parents are migrated before the
// tables that reference them.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Country{},
		&models.City{},
		&models.Venue{},
		&models.Category{},
		&models.User{},
		&models.Event{},
		&models.Review{},
		&models.Favourite{},
		&models.Interested{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return EnsureIndexes(db)
}

// EnsureIndexes adds expression and multi-column indexes that struct tags
// cannot describe. City names are unique regardless of case.
func EnsureIndexes(db *gorm.DB) error {
	stmts := []string{
		`DROP INDEX IF EXISTS idx_cities_name_lower`,
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_cities_name_ci ON cities (LOWER(name))`,
		`CREATE INDEX IF NOT EXISTS idx_events_status_date ON events (status, date)`,
		`CREATE INDEX IF NOT EXISTS idx_users_full_name ON users (first_name, last_name)`,
	}
	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("ensure index: %w", err)
		}
	}
	return nil
}
