package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pasar/internal/models"
)

// Connect opens the shared GORM connection pool. The pool lives for the
// whole process; there is no teardown beyond process exit.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the full marketplace schema: tables, enum
// checks, foreign keys with cascade delete, and indexes on every foreign-key
// column that is queried by parent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Review{},
		&models.Message{},
		&models.CartItem{},
		&models.Notification{},
		&models.ProductModificationRequest{},
		&models.Session{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
