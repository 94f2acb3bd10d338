package infra

import (
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"teampulse/internal/models/db_models"
	"teampulse/pkg/logger"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		logger.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.AutoMigrate(
		&db_models.User{},
		&db_models.Feedback{},
		&db_models.FeedbackRequest{},
		&db_models.FeedbackComment{},
	); err != nil {
		logger.Fatalf("Error migrating schema: %v", err)
	}

	return db
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		logger.Errorf("Error getting database instance: %v", err)
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Errorf("Error closing database connection: %v", err)
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		logger.Errorf("Error starting transaction: %v", tx.Error)
	}
	return tx
}

// ReleaseTransaction commits when err is nil, rolls back otherwise.
func ReleaseTransaction(tx *gorm.DB, err error) {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			logger.Errorf("Error rolling back transaction: %v", rollbackErr)
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		logger.Errorf("Error committing transaction: %v", commitErr)
	}
}
