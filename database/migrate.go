package database

import (
	"mentorlink_backend/internal/logger"
	"mentorlink_backend/internal/models"

	"gorm.io/gorm"
)

// Migrate выполняет автоматическую миграцию схемы.
// Порядок важен: profiles и matches ссылаются на users.
func Migrate(db *gorm.DB) error {
	// uuid_generate_v4 для первичных ключей BaseModel
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Profile{},
		&models.Match{},
		&models.Notification{},
	); err != nil {
		return err
	}

	logger.Info("Database migration complete")
	return nil
}
