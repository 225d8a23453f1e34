package db

import (
	"gorm.io/gorm"

	"github.com/yungbote/panchayat-backend/internal/domain/village"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(village.Models()...)
}
