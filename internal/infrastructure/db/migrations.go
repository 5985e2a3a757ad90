package db

import (
	"github.com/taskpilot/backend/internal/domain"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Task{},
	)
}
