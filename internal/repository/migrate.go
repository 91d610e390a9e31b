package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the persisted collections.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&roomModel{},
	)
}
