package postgresadapter

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables this context owns.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&lotteryRecordModel{})
}
