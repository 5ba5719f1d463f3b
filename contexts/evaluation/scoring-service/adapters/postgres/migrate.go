package postgresadapter

import "gorm.io/gorm"

// AutoMigrate creates or updates the tables this context owns. The
// applicants table is owned by the admissions context and read here as a
// projection, so it is not migrated.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&criterionModel{},
		&evaluationModel{},
	)
}
