package repository

import "gorm.io/gorm"

// Migrate creates all tables this service owns. Learner and mentor
// signups share a row shape but get separate tables, each with its own
// unique email index.
func Migrate(db *gorm.DB) error {
	if err := db.Table("learners").AutoMigrate(&signupRow{}); err != nil {
		return err
	}
	if err := db.Table("mentors").AutoMigrate(&signupRow{}); err != nil {
		return err
	}
	return db.AutoMigrate(&inquiryRow{}, &settingRow{})
}
