package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Grade{},
		&Church{},
		&AttendanceType{},
		&Session{},
		&PickupPerson{},
		&Parent{},
		&Participant{},
		&Volunteer{},
		&ParticipantAttendance{},
		&PickupCode{},
		&ParticipantPickup{},
	)
}
