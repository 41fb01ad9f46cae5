package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrReferenceNameExists = errors.New("a record with this name already exists")

type Grade struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

type Church struct {
	ID   uint   `gorm:"primaryKey"`
	Name string `gorm:"unique;not null"`
}

type AttendanceType struct {
	ID        uint      `gorm:"primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Session struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"not null"`
	Description string
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	CreatedAt   time.Time `gorm:"not null"`
	UpdatedAt   time.Time `gorm:"not null"`
}

type PickupPerson struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	ContactNo string `gorm:"not null"`
}

type Parent struct {
	ID                 uint   `gorm:"primaryKey"`
	FullName           string `gorm:"not null"`
	PrimaryContactNo   string `gorm:"not null"`
	AlternateContactNo string `gorm:"not null"`
	Email              string
}

type ReferenceDAO struct {
	db *gorm.DB
}

func NewReferenceDAO(db *gorm.DB) *ReferenceDAO {
	return &ReferenceDAO{
		db: db,
	}
}

func (d *ReferenceDAO) InsertGrade(ctx context.Context, grade Grade) (Grade, error) {
	result := d.db.WithContext(ctx).Create(&grade)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Grade{}, ErrReferenceNameExists
		}

		return Grade{}, result.Error
	}

	return grade, nil
}

func (d *ReferenceDAO) FindAllGrades(ctx context.Context) ([]Grade, error) {
	var grades []Grade

	result := d.db.WithContext(ctx).Order("id DESC").Find(&grades)
	if result.Error != nil {
		return nil, result.Error
	}

	return grades, nil
}

func (d *ReferenceDAO) InsertChurch(ctx context.Context, church Church) (Church, error) {
	result := d.db.WithContext(ctx).Create(&church)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return Church{}, ErrReferenceNameExists
		}

		return Church{}, result.Error
	}

	return church, nil
}

func (d *ReferenceDAO) FindAllChurches(ctx context.Context) ([]Church, error) {
	var churches []Church

	result := d.db.WithContext(ctx).Order("id DESC").Find(&churches)
	if result.Error != nil {
		return nil, result.Error
	}

	return churches, nil
}

func (d *ReferenceDAO) InsertAttendanceType(ctx context.Context, attendanceType AttendanceType) (AttendanceType, error) {
	result := d.db.WithContext(ctx).Create(&attendanceType)
	if result.Error != nil {
		return AttendanceType{}, result.Error
	}

	return attendanceType, nil
}

func (d *ReferenceDAO) FindAllAttendanceTypes(ctx context.Context) ([]AttendanceType, error) {
	var attendanceTypes []AttendanceType

	result := d.db.WithContext(ctx).Order("id DESC").Find(&attendanceTypes)
	if result.Error != nil {
		return nil, result.Error
	}

	return attendanceTypes, nil
}

func (d *ReferenceDAO) InsertSession(ctx context.Context, session Session) (Session, error) {
	result := d.db.WithContext(ctx).Create(&session)
	if result.Error != nil {
		return Session{}, result.Error
	}

	return session, nil
}

func (d *ReferenceDAO) FindAllSessions(ctx context.Context) ([]Session, error) {
	var sessions []Session

	result := d.db.WithContext(ctx).Order("id DESC").Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}

func (d *ReferenceDAO) InsertPickupPerson(ctx context.Context, person PickupPerson) (PickupPerson, error) {
	result := d.db.WithContext(ctx).Create(&person)
	if result.Error != nil {
		return PickupPerson{}, result.Error
	}

	return person, nil
}

func (d *ReferenceDAO) FindAllPickupPersons(ctx context.Context) ([]PickupPerson, error) {
	var persons []PickupPerson

	result := d.db.WithContext(ctx).Order("id DESC").Find(&persons)
	if result.Error != nil {
		return nil, result.Error
	}

	return persons, nil
}

func (d *ReferenceDAO) InsertParent(ctx context.Context, parent Parent) (Parent, error) {
	result := d.db.WithContext(ctx).Create(&parent)
	if result.Error != nil {
		return Parent{}, result.Error
	}

	return parent, nil
}

func (d *ReferenceDAO) FindAllParents(ctx context.Context) ([]Parent, error) {
	var parents []Parent

	result := d.db.WithContext(ctx).Order("id DESC").Find(&parents)
	if result.Error != nil {
		return nil, result.Error
	}

	return parents, nil
}
