package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrVolunteerNotFound = errors.New("volunteer not found")

type Volunteer struct {
	ID uint `gorm:"primaryKey"`

	FirstName      string `gorm:"not null"`
	LastName       string `gorm:"not null"`
	Gender         string `gorm:"not null"`
	PreferredRole  string `gorm:"not null"`
	Church         string `gorm:"not null"`
	PreferredClass string `gorm:"not null;index"`

	ContactNo  string `gorm:"not null"`
	WhatsAppNo string
	Email      string

	PreviousVolunteer bool `gorm:"not null;default:false"`
	PreviousSite      string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type VolunteerDAO struct {
	db *gorm.DB
}

func NewVolunteerDAO(db *gorm.DB) *VolunteerDAO {
	return &VolunteerDAO{
		db: db,
	}
}

func (d *VolunteerDAO) Insert(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	result := d.db.WithContext(ctx).Create(&volunteer)
	if result.Error != nil {
		return Volunteer{}, result.Error
	}

	return volunteer, nil
}

func (d *VolunteerDAO) FindByID(ctx context.Context, id uint) (Volunteer, error) {
	var volunteer Volunteer

	result := d.db.WithContext(ctx).First(&volunteer, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Volunteer{}, ErrVolunteerNotFound
		}

		return Volunteer{}, result.Error
	}

	return volunteer, nil
}

func (d *VolunteerDAO) FindAll(ctx context.Context, preferredClass, lastName string) ([]Volunteer, error) {
	var volunteers []Volunteer

	query := d.db.WithContext(ctx).Order("id DESC")
	if preferredClass != "" {
		query = query.Where("preferred_class = ?", preferredClass)
	}
	if lastName != "" {
		query = query.Where("last_name ILIKE ?", "%"+lastName+"%")
	}

	result := query.Find(&volunteers)
	if result.Error != nil {
		return nil, result.Error
	}

	return volunteers, nil
}

func (d *VolunteerDAO) Update(ctx context.Context, volunteer Volunteer) (Volunteer, error) {
	result := d.db.WithContext(ctx).Model(&Volunteer{ID: volunteer.ID}).Updates(&volunteer)
	if result.Error != nil {
		return Volunteer{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Volunteer{}, ErrVolunteerNotFound
	}

	return d.FindByID(ctx, volunteer.ID)
}
