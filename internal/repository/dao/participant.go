package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrParticipantNotFound = errors.New("participant not found")

type Participant struct {
	ID uint `gorm:"primaryKey"`

	FirstName   string `gorm:"not null"`
	LastName    string `gorm:"not null"`
	Gender      string `gorm:"not null"`
	Age         int    `gorm:"not null"`
	DateOfBirth time.Time
	Grade       string `gorm:"not null;index"`
	MedicalInfo string

	ParentName         string `gorm:"not null"`
	PrimaryContactNo   string `gorm:"not null"`
	AlternateContactNo string `gorm:"not null"`
	WhatsAppNo         string
	Email              string
	Church             string `gorm:"not null"`

	PickupPersonName      string
	PickupPersonContactNo string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ParticipantDAO struct {
	db *gorm.DB
}

func NewParticipantDAO(db *gorm.DB) *ParticipantDAO {
	return &ParticipantDAO{
		db: db,
	}
}

func (d *ParticipantDAO) Insert(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Create(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}

	return participant, nil
}

func (d *ParticipantDAO) FindByID(ctx context.Context, id uint) (Participant, error) {
	var participant Participant

	result := d.db.WithContext(ctx).First(&participant, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Participant{}, ErrParticipantNotFound
		}

		return Participant{}, result.Error
	}

	return participant, nil
}

// FindAll lists participants newest first, optionally filtered by exact grade
// and a case-insensitive last name match.
func (d *ParticipantDAO) FindAll(ctx context.Context, grade, lastName string) ([]Participant, error) {
	var participants []Participant

	query := d.db.WithContext(ctx).Order("id DESC")
	if grade != "" {
		query = query.Where("grade = ?", grade)
	}
	if lastName != "" {
		query = query.Where("last_name ILIKE ?", "%"+lastName+"%")
	}

	result := query.Find(&participants)
	if result.Error != nil {
		return nil, result.Error
	}

	return participants, nil
}

func (d *ParticipantDAO) Update(ctx context.Context, participant Participant) (Participant, error) {
	result := d.db.WithContext(ctx).Model(&Participant{ID: participant.ID}).Updates(&participant)
	if result.Error != nil {
		return Participant{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Participant{}, ErrParticipantNotFound
	}

	return d.FindByID(ctx, participant.ID)
}
