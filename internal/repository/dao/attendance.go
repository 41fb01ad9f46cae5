package dao

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrAlreadyCheckedIn = errors.New("participant already checked in for this event day")
	ErrAlreadyPickedUp  = errors.New("participant already picked up for this event day")
	ErrCheckInNotFound  = errors.New("check-in not found")
	ErrPickupNotFound   = errors.New("pickup not found")
)

// ParticipantAttendance holds one check-in per participant per event day.
// The composite unique index is what makes concurrent duplicate admits safe:
// the insert is the only write path and the second insert fails.
type ParticipantAttendance struct {
	ID            uint      `gorm:"primaryKey"`
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_attendance_participant_day"`
	EventDay      string    `gorm:"not null;uniqueIndex:idx_attendance_participant_day"`
	CheckedInAt   time.Time `gorm:"not null"`
}

type PickupCode struct {
	ID            uint   `gorm:"primaryKey"`
	ParticipantID uint   `gorm:"not null;uniqueIndex:idx_pickup_code_participant_day"`
	EventDay      string `gorm:"not null;uniqueIndex:idx_pickup_code_participant_day"`
	Code          int    `gorm:"not null"`
}

type ParticipantPickup struct {
	ID            uint      `gorm:"primaryKey"`
	ParticipantID uint      `gorm:"not null;uniqueIndex:idx_pickup_participant_day"`
	EventDay      string    `gorm:"not null;uniqueIndex:idx_pickup_participant_day"`
	PickedUpAt    time.Time `gorm:"not null"`
	PickupPerson  string    `gorm:"not null"`
}

type AttendanceDAO struct {
	db *gorm.DB
}

func NewAttendanceDAO(db *gorm.DB) *AttendanceDAO {
	return &AttendanceDAO{
		db: db,
	}
}

// InsertCheckIn writes the attendance row and its pickup code in one
// transaction. A unique violation on either row means the participant was
// already admitted today.
func (d *AttendanceDAO) InsertCheckIn(ctx context.Context, attendance ParticipantAttendance, code PickupCode) (ParticipantAttendance, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&attendance).Error; err != nil {
			return err
		}

		code.ParticipantID = attendance.ParticipantID
		code.EventDay = attendance.EventDay
		if err := tx.Create(&code).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		if isUniqueViolation(err) {
			return ParticipantAttendance{}, ErrAlreadyCheckedIn
		}

		return ParticipantAttendance{}, err
	}

	return attendance, nil
}

func (d *AttendanceDAO) InsertPickup(ctx context.Context, pickup ParticipantPickup) (ParticipantPickup, error) {
	result := d.db.WithContext(ctx).Create(&pickup)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return ParticipantPickup{}, ErrAlreadyPickedUp
		}

		return ParticipantPickup{}, result.Error
	}

	return pickup, nil
}

func (d *AttendanceDAO) FindCheckIn(ctx context.Context, participantID uint, eventDay string) (ParticipantAttendance, error) {
	var attendance ParticipantAttendance

	result := d.db.WithContext(ctx).
		First(&attendance, "participant_id = ? AND event_day = ?", participantID, eventDay)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ParticipantAttendance{}, ErrCheckInNotFound
		}

		return ParticipantAttendance{}, result.Error
	}

	return attendance, nil
}

func (d *AttendanceDAO) FindPickupCode(ctx context.Context, participantID uint, eventDay string) (PickupCode, error) {
	var code PickupCode

	result := d.db.WithContext(ctx).
		First(&code, "participant_id = ? AND event_day = ?", participantID, eventDay)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return PickupCode{}, ErrCheckInNotFound
		}

		return PickupCode{}, result.Error
	}

	return code, nil
}

func (d *AttendanceDAO) FindPickup(ctx context.Context, participantID uint, eventDay string) (ParticipantPickup, error) {
	var pickup ParticipantPickup

	result := d.db.WithContext(ctx).
		First(&pickup, "participant_id = ? AND event_day = ?", participantID, eventDay)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ParticipantPickup{}, ErrPickupNotFound
		}

		return ParticipantPickup{}, result.Error
	}

	return pickup, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
