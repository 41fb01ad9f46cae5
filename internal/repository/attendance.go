package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

var (
	ErrAlreadyCheckedIn = dao.ErrAlreadyCheckedIn
	ErrAlreadyPickedUp  = dao.ErrAlreadyPickedUp
	ErrCheckInNotFound  = dao.ErrCheckInNotFound
	ErrPickupNotFound   = dao.ErrPickupNotFound
)

type AttendanceDAO interface {
	InsertCheckIn(ctx context.Context, attendance dao.ParticipantAttendance, code dao.PickupCode) (dao.ParticipantAttendance, error)
	InsertPickup(ctx context.Context, pickup dao.ParticipantPickup) (dao.ParticipantPickup, error)
	FindCheckIn(ctx context.Context, participantID uint, eventDay string) (dao.ParticipantAttendance, error)
	FindPickupCode(ctx context.Context, participantID uint, eventDay string) (dao.PickupCode, error)
	FindPickup(ctx context.Context, participantID uint, eventDay string) (dao.ParticipantPickup, error)
}

type AttendanceRepository struct {
	dao AttendanceDAO
}

func NewAttendanceRepository(dao AttendanceDAO) *AttendanceRepository {
	return &AttendanceRepository{
		dao: dao,
	}
}

// RecordCheckIn is the sole write path for attendance: an insert-if-absent of
// the attendance row plus its pickup code. Returns ErrAlreadyCheckedIn when a
// record for (participant, day) already exists.
func (r *AttendanceRepository) RecordCheckIn(ctx context.Context, participantID uint, day domain.EventDay, at time.Time, code int) (domain.AttendanceRecord, error) {
	created, err := r.dao.InsertCheckIn(ctx,
		dao.ParticipantAttendance{
			ParticipantID: participantID,
			EventDay:      string(day),
			CheckedInAt:   at,
		},
		dao.PickupCode{
			Code: code,
		},
	)
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("r.dao.InsertCheckIn -> %w", err)
	}

	return r.attendanceDAOToDomain(created), nil
}

// RecordPickup is the sole write path for pickups. Returns ErrAlreadyPickedUp
// when a record for (participant, day) already exists.
func (r *AttendanceRepository) RecordPickup(ctx context.Context, participantID uint, day domain.EventDay, at time.Time, pickupPerson string) (domain.PickupRecord, error) {
	created, err := r.dao.InsertPickup(ctx, dao.ParticipantPickup{
		ParticipantID: participantID,
		EventDay:      string(day),
		PickedUpAt:    at,
		PickupPerson:  pickupPerson,
	})
	if err != nil {
		return domain.PickupRecord{}, fmt.Errorf("r.dao.InsertPickup -> %w", err)
	}

	return r.pickupDAOToDomain(created), nil
}

func (r *AttendanceRepository) FindCheckIn(ctx context.Context, participantID uint, day domain.EventDay) (domain.AttendanceRecord, error) {
	found, err := r.dao.FindCheckIn(ctx, participantID, string(day))
	if err != nil {
		return domain.AttendanceRecord{}, fmt.Errorf("r.dao.FindCheckIn -> %w", err)
	}

	return r.attendanceDAOToDomain(found), nil
}

func (r *AttendanceRepository) FindPickupCode(ctx context.Context, participantID uint, day domain.EventDay) (domain.PickupCode, error) {
	found, err := r.dao.FindPickupCode(ctx, participantID, string(day))
	if err != nil {
		return domain.PickupCode{}, fmt.Errorf("r.dao.FindPickupCode -> %w", err)
	}

	return domain.PickupCode{
		ID:            found.ID,
		ParticipantID: found.ParticipantID,
		EventDay:      domain.EventDay(found.EventDay),
		Code:          found.Code,
	}, nil
}

func (r *AttendanceRepository) FindPickup(ctx context.Context, participantID uint, day domain.EventDay) (domain.PickupRecord, error) {
	found, err := r.dao.FindPickup(ctx, participantID, string(day))
	if err != nil {
		return domain.PickupRecord{}, fmt.Errorf("r.dao.FindPickup -> %w", err)
	}

	return r.pickupDAOToDomain(found), nil
}

func (r *AttendanceRepository) attendanceDAOToDomain(a dao.ParticipantAttendance) domain.AttendanceRecord {
	return domain.AttendanceRecord{
		ID:            a.ID,
		ParticipantID: a.ParticipantID,
		EventDay:      domain.EventDay(a.EventDay),
		CheckedInAt:   a.CheckedInAt,
	}
}

func (r *AttendanceRepository) pickupDAOToDomain(p dao.ParticipantPickup) domain.PickupRecord {
	return domain.PickupRecord{
		ID:            p.ID,
		ParticipantID: p.ParticipantID,
		EventDay:      domain.EventDay(p.EventDay),
		PickedUpAt:    p.PickedUpAt,
		PickupPerson:  p.PickupPerson,
	}
}
