package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository"
)

var (
	ErrNotEventDate        = errors.New("today is not a configured event date")
	ErrMissingPickupPerson = errors.New("pickup person name is required")
	ErrParticipantNotFound = repository.ErrParticipantNotFound
)

type AttendanceRepository interface {
	RecordCheckIn(ctx context.Context, participantID uint, day domain.EventDay, at time.Time, code int) (domain.AttendanceRecord, error)
	RecordPickup(ctx context.Context, participantID uint, day domain.EventDay, at time.Time, pickupPerson string) (domain.PickupRecord, error)
	FindCheckIn(ctx context.Context, participantID uint, day domain.EventDay) (domain.AttendanceRecord, error)
	FindPickupCode(ctx context.Context, participantID uint, day domain.EventDay) (domain.PickupCode, error)
	FindPickup(ctx context.Context, participantID uint, day domain.EventDay) (domain.PickupRecord, error)
}

type AttendanceParticipantRepository interface {
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
}

type CodeIssuer interface {
	Issue() int
}

// AttendanceNotifier sends the guardian-facing SMS notifications. Delivery is
// best effort; implementations must never fail the calling workflow.
type AttendanceNotifier interface {
	NotifyCheckIn(participant domain.Participant, day domain.EventDay, code int)
	NotifyPickup(participant domain.Participant, day domain.EventDay, pickupPerson string)
}

type AttendanceService struct {
	calendar        *domain.Calendar
	participantRepo AttendanceParticipantRepository
	attendanceRepo  AttendanceRepository
	codes           CodeIssuer
	notifier        AttendanceNotifier
	now             func() time.Time
}

func NewAttendanceService(
	calendar *domain.Calendar,
	participantRepo AttendanceParticipantRepository,
	attendanceRepo AttendanceRepository,
	codes CodeIssuer,
	notifier AttendanceNotifier,
	now func() time.Time,
) *AttendanceService {
	if now == nil {
		now = time.Now
	}

	return &AttendanceService{
		calendar:        calendar,
		participantRepo: participantRepo,
		attendanceRepo:  attendanceRepo,
		codes:           codes,
		notifier:        notifier,
		now:             now,
	}
}

// Admit records the participant's attendance for today and issues a pickup
// code. Re-admitting on the same day returns AlreadyRecorded without mutating
// state or sending a second SMS. The duplicate check is enforced by the
// storage layer's unique constraint, so concurrent admits cannot both succeed.
func (s *AttendanceService) Admit(ctx context.Context, participantID uint) (domain.CheckInResult, error) {
	day, ok := s.calendar.ResolveDate(s.now())
	if !ok {
		return domain.CheckInResult{}, ErrNotEventDate
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.CheckInResult{}, ErrParticipantNotFound
		}

		return domain.CheckInResult{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	code := s.codes.Issue()

	record, err := s.attendanceRepo.RecordCheckIn(ctx, participant.ID, day, s.now(), code)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyCheckedIn) {
			return domain.CheckInResult{
				EventDay:        day,
				AlreadyRecorded: true,
			}, nil
		}

		return domain.CheckInResult{}, fmt.Errorf("s.attendanceRepo.RecordCheckIn -> %w", err)
	}

	s.notifier.NotifyCheckIn(participant, day, code)

	return domain.CheckInResult{
		EventDay:    day,
		CheckedInAt: record.CheckedInAt,
		PickupCode:  code,
	}, nil
}

// Pickup records that the named person collected the participant today.
// Same-day repeats return AlreadyRecorded without mutation or notification.
func (s *AttendanceService) Pickup(ctx context.Context, participantID uint, pickupPerson string) (domain.PickupResult, error) {
	day, ok := s.calendar.ResolveDate(s.now())
	if !ok {
		return domain.PickupResult{}, ErrNotEventDate
	}

	pickupPerson = strings.TrimSpace(pickupPerson)
	if pickupPerson == "" {
		return domain.PickupResult{}, ErrMissingPickupPerson
	}

	participant, err := s.participantRepo.FindByID(ctx, participantID)
	if err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.PickupResult{}, ErrParticipantNotFound
		}

		return domain.PickupResult{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	record, err := s.attendanceRepo.RecordPickup(ctx, participant.ID, day, s.now(), pickupPerson)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyPickedUp) {
			return domain.PickupResult{
				EventDay:        day,
				AlreadyRecorded: true,
			}, nil
		}

		return domain.PickupResult{}, fmt.Errorf("s.attendanceRepo.RecordPickup -> %w", err)
	}

	s.notifier.NotifyPickup(participant, day, pickupPerson)

	return domain.PickupResult{
		EventDay:     day,
		PickedUpAt:   record.PickedUpAt,
		PickupPerson: record.PickupPerson,
	}, nil
}

// Status reports the participant's state for today, including the issued
// pickup code so the front desk can re-check it when the guardian lost the
// SMS.
func (s *AttendanceService) Status(ctx context.Context, participantID uint) (domain.AttendanceStatus, error) {
	day, ok := s.calendar.ResolveDate(s.now())
	if !ok {
		return domain.AttendanceStatus{}, ErrNotEventDate
	}

	if _, err := s.participantRepo.FindByID(ctx, participantID); err != nil {
		if errors.Is(err, repository.ErrParticipantNotFound) {
			return domain.AttendanceStatus{}, ErrParticipantNotFound
		}

		return domain.AttendanceStatus{}, fmt.Errorf("s.participantRepo.FindByID -> %w", err)
	}

	status := domain.AttendanceStatus{EventDay: day}

	checkIn, err := s.attendanceRepo.FindCheckIn(ctx, participantID, day)
	switch {
	case err == nil:
		status.CheckedIn = true
		status.CheckedInAt = &checkIn.CheckedInAt
	case !errors.Is(err, repository.ErrCheckInNotFound):
		return domain.AttendanceStatus{}, fmt.Errorf("s.attendanceRepo.FindCheckIn -> %w", err)
	}

	if status.CheckedIn {
		code, err := s.attendanceRepo.FindPickupCode(ctx, participantID, day)
		if err != nil && !errors.Is(err, repository.ErrCheckInNotFound) {
			return domain.AttendanceStatus{}, fmt.Errorf("s.attendanceRepo.FindPickupCode -> %w", err)
		}
		status.PickupCode = code.Code
	}

	pickup, err := s.attendanceRepo.FindPickup(ctx, participantID, day)
	switch {
	case err == nil:
		status.PickedUp = true
		status.PickedUpAt = &pickup.PickedUpAt
		status.PickupPerson = pickup.PickupPerson
	case !errors.Is(err, repository.ErrPickupNotFound):
		return domain.AttendanceStatus{}, fmt.Errorf("s.attendanceRepo.FindPickup -> %w", err)
	}

	return status, nil
}
