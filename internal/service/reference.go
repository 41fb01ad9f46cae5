package service

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository"
)

var ErrReferenceNameExists = repository.ErrReferenceNameExists

type ReferenceRepository interface {
	CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error)
	FindAllGrades(ctx context.Context) ([]domain.Grade, error)
	CreateChurch(ctx context.Context, church domain.Church) (domain.Church, error)
	FindAllChurches(ctx context.Context) ([]domain.Church, error)
	CreateAttendanceType(ctx context.Context, attendanceType domain.AttendanceType) (domain.AttendanceType, error)
	FindAllAttendanceTypes(ctx context.Context) ([]domain.AttendanceType, error)
	CreateSession(ctx context.Context, session domain.Session) (domain.Session, error)
	FindAllSessions(ctx context.Context) ([]domain.Session, error)
	CreatePickupPerson(ctx context.Context, person domain.PickupPerson) (domain.PickupPerson, error)
	FindAllPickupPersons(ctx context.Context) ([]domain.PickupPerson, error)
	CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error)
	FindAllParents(ctx context.Context) ([]domain.Parent, error)
}

// ReferenceService fronts the small lookup tables used by registration:
// grades, churches, sessions, attendance types, pickup persons and parents.
type ReferenceService struct {
	repo ReferenceRepository
}

func NewReferenceService(repo ReferenceRepository) *ReferenceService {
	return &ReferenceService{
		repo: repo,
	}
}

func (s *ReferenceService) CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	created, err := s.repo.CreateGrade(ctx, grade)
	if err != nil {
		return domain.Grade{}, fmt.Errorf("s.repo.CreateGrade -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	grades, err := s.repo.FindAllGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllGrades -> %w", err)
	}

	return grades, nil
}

func (s *ReferenceService) CreateChurch(ctx context.Context, church domain.Church) (domain.Church, error) {
	created, err := s.repo.CreateChurch(ctx, church)
	if err != nil {
		return domain.Church{}, fmt.Errorf("s.repo.CreateChurch -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListChurches(ctx context.Context) ([]domain.Church, error) {
	churches, err := s.repo.FindAllChurches(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllChurches -> %w", err)
	}

	return churches, nil
}

func (s *ReferenceService) CreateAttendanceType(ctx context.Context, attendanceType domain.AttendanceType) (domain.AttendanceType, error) {
	created, err := s.repo.CreateAttendanceType(ctx, attendanceType)
	if err != nil {
		return domain.AttendanceType{}, fmt.Errorf("s.repo.CreateAttendanceType -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListAttendanceTypes(ctx context.Context) ([]domain.AttendanceType, error) {
	attendanceTypes, err := s.repo.FindAllAttendanceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllAttendanceTypes -> %w", err)
	}

	return attendanceTypes, nil
}

func (s *ReferenceService) CreateSession(ctx context.Context, session domain.Session) (domain.Session, error) {
	created, err := s.repo.CreateSession(ctx, session)
	if err != nil {
		return domain.Session{}, fmt.Errorf("s.repo.CreateSession -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListSessions(ctx context.Context) ([]domain.Session, error) {
	sessions, err := s.repo.FindAllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllSessions -> %w", err)
	}

	return sessions, nil
}

func (s *ReferenceService) CreatePickupPerson(ctx context.Context, person domain.PickupPerson) (domain.PickupPerson, error) {
	created, err := s.repo.CreatePickupPerson(ctx, person)
	if err != nil {
		return domain.PickupPerson{}, fmt.Errorf("s.repo.CreatePickupPerson -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListPickupPersons(ctx context.Context) ([]domain.PickupPerson, error) {
	persons, err := s.repo.FindAllPickupPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllPickupPersons -> %w", err)
	}

	return persons, nil
}

func (s *ReferenceService) CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error) {
	created, err := s.repo.CreateParent(ctx, parent)
	if err != nil {
		return domain.Parent{}, fmt.Errorf("s.repo.CreateParent -> %w", err)
	}

	return created, nil
}

func (s *ReferenceService) ListParents(ctx context.Context) ([]domain.Parent, error) {
	parents, err := s.repo.FindAllParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAllParents -> %w", err)
	}

	return parents, nil
}
