package repository

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

var ErrReferenceNameExists = dao.ErrReferenceNameExists

type ReferenceDAO interface {
	InsertGrade(ctx context.Context, grade dao.Grade) (dao.Grade, error)
	FindAllGrades(ctx context.Context) ([]dao.Grade, error)
	InsertChurch(ctx context.Context, church dao.Church) (dao.Church, error)
	FindAllChurches(ctx context.Context) ([]dao.Church, error)
	InsertAttendanceType(ctx context.Context, attendanceType dao.AttendanceType) (dao.AttendanceType, error)
	FindAllAttendanceTypes(ctx context.Context) ([]dao.AttendanceType, error)
	InsertSession(ctx context.Context, session dao.Session) (dao.Session, error)
	FindAllSessions(ctx context.Context) ([]dao.Session, error)
	InsertPickupPerson(ctx context.Context, person dao.PickupPerson) (dao.PickupPerson, error)
	FindAllPickupPersons(ctx context.Context) ([]dao.PickupPerson, error)
	InsertParent(ctx context.Context, parent dao.Parent) (dao.Parent, error)
	FindAllParents(ctx context.Context) ([]dao.Parent, error)
}

type ReferenceRepository struct {
	dao ReferenceDAO
}

func NewReferenceRepository(dao ReferenceDAO) *ReferenceRepository {
	return &ReferenceRepository{
		dao: dao,
	}
}

func (r *ReferenceRepository) CreateGrade(ctx context.Context, grade domain.Grade) (domain.Grade, error) {
	created, err := r.dao.InsertGrade(ctx, dao.Grade{Name: grade.Name})
	if err != nil {
		return domain.Grade{}, fmt.Errorf("r.dao.InsertGrade -> %w", err)
	}

	return domain.Grade{ID: created.ID, Name: created.Name}, nil
}

func (r *ReferenceRepository) FindAllGrades(ctx context.Context) ([]domain.Grade, error) {
	found, err := r.dao.FindAllGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllGrades -> %w", err)
	}

	grades := make([]domain.Grade, len(found))
	for i, g := range found {
		grades[i] = domain.Grade{ID: g.ID, Name: g.Name}
	}

	return grades, nil
}

func (r *ReferenceRepository) CreateChurch(ctx context.Context, church domain.Church) (domain.Church, error) {
	created, err := r.dao.InsertChurch(ctx, dao.Church{Name: church.Name})
	if err != nil {
		return domain.Church{}, fmt.Errorf("r.dao.InsertChurch -> %w", err)
	}

	return domain.Church{ID: created.ID, Name: created.Name}, nil
}

func (r *ReferenceRepository) FindAllChurches(ctx context.Context) ([]domain.Church, error) {
	found, err := r.dao.FindAllChurches(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllChurches -> %w", err)
	}

	churches := make([]domain.Church, len(found))
	for i, c := range found {
		churches[i] = domain.Church{ID: c.ID, Name: c.Name}
	}

	return churches, nil
}

func (r *ReferenceRepository) CreateAttendanceType(ctx context.Context, attendanceType domain.AttendanceType) (domain.AttendanceType, error) {
	created, err := r.dao.InsertAttendanceType(ctx, dao.AttendanceType{Name: attendanceType.Name})
	if err != nil {
		return domain.AttendanceType{}, fmt.Errorf("r.dao.InsertAttendanceType -> %w", err)
	}

	return domain.AttendanceType{ID: created.ID, Name: created.Name}, nil
}

func (r *ReferenceRepository) FindAllAttendanceTypes(ctx context.Context) ([]domain.AttendanceType, error) {
	found, err := r.dao.FindAllAttendanceTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllAttendanceTypes -> %w", err)
	}

	attendanceTypes := make([]domain.AttendanceType, len(found))
	for i, at := range found {
		attendanceTypes[i] = domain.AttendanceType{ID: at.ID, Name: at.Name}
	}

	return attendanceTypes, nil
}

func (r *ReferenceRepository) CreateSession(ctx context.Context, session domain.Session) (domain.Session, error) {
	created, err := r.dao.InsertSession(ctx, dao.Session{
		Name:        session.Name,
		Description: session.Description,
		StartDate:   session.StartDate,
		EndDate:     session.EndDate,
	})
	if err != nil {
		return domain.Session{}, fmt.Errorf("r.dao.InsertSession -> %w", err)
	}

	return r.sessionDAOToDomain(created), nil
}

func (r *ReferenceRepository) FindAllSessions(ctx context.Context) ([]domain.Session, error) {
	found, err := r.dao.FindAllSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllSessions -> %w", err)
	}

	sessions := make([]domain.Session, len(found))
	for i, s := range found {
		sessions[i] = r.sessionDAOToDomain(s)
	}

	return sessions, nil
}

func (r *ReferenceRepository) CreatePickupPerson(ctx context.Context, person domain.PickupPerson) (domain.PickupPerson, error) {
	created, err := r.dao.InsertPickupPerson(ctx, dao.PickupPerson{
		Name:      person.Name,
		ContactNo: person.ContactNo,
	})
	if err != nil {
		return domain.PickupPerson{}, fmt.Errorf("r.dao.InsertPickupPerson -> %w", err)
	}

	return domain.PickupPerson{ID: created.ID, Name: created.Name, ContactNo: created.ContactNo}, nil
}

func (r *ReferenceRepository) FindAllPickupPersons(ctx context.Context) ([]domain.PickupPerson, error) {
	found, err := r.dao.FindAllPickupPersons(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllPickupPersons -> %w", err)
	}

	persons := make([]domain.PickupPerson, len(found))
	for i, p := range found {
		persons[i] = domain.PickupPerson{ID: p.ID, Name: p.Name, ContactNo: p.ContactNo}
	}

	return persons, nil
}

func (r *ReferenceRepository) CreateParent(ctx context.Context, parent domain.Parent) (domain.Parent, error) {
	created, err := r.dao.InsertParent(ctx, dao.Parent{
		FullName:           parent.FullName,
		PrimaryContactNo:   parent.PrimaryContactNo,
		AlternateContactNo: parent.AlternateContactNo,
		Email:              parent.Email,
	})
	if err != nil {
		return domain.Parent{}, fmt.Errorf("r.dao.InsertParent -> %w", err)
	}

	return r.parentDAOToDomain(created), nil
}

func (r *ReferenceRepository) FindAllParents(ctx context.Context) ([]domain.Parent, error) {
	found, err := r.dao.FindAllParents(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllParents -> %w", err)
	}

	parents := make([]domain.Parent, len(found))
	for i, p := range found {
		parents[i] = r.parentDAOToDomain(p)
	}

	return parents, nil
}

func (r *ReferenceRepository) sessionDAOToDomain(s dao.Session) domain.Session {
	return domain.Session{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
	}
}

func (r *ReferenceRepository) parentDAOToDomain(p dao.Parent) domain.Parent {
	return domain.Parent{
		ID:                 p.ID,
		FullName:           p.FullName,
		PrimaryContactNo:   p.PrimaryContactNo,
		AlternateContactNo: p.AlternateContactNo,
		Email:              p.Email,
	}
}
