package repository

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

var ErrVolunteerNotFound = dao.ErrVolunteerNotFound

type VolunteerDAO interface {
	Insert(ctx context.Context, volunteer dao.Volunteer) (dao.Volunteer, error)
	FindByID(ctx context.Context, id uint) (dao.Volunteer, error)
	FindAll(ctx context.Context, preferredClass, lastName string) ([]dao.Volunteer, error)
	Update(ctx context.Context, volunteer dao.Volunteer) (dao.Volunteer, error)
}

type VolunteerRepository struct {
	dao VolunteerDAO
}

func NewVolunteerRepository(dao VolunteerDAO) *VolunteerRepository {
	return &VolunteerRepository{
		dao: dao,
	}
}

func (r *VolunteerRepository) Create(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(volunteer))
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *VolunteerRepository) FindByID(ctx context.Context, id uint) (domain.Volunteer, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *VolunteerRepository) FindAll(ctx context.Context, preferredClass, lastName string) ([]domain.Volunteer, error) {
	found, err := r.dao.FindAll(ctx, preferredClass, lastName)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	volunteers := make([]domain.Volunteer, len(found))
	for i, v := range found {
		volunteers[i] = r.daoToDomain(v)
	}

	return volunteers, nil
}

func (r *VolunteerRepository) Update(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(volunteer))
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *VolunteerRepository) domainToDAO(v domain.Volunteer) dao.Volunteer {
	return dao.Volunteer{
		ID:                v.ID,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		Gender:            v.Gender,
		PreferredRole:     v.PreferredRole,
		Church:            v.Church,
		PreferredClass:    v.PreferredClass,
		ContactNo:         v.ContactNo,
		WhatsAppNo:        v.WhatsAppNo,
		Email:             v.Email,
		PreviousVolunteer: v.PreviousVolunteer,
		PreviousSite:      v.PreviousSite,
	}
}

func (r *VolunteerRepository) daoToDomain(v dao.Volunteer) domain.Volunteer {
	return domain.Volunteer{
		ID:                v.ID,
		FirstName:         v.FirstName,
		LastName:          v.LastName,
		Gender:            v.Gender,
		PreferredRole:     v.PreferredRole,
		Church:            v.Church,
		PreferredClass:    v.PreferredClass,
		ContactNo:         v.ContactNo,
		WhatsAppNo:        v.WhatsAppNo,
		Email:             v.Email,
		PreviousVolunteer: v.PreviousVolunteer,
		PreviousSite:      v.PreviousSite,
		CreatedAt:         v.CreatedAt,
		UpdatedAt:         v.UpdatedAt,
	}
}
