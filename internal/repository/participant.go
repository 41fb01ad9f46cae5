package repository

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

var ErrParticipantNotFound = dao.ErrParticipantNotFound

type ParticipantDAO interface {
	Insert(ctx context.Context, participant dao.Participant) (dao.Participant, error)
	FindByID(ctx context.Context, id uint) (dao.Participant, error)
	FindAll(ctx context.Context, grade, lastName string) ([]dao.Participant, error)
	Update(ctx context.Context, participant dao.Participant) (dao.Participant, error)
}

type ParticipantRepository struct {
	dao ParticipantDAO
}

func NewParticipantRepository(dao ParticipantDAO) *ParticipantRepository {
	return &ParticipantRepository{
		dao: dao,
	}
}

func (r *ParticipantRepository) Create(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := r.dao.Insert(ctx, r.domainToDAO(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ParticipantRepository) FindByID(ctx context.Context, id uint) (domain.Participant, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ParticipantRepository) FindAll(ctx context.Context, grade, lastName string) ([]domain.Participant, error) {
	found, err := r.dao.FindAll(ctx, grade, lastName)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	participants := make([]domain.Participant, len(found))
	for i, p := range found {
		participants[i] = r.daoToDomain(p)
	}

	return participants, nil
}

func (r *ParticipantRepository) Update(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	updated, err := r.dao.Update(ctx, r.domainToDAO(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return r.daoToDomain(updated), nil
}

func (r *ParticipantRepository) domainToDAO(p domain.Participant) dao.Participant {
	return dao.Participant{
		ID:                    p.ID,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		Gender:                p.Gender,
		Age:                   p.Age,
		DateOfBirth:           p.DateOfBirth,
		Grade:                 p.Grade,
		MedicalInfo:           p.MedicalInfo,
		ParentName:            p.ParentName,
		PrimaryContactNo:      p.PrimaryContactNo,
		AlternateContactNo:    p.AlternateContactNo,
		WhatsAppNo:            p.WhatsAppNo,
		Email:                 p.Email,
		Church:                p.Church,
		PickupPersonName:      p.PickupPersonName,
		PickupPersonContactNo: p.PickupPersonContactNo,
	}
}

func (r *ParticipantRepository) daoToDomain(p dao.Participant) domain.Participant {
	return domain.Participant{
		ID:                    p.ID,
		FirstName:             p.FirstName,
		LastName:              p.LastName,
		Gender:                p.Gender,
		Age:                   p.Age,
		DateOfBirth:           p.DateOfBirth,
		Grade:                 p.Grade,
		MedicalInfo:           p.MedicalInfo,
		ParentName:            p.ParentName,
		PrimaryContactNo:      p.PrimaryContactNo,
		AlternateContactNo:    p.AlternateContactNo,
		WhatsAppNo:            p.WhatsAppNo,
		Email:                 p.Email,
		Church:                p.Church,
		PickupPersonName:      p.PickupPersonName,
		PickupPersonContactNo: p.PickupPersonContactNo,
		CreatedAt:             p.CreatedAt,
		UpdatedAt:             p.UpdatedAt,
	}
}
