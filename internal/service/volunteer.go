package service

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository"
)

var ErrVolunteerNotFound = repository.ErrVolunteerNotFound

type VolunteerRepository interface {
	Create(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
	FindByID(ctx context.Context, id uint) (domain.Volunteer, error)
	FindAll(ctx context.Context, preferredClass, lastName string) ([]domain.Volunteer, error)
	Update(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error)
}

type VolunteerService struct {
	repo VolunteerRepository
}

func NewVolunteerService(repo VolunteerRepository) *VolunteerService {
	return &VolunteerService{
		repo: repo,
	}
}

func (s *VolunteerService) CreateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	created, err := s.repo.Create(ctx, volunteer)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *VolunteerService) GetVolunteer(ctx context.Context, id uint) (domain.Volunteer, error) {
	volunteer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return volunteer, nil
}

func (s *VolunteerService) ListVolunteers(ctx context.Context, preferredClass, lastName string) ([]domain.Volunteer, error) {
	volunteers, err := s.repo.FindAll(ctx, preferredClass, lastName)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return volunteers, nil
}

func (s *VolunteerService) UpdateVolunteer(ctx context.Context, volunteer domain.Volunteer) (domain.Volunteer, error) {
	updated, err := s.repo.Update(ctx, volunteer)
	if err != nil {
		return domain.Volunteer{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
