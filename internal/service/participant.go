package service

import (
	"context"
	"fmt"

	"github.com/lic-events/vbs-api/internal/domain"
)

type ParticipantRepository interface {
	Create(ctx context.Context, participant domain.Participant) (domain.Participant, error)
	FindByID(ctx context.Context, id uint) (domain.Participant, error)
	FindAll(ctx context.Context, grade, lastName string) ([]domain.Participant, error)
	Update(ctx context.Context, participant domain.Participant) (domain.Participant, error)
}

type ParticipantService struct {
	repo ParticipantRepository
}

func NewParticipantService(repo ParticipantRepository) *ParticipantService {
	return &ParticipantService{
		repo: repo,
	}
}

func (s *ParticipantService) CreateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	created, err := s.repo.Create(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *ParticipantService) GetParticipant(ctx context.Context, id uint) (domain.Participant, error) {
	participant, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return participant, nil
}

func (s *ParticipantService) ListParticipants(ctx context.Context, grade, lastName string) ([]domain.Participant, error) {
	participants, err := s.repo.FindAll(ctx, grade, lastName)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return participants, nil
}

func (s *ParticipantService) UpdateParticipant(ctx context.Context, participant domain.Participant) (domain.Participant, error) {
	updated, err := s.repo.Update(ctx, participant)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}
