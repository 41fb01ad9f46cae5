package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/lic-events/vbs-api/internal/domain"
	"github.com/lic-events/vbs-api/internal/repository/dao"
)

type DashboardDAO interface {
	CountParticipants(ctx context.Context, since time.Time) (int64, error)
	CountVolunteers(ctx context.Context, since time.Time) (int64, error)
	CountParticipantChurches(ctx context.Context, since time.Time) (int64, error)
	CountVolunteerChurches(ctx context.Context, since time.Time) (int64, error)
	ParticipantGradeDistribution(ctx context.Context) ([]dao.GradeCount, error)
	VolunteerClassDistribution(ctx context.Context) ([]dao.GradeCount, error)
}

type DashboardRepository struct {
	dao DashboardDAO
}

func NewDashboardRepository(dao DashboardDAO) *DashboardRepository {
	return &DashboardRepository{
		dao: dao,
	}
}

func (r *DashboardRepository) Overview(ctx context.Context, weekStart time.Time) (domain.DashboardOverview, error) {
	var (
		overview domain.DashboardOverview
		err      error
	)

	if overview.Participants, err = r.dao.CountParticipants(ctx, time.Time{}); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountParticipants -> %w", err)
	}
	if overview.Volunteers, err = r.dao.CountVolunteers(ctx, time.Time{}); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountVolunteers -> %w", err)
	}
	if overview.ParticipantChurches, err = r.dao.CountParticipantChurches(ctx, time.Time{}); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountParticipantChurches -> %w", err)
	}
	if overview.VolunteerChurches, err = r.dao.CountVolunteerChurches(ctx, time.Time{}); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountVolunteerChurches -> %w", err)
	}
	if overview.ParticipantsThisWeek, err = r.dao.CountParticipants(ctx, weekStart); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountParticipants -> %w", err)
	}
	if overview.VolunteersThisWeek, err = r.dao.CountVolunteers(ctx, weekStart); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountVolunteers -> %w", err)
	}
	if overview.ParticipantChurchesThisWeek, err = r.dao.CountParticipantChurches(ctx, weekStart); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountParticipantChurches -> %w", err)
	}
	if overview.VolunteerChurchesThisWeek, err = r.dao.CountVolunteerChurches(ctx, weekStart); err != nil {
		return domain.DashboardOverview{}, fmt.Errorf("r.dao.CountVolunteerChurches -> %w", err)
	}

	return overview, nil
}

func (r *DashboardRepository) Distributions(ctx context.Context) (domain.DashboardDistributions, error) {
	participantRows, err := r.dao.ParticipantGradeDistribution(ctx)
	if err != nil {
		return domain.DashboardDistributions{}, fmt.Errorf("r.dao.ParticipantGradeDistribution -> %w", err)
	}

	volunteerRows, err := r.dao.VolunteerClassDistribution(ctx)
	if err != nil {
		return domain.DashboardDistributions{}, fmt.Errorf("r.dao.VolunteerClassDistribution -> %w", err)
	}

	return domain.DashboardDistributions{
		ParticipantClassDistribution: r.daoCountsToDomain(participantRows),
		VolunteerClassDistribution:   r.daoCountsToDomain(volunteerRows),
	}, nil
}

func (r *DashboardRepository) daoCountsToDomain(rows []dao.GradeCount) []domain.GradeCount {
	counts := make([]domain.GradeCount, len(rows))
	for i, row := range rows {
		counts[i] = domain.GradeCount{Grade: row.Grade, Count: row.Count}
	}

	return counts
}
