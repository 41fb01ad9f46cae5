package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lic-events/vbs-api/internal/domain"
)

type DashboardRepository interface {
	Overview(ctx context.Context, weekStart time.Time) (domain.DashboardOverview, error)
	Distributions(ctx context.Context) (domain.DashboardDistributions, error)
}

type DashboardService struct {
	repo DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo DashboardRepository, now func() time.Time) *DashboardService {
	if now == nil {
		now = time.Now
	}

	return &DashboardService{
		repo: repo,
		now:  now,
	}
}

func (s *DashboardService) GetDashboardData(ctx context.Context) (domain.DashboardData, error) {
	overview, err := s.repo.Overview(ctx, weekStart(s.now))
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("s.repo.Overview -> %w", err)
	}

	distributions, err := s.repo.Distributions(ctx)
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("s.repo.Distributions -> %w", err)
	}

	return domain.DashboardData{
		Overview:      overview,
		Distributions: distributions,
	}, nil
}

// weekStart returns midnight of the current ISO week's Monday.
func weekStart(now func() time.Time) time.Time {
	t := now()

	offset := int(t.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7
	}

	day := t.AddDate(0, 0, -offset)

	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
}
