package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lic-events/vbs-api/internal/domain"
)

type fakeDashboardRepo struct {
	gotWeekStart time.Time
}

func (r *fakeDashboardRepo) Overview(_ context.Context, weekStart time.Time) (domain.DashboardOverview, error) {
	r.gotWeekStart = weekStart

	return domain.DashboardOverview{
		Participants: 120,
		Volunteers:   30,
	}, nil
}

func (r *fakeDashboardRepo) Distributions(context.Context) (domain.DashboardDistributions, error) {
	return domain.DashboardDistributions{
		ParticipantClassDistribution: []domain.GradeCount{{Grade: "Grade 1", Count: 40}},
	}, nil
}

func TestDashboardService_GetDashboardData(t *testing.T) {
	repo := &fakeDashboardRepo{}

	// A Thursday; the week started on Monday the 6th.
	now := time.Date(2026, time.July, 9, 15, 45, 0, 0, time.UTC)
	svc := NewDashboardService(repo, func() time.Time { return now })

	data, err := svc.GetDashboardData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(120), data.Overview.Participants)
	assert.Equal(t, int64(30), data.Overview.Volunteers)
	assert.Len(t, data.Distributions.ParticipantClassDistribution, 1)

	assert.Equal(t, time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC), repo.gotWeekStart)
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "monday maps to itself",
			now:  time.Date(2026, time.July, 6, 9, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "sunday maps back to the previous monday",
			now:  time.Date(2026, time.July, 12, 23, 0, 0, 0, time.UTC),
			want: time.Date(2026, time.July, 6, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := weekStart(func() time.Time { return tc.now })
			assert.Equal(t, tc.want, got)
		})
	}
}
