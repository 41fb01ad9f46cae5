package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// GradeCount is a scan target for grouped count queries.
type GradeCount struct {
	Grade string
	Count int64
}

type DashboardDAO struct {
	db *gorm.DB
}

func NewDashboardDAO(db *gorm.DB) *DashboardDAO {
	return &DashboardDAO{
		db: db,
	}
}

func (d *DashboardDAO) CountParticipants(ctx context.Context, since time.Time) (int64, error) {
	return d.count(ctx, &Participant{}, since)
}

func (d *DashboardDAO) CountVolunteers(ctx context.Context, since time.Time) (int64, error) {
	return d.count(ctx, &Volunteer{}, since)
}

func (d *DashboardDAO) CountParticipantChurches(ctx context.Context, since time.Time) (int64, error) {
	return d.countDistinctChurches(ctx, &Participant{}, since)
}

func (d *DashboardDAO) CountVolunteerChurches(ctx context.Context, since time.Time) (int64, error) {
	return d.countDistinctChurches(ctx, &Volunteer{}, since)
}

func (d *DashboardDAO) ParticipantGradeDistribution(ctx context.Context) ([]GradeCount, error) {
	var rows []GradeCount

	result := d.db.WithContext(ctx).Model(&Participant{}).
		Select("grade, COUNT(*) AS count").
		Group("grade").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *DashboardDAO) VolunteerClassDistribution(ctx context.Context) ([]GradeCount, error) {
	var rows []GradeCount

	result := d.db.WithContext(ctx).Model(&Volunteer{}).
		Select("preferred_class AS grade, COUNT(*) AS count").
		Group("preferred_class").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

func (d *DashboardDAO) count(ctx context.Context, model interface{}, since time.Time) (int64, error) {
	var n int64

	query := d.db.WithContext(ctx).Model(model)
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	if err := query.Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}

func (d *DashboardDAO) countDistinctChurches(ctx context.Context, model interface{}, since time.Time) (int64, error) {
	var n int64

	query := d.db.WithContext(ctx).Model(model).Distinct("church")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	if err := query.Count(&n).Error; err != nil {
		return 0, err
	}

	return n, nil
}
