package service

import (
	"context"
	"fmt"

	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/repository"
)

type dataPointService struct {
	pointRepo repository.DataPointRepository
}

// NewDataPointService creates a new data point service
func NewDataPointService(pointRepo repository.DataPointRepository) DataPointService {
	return &dataPointService{pointRepo: pointRepo}
}

// Submit upserts one day's measurements. The date defaults to today,
// bounded scores are clamped to [0,100], and a resubmission for an
// existing date replaces the stored point (last write wins).
func (s *dataPointService) Submit(ctx context.Context, req *models.SubmitMeasurementRequest) (*models.DataPoint, error) {
	date := models.Today()
	if req.Date != nil && !req.Date.IsZero() {
		date = *req.Date
	}

	point := &models.DataPoint{
		Date:              date,
		TasksCompleted:    clampNonNegative(req.TasksCompleted),
		FocusMinutes:      clampNonNegative(req.FocusMinutes),
		HabitsScore:       clampScore(req.HabitsScore),
		EventsCount:       clampNonNegative(req.EventsCount),
		ProductivityScore: clampScore(req.ProductivityScore),
	}

	return s.pointRepo.Upsert(ctx, point)
}

// Query returns points from the last `days` calendar days inclusive of
// today, ascending by date. days <= 0 returns the full series.
func (s *dataPointService) Query(ctx context.Context, days int) ([]models.DataPoint, error) {
	if days <= 0 {
		return s.pointRepo.GetAll(ctx)
	}

	today := models.Today()
	cutoff := today.AddDays(-(days - 1))
	return s.pointRepo.GetRange(ctx, cutoff, today)
}

// RangeQuery returns points with start <= date <= end, ascending.
func (s *dataPointService) RangeQuery(ctx context.Context, start, end models.DateKey) ([]models.DataPoint, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("invalid range: end %s is before start %s", end, start)
	}
	return s.pointRepo.GetRange(ctx, start, end)
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
