package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/repository"
)

type reportService struct {
	pointRepo   repository.DataPointRepository
	insightRepo repository.InsightRepository
	reportRepo  repository.ReportRepository
}

// NewReportService creates a new report service
func NewReportService(pointRepo repository.DataPointRepository, insightRepo repository.InsightRepository, reportRepo repository.ReportRepository) ReportService {
	return &reportService{
		pointRepo:   pointRepo,
		insightRepo: insightRepo,
		reportRepo:  reportRepo,
	}
}

// Generate builds and persists an immutable report over the requested
// range. Calling it twice on the same data yields two reports with
// distinct IDs and timestamps; that non-idempotence is deliberate.
func (s *reportService) Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.Report, error) {
	start, end, err := resolvePeriod(req)
	if err != nil {
		return nil, err
	}

	points, err := s.pointRepo.GetRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	totals := totalsOf(points)
	averages := averagesOf(points)
	bestDay, worstDay := extremalDays(points)

	report := &models.Report{
		ID:        uuid.New().String(),
		Period:    req.Period,
		StartDate: start,
		EndDate:   end,
		Totals:    totals,
		Averages:  averages,
		BestDay:   bestDay,
		WorstDay:  worstDay,
		Trend:     TrendOf(points),
		TrendChanges: models.ReportTrendChanges{
			TasksCompleted:    metricChangePercent(points, models.MetricTasksCompleted),
			FocusMinutes:      metricChangePercent(points, models.MetricFocusMinutes),
			HabitsScore:       metricChangePercent(points, models.MetricHabitsScore),
			ProductivityScore: metricChangePercent(points, models.MetricProductivityScore),
		},
		Recommendations: RecommendationsFor(averages),
		GeneratedAt:     time.Now(),
	}

	if len(points) == 0 {
		// Empty range degrades to zeros plus one informational insight
		logger.Ctx(ctx).Info("generating report over empty range",
			logger.String("start", start.String()),
			logger.String("end", end.String()),
			logger.Err(apierror.ErrEmptyRange))
		report.Insights = GenerateInsights(nil, start.DaysUntil(end)+1)
	} else {
		insights, err := s.insightRepo.GetByGeneratedRange(ctx, start, end)
		if err != nil {
			logger.Ctx(ctx).Warn("failed to load insights for report", logger.Err(err))
			insights = []models.Insight{}
		}
		report.Insights = insights
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return report, nil
}

func (s *reportService) GetReport(ctx context.Context, id string) (*models.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

func (s *reportService) ListReports(ctx context.Context) ([]models.Report, error) {
	return s.reportRepo.List(ctx)
}

// resolvePeriod turns a request into an inclusive date range. Weekly and
// monthly periods end today; custom periods require explicit bounds.
func resolvePeriod(req *models.GenerateReportRequest) (models.DateKey, models.DateKey, error) {
	today := models.Today()

	switch req.Period {
	case models.PeriodWeekly:
		return today.AddDays(-6), today, nil
	case models.PeriodMonthly:
		return today.AddDays(-29), today, nil
	case models.PeriodCustom:
		if req.StartDate == nil || req.EndDate == nil {
			return models.DateKey{}, models.DateKey{}, fmt.Errorf("custom period requires start_date and end_date")
		}
		if req.EndDate.Before(*req.StartDate) {
			return models.DateKey{}, models.DateKey{}, fmt.Errorf("invalid range: end %s is before start %s", req.EndDate, req.StartDate)
		}
		return *req.StartDate, *req.EndDate, nil
	default:
		return models.DateKey{}, models.DateKey{}, fmt.Errorf("unknown report period %q", req.Period)
	}
}

func totalsOf(points []models.DataPoint) models.ReportTotals {
	var totals models.ReportTotals
	for _, p := range points {
		totals.TasksCompleted += p.TasksCompleted
		totals.FocusMinutes += p.FocusMinutes
		totals.EventsCount += p.EventsCount
		totals.HabitsScore += p.HabitsScore
	}
	return totals
}

// extremalDays finds the dates with the highest and lowest aggregated
// daily score. Ties resolve to the earliest-encountered date.
func extremalDays(points []models.DataPoint) (best, worst *models.DateKey) {
	if len(points) == 0 {
		return nil, nil
	}

	bestDay := points[0].Date
	worstDay := points[0].Date
	bestScore := DailyScore(points[0])
	worstScore := bestScore

	for _, p := range points[1:] {
		score := DailyScore(p)
		if score > bestScore {
			bestScore = score
			bestDay = p.Date
		}
		if score < worstScore {
			worstScore = score
			worstDay = p.Date
		}
	}

	return &bestDay, &worstDay
}

// metricChangePercent compares the halves of the range itself rather than
// a today-anchored window, since reports may cover historical ranges.
func metricChangePercent(points []models.DataPoint, metric models.Metric) float64 {
	values := make([]float64, len(points))
	for i, p := range points {
		values[i] = p.MetricValue(metric)
	}
	return halvesChangePercent(values)
}
