package service

import (
	"context"
	"time"

	"github.com/momentumhq/momentum-backend/internal/logger"
	"github.com/momentumhq/momentum-backend/internal/models"
	"github.com/momentumhq/momentum-backend/internal/repository"
	"github.com/momentumhq/momentum-backend/pkg/oracle"
)

type analysisService struct {
	pointService DataPointService
	insightRepo  repository.InsightRepository
	oracleClient *oracle.Client
}

// NewAnalysisService creates a new analysis service. oracleClient may be
// nil, in which case AnalyzeWithOracle always runs locally.
func NewAnalysisService(pointService DataPointService, insightRepo repository.InsightRepository, oracleClient *oracle.Client) AnalysisService {
	return &analysisService{
		pointService: pointService,
		insightRepo:  insightRepo,
		oracleClient: oracleClient,
	}
}

// Analyze runs the full local analysis over the last `days` days. The
// point slice is fetched once up front so the whole computation works on
// a consistent snapshot.
func (s *analysisService) Analyze(ctx context.Context, days int) (*models.AnalysisResult, error) {
	if days <= 0 {
		days = DefaultInsightWindowDays
	}

	points, err := s.pointService.Query(ctx, days)
	if err != nil {
		return nil, err
	}

	insights := GenerateInsights(points, days)
	s.storeInsights(ctx, insights)

	averages := averagesOf(points)

	return &models.AnalysisResult{
		Score: ScoreOf(points),
		Trend: TrendOf(points),
		Patterns: models.PatternSummary{
			MostProductiveWeekdays: MostProductiveWeekdays(points, DefaultTopWeekdays),
			BestWorkingHours:       BestWorkingHours(),
			Streaks:                Streaks(points, DefaultStreakThreshold),
			Correlation:            FocusTaskCorrelation(points),
		},
		Insights:        insights,
		Recommendations: RecommendationsFor(averages),
		Source:          "local",
		ComputedAt:      time.Now(),
	}, nil
}

// AnalyzeWithOracle delegates to the remote oracle and degrades to local
// analysis on any failure. Oracle insights are merged with the local rule
// output, deduplicated by (type, category) with local insights winning.
func (s *analysisService) AnalyzeWithOracle(ctx context.Context, days int) (*models.AnalysisResult, error) {
	if s.oracleClient == nil {
		return s.Analyze(ctx, days)
	}
	if days <= 0 {
		days = DefaultInsightWindowDays
	}

	points, err := s.pointService.Query(ctx, days)
	if err != nil {
		return nil, err
	}

	resp, err := s.oracleClient.Analyze(ctx, &oracle.AnalyzeRequest{Points: points, WindowDays: days})
	if err != nil {
		logger.Ctx(ctx).Warn("oracle analysis failed, falling back to local",
			logger.Err(err),
			logger.Int("window_days", days),
		)
		return s.Analyze(ctx, days)
	}

	local := GenerateInsights(points, days)
	merged := MergeInsights(local, resp.Insights)
	s.storeInsights(ctx, merged)

	return &models.AnalysisResult{
		Score:           resp.Score,
		Trend:           resp.Trends,
		Patterns:        resp.Patterns,
		Insights:        merged,
		Recommendations: resp.Recommendations,
		Source:          "oracle",
		ComputedAt:      time.Now(),
	}, nil
}

// storeInsights persists generated insights. A storage failure is logged
// and surfaced to the operator but never fails the analysis itself.
func (s *analysisService) storeInsights(ctx context.Context, insights []models.Insight) {
	if err := s.insightRepo.BulkCreate(ctx, insights); err != nil {
		logger.Ctx(ctx).Error("failed to store insights", logger.Err(err), logger.Int("count", len(insights)))
	}
}

// averagesOf computes per-day averages over days with data.
func averagesOf(points []models.DataPoint) models.ReportAverages {
	if len(points) == 0 {
		return models.ReportAverages{}
	}

	var averages models.ReportAverages
	for _, p := range points {
		averages.TasksCompleted += float64(p.TasksCompleted)
		averages.FocusMinutes += float64(p.FocusMinutes)
		averages.HabitsScore += p.HabitsScore
		averages.ProductivityScore += p.ProductivityScore
	}

	n := float64(len(points))
	averages.TasksCompleted /= n
	averages.FocusMinutes /= n
	averages.HabitsScore /= n
	averages.ProductivityScore /= n

	return averages
}
