package service

import (
	"context"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// DataPointService defines the measurement-ingestion business logic.
type DataPointService interface {
	Submit(ctx context.Context, req *models.SubmitMeasurementRequest) (*models.DataPoint, error)
	Query(ctx context.Context, days int) ([]models.DataPoint, error)
	RangeQuery(ctx context.Context, start, end models.DateKey) ([]models.DataPoint, error)
}

// AnalysisService runs the full local analysis, optionally delegating to
// the remote oracle with a local fallback.
type AnalysisService interface {
	Analyze(ctx context.Context, days int) (*models.AnalysisResult, error)
	AnalyzeWithOracle(ctx context.Context, days int) (*models.AnalysisResult, error)
}

// ReportService generates and serves immutable period reports.
type ReportService interface {
	Generate(ctx context.Context, req *models.GenerateReportRequest) (*models.Report, error)
	GetReport(ctx context.Context, id string) (*models.Report, error)
	ListReports(ctx context.Context) ([]models.Report, error)
}

// InsightService serves stored insights and read-state updates.
type InsightService interface {
	ListInsights(ctx context.Context) ([]models.Insight, error)
	MarkRead(ctx context.Context, id string) error
}

// GoalService defines the goal lifecycle business logic.
type GoalService interface {
	CreateGoal(ctx context.Context, req *models.CreateGoalRequest) (*models.Goal, error)
	GetGoal(ctx context.Context, id string) (*models.Goal, error)
	ListGoals(ctx context.Context) ([]models.Goal, error)
	UpdateProgress(ctx context.Context, id string, req *models.UpdateGoalProgressRequest) (*models.Goal, error)
	ArchiveGoal(ctx context.Context, id string) (*models.Goal, error)
}
