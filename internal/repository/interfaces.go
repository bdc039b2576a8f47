package repository

import (
	"context"

	"github.com/momentumhq/momentum-backend/internal/models"
)

// DataPointRepository defines the interface for daily measurement storage.
// The store retains at most one point per date; Upsert replaces in place.
type DataPointRepository interface {
	Upsert(ctx context.Context, point *models.DataPoint) (*models.DataPoint, error)
	GetAll(ctx context.Context) ([]models.DataPoint, error)
	GetRange(ctx context.Context, start, end models.DateKey) ([]models.DataPoint, error)
}

// InsightRepository defines the interface for insight storage.
type InsightRepository interface {
	BulkCreate(ctx context.Context, insights []models.Insight) error
	GetAll(ctx context.Context) ([]models.Insight, error)
	GetByGeneratedRange(ctx context.Context, start, end models.DateKey) ([]models.Insight, error)
	MarkRead(ctx context.Context, id string) error
}

// ReportRepository defines the interface for immutable report storage.
// List returns reports most-recent-first.
type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByID(ctx context.Context, id string) (*models.Report, error)
	List(ctx context.Context) ([]models.Report, error)
}

// GoalRepository defines the interface for goal storage.
type GoalRepository interface {
	Create(ctx context.Context, goal *models.Goal) (*models.Goal, error)
	GetByID(ctx context.Context, id string) (*models.Goal, error)
	List(ctx context.Context) ([]models.Goal, error)
	Update(ctx context.Context, goal *models.Goal) (*models.Goal, error)
}
