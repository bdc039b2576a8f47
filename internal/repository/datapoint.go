package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/models"
)

type dataPointRepository struct {
	db *sqlx.DB
}

// NewDataPointRepository creates a SQLite-backed DataPointRepository.
func NewDataPointRepository(db *sqlx.DB) DataPointRepository {
	return &dataPointRepository{db: db}
}

func (r *dataPointRepository) Upsert(ctx context.Context, point *models.DataPoint) (*models.DataPoint, error) {
	now := time.Now()
	point.UpdatedAt = now
	if point.CreatedAt.IsZero() {
		point.CreatedAt = now
	}

	query := `
		INSERT INTO data_points (date, tasks_completed, focus_minutes, habits_score, events_count, productivity_score, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			tasks_completed    = excluded.tasks_completed,
			focus_minutes      = excluded.focus_minutes,
			habits_score       = excluded.habits_score,
			events_count       = excluded.events_count,
			productivity_score = excluded.productivity_score,
			updated_at         = excluded.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		point.Date,
		point.TasksCompleted,
		point.FocusMinutes,
		point.HabitsScore,
		point.EventsCount,
		point.ProductivityScore,
		point.CreatedAt,
		point.UpdatedAt,
	)
	if err != nil {
		return nil, apierror.NewPersistenceError("upsert data point", err)
	}

	return point, nil
}

func (r *dataPointRepository) GetAll(ctx context.Context) ([]models.DataPoint, error) {
	query := `
		SELECT date, tasks_completed, focus_minutes, habits_score, events_count, productivity_score, created_at, updated_at
		FROM data_points ORDER BY date ASC
	`

	points := []models.DataPoint{}
	if err := r.db.SelectContext(ctx, &points, query); err != nil {
		return nil, apierror.NewPersistenceError("list data points", err)
	}

	return points, nil
}

func (r *dataPointRepository) GetRange(ctx context.Context, start, end models.DateKey) ([]models.DataPoint, error) {
	query := `
		SELECT date, tasks_completed, focus_minutes, habits_score, events_count, productivity_score, created_at, updated_at
		FROM data_points WHERE date >= ? AND date <= ? ORDER BY date ASC
	`

	points := []models.DataPoint{}
	if err := r.db.SelectContext(ctx, &points, query, start, end); err != nil {
		return nil, apierror.NewPersistenceError("query data point range", err)
	}

	return points, nil
}
