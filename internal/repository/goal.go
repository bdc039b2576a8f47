package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/models"
)

type goalRepository struct {
	db *sqlx.DB
}

// NewGoalRepository creates a SQLite-backed GoalRepository.
func NewGoalRepository(db *sqlx.DB) GoalRepository {
	return &goalRepository{db: db}
}

func (r *goalRepository) Create(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	now := time.Now()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	query := `
		INSERT INTO goals (id, name, target_metric, target_value, current_value, deadline, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	var deadline sql.NullString
	if goal.Deadline != nil {
		deadline = sql.NullString{String: goal.Deadline.String(), Valid: true}
	}

	if _, err := r.db.ExecContext(ctx, query,
		goal.ID,
		goal.Name,
		goal.TargetMetric,
		goal.TargetValue,
		goal.CurrentValue,
		deadline,
		goal.Status,
		goal.CreatedAt,
		goal.UpdatedAt,
	); err != nil {
		return nil, apierror.NewPersistenceError("insert goal", err)
	}

	return goal, nil
}

func (r *goalRepository) GetByID(ctx context.Context, id string) (*models.Goal, error) {
	query := `
		SELECT id, name, target_metric, target_value, current_value, deadline, status, created_at, updated_at
		FROM goals WHERE id = ?
	`

	goal, err := scanGoal(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apierror.NewPersistenceError("get goal", err)
	}

	return goal, nil
}

func (r *goalRepository) List(ctx context.Context) ([]models.Goal, error) {
	query := `
		SELECT id, name, target_metric, target_value, current_value, deadline, status, created_at, updated_at
		FROM goals ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apierror.NewPersistenceError("list goals", err)
	}
	defer rows.Close()

	goals := []models.Goal{}
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, apierror.NewPersistenceError("scan goal", err)
		}
		goals = append(goals, *goal)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.NewPersistenceError("iterate goals", err)
	}

	return goals, nil
}

func (r *goalRepository) Update(ctx context.Context, goal *models.Goal) (*models.Goal, error) {
	goal.UpdatedAt = time.Now()

	var deadline sql.NullString
	if goal.Deadline != nil {
		deadline = sql.NullString{String: goal.Deadline.String(), Valid: true}
	}

	query := `
		UPDATE goals
		SET name = ?, target_metric = ?, target_value = ?, current_value = ?, deadline = ?, status = ?, updated_at = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		goal.Name,
		goal.TargetMetric,
		goal.TargetValue,
		goal.CurrentValue,
		deadline,
		goal.Status,
		goal.UpdatedAt,
		goal.ID,
	)
	if err != nil {
		return nil, apierror.NewPersistenceError("update goal", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return nil, apierror.NewPersistenceError("update goal", err)
	}
	if affected == 0 {
		return nil, nil
	}

	return goal, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGoal(row rowScanner) (*models.Goal, error) {
	var (
		goal     models.Goal
		deadline sql.NullString
	)

	if err := row.Scan(
		&goal.ID,
		&goal.Name,
		&goal.TargetMetric,
		&goal.TargetValue,
		&goal.CurrentValue,
		&deadline,
		&goal.Status,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	); err != nil {
		return nil, err
	}

	if deadline.Valid && deadline.String != "" {
		d, err := models.ParseDateKey(deadline.String)
		if err != nil {
			return nil, err
		}
		goal.Deadline = &d
	}

	return &goal, nil
}
