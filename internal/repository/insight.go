package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/models"
)

type insightRepository struct {
	db *sqlx.DB
}

// NewInsightRepository creates a SQLite-backed InsightRepository.
func NewInsightRepository(db *sqlx.DB) InsightRepository {
	return &insightRepository{db: db}
}

func (r *insightRepository) BulkCreate(ctx context.Context, insights []models.Insight) error {
	if len(insights) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apierror.NewPersistenceError("begin insight insert", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO insights (id, type, title, description, severity, category, data, generated_at, is_read)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, insight := range insights {
		var data sql.NullString
		if len(insight.Data) > 0 {
			payload, err := json.Marshal(insight.Data)
			if err != nil {
				return fmt.Errorf("failed to encode insight data: %w", err)
			}
			data = sql.NullString{String: string(payload), Valid: true}
		}

		if _, err := tx.ExecContext(ctx, query,
			insight.ID,
			insight.Type,
			insight.Title,
			insight.Description,
			insight.Severity,
			insight.Category,
			data,
			insight.GeneratedAt,
			insight.IsRead,
		); err != nil {
			return apierror.NewPersistenceError("insert insight", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return apierror.NewPersistenceError("commit insight insert", err)
	}

	return nil
}

func (r *insightRepository) GetAll(ctx context.Context) ([]models.Insight, error) {
	query := `
		SELECT id, type, title, description, severity, category, data, generated_at, is_read
		FROM insights ORDER BY generated_at DESC
	`
	return r.selectInsights(ctx, query)
}

func (r *insightRepository) GetByGeneratedRange(ctx context.Context, start, end models.DateKey) ([]models.Insight, error) {
	// End bound is inclusive of the whole end day.
	query := `
		SELECT id, type, title, description, severity, category, data, generated_at, is_read
		FROM insights WHERE generated_at >= ? AND generated_at < ? ORDER BY generated_at DESC
	`
	return r.selectInsights(ctx, query, start.Time(), end.AddDays(1).Time())
}

func (r *insightRepository) MarkRead(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE insights SET is_read = 1 WHERE id = ?`, id)
	if err != nil {
		return apierror.NewPersistenceError("mark insight read", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return apierror.NewPersistenceError("mark insight read", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *insightRepository) selectInsights(ctx context.Context, query string, args ...any) ([]models.Insight, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apierror.NewPersistenceError("query insights", err)
	}
	defer rows.Close()

	insights := []models.Insight{}
	for rows.Next() {
		var (
			insight     models.Insight
			data        sql.NullString
			generatedAt time.Time
		)
		if err := rows.Scan(
			&insight.ID,
			&insight.Type,
			&insight.Title,
			&insight.Description,
			&insight.Severity,
			&insight.Category,
			&data,
			&generatedAt,
			&insight.IsRead,
		); err != nil {
			return nil, apierror.NewPersistenceError("scan insight", err)
		}

		insight.GeneratedAt = generatedAt
		if data.Valid && data.String != "" {
			if err := json.Unmarshal([]byte(data.String), &insight.Data); err != nil {
				return nil, fmt.Errorf("failed to decode insight data: %w", err)
			}
		}

		insights = append(insights, insight)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.NewPersistenceError("iterate insights", err)
	}

	return insights, nil
}
