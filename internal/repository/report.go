package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/momentumhq/momentum-backend/internal/apierror"
	"github.com/momentumhq/momentum-backend/internal/models"
)

type reportRepository struct {
	db *sqlx.DB
}

// NewReportRepository creates a SQLite-backed ReportRepository.
// Reports are immutable: the full document is stored as a JSON body next
// to a few indexed columns, and there is no update path.
func NewReportRepository(db *sqlx.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	body, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	query := `
		INSERT INTO reports (id, period, start_date, end_date, body, generated_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	if _, err := r.db.ExecContext(ctx, query,
		report.ID,
		report.Period,
		report.StartDate,
		report.EndDate,
		string(body),
		report.GeneratedAt,
	); err != nil {
		return apierror.NewPersistenceError("insert report", err)
	}

	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	var body string
	err := r.db.QueryRowContext(ctx, `SELECT body FROM reports WHERE id = ?`, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, apierror.NewPersistenceError("get report", err)
	}

	var report models.Report
	if err := json.Unmarshal([]byte(body), &report); err != nil {
		return nil, fmt.Errorf("failed to decode report: %w", err)
	}

	return &report, nil
}

func (r *reportRepository) List(ctx context.Context) ([]models.Report, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT body FROM reports ORDER BY generated_at DESC`)
	if err != nil {
		return nil, apierror.NewPersistenceError("list reports", err)
	}
	defer rows.Close()

	reports := []models.Report{}
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, apierror.NewPersistenceError("scan report", err)
		}

		var report models.Report
		if err := json.Unmarshal([]byte(body), &report); err != nil {
			return nil, fmt.Errorf("failed to decode report: %w", err)
		}
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, apierror.NewPersistenceError("iterate reports", err)
	}

	return reports, nil
}
