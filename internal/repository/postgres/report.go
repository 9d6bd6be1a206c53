package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/pkg/database"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// ReportRepository implements repository.ReportRepository using PostgreSQL.
type ReportRepository struct {
	db database.DBTX
}

// NewReportRepository creates a new PostgreSQL-backed report repository.
func NewReportRepository(db database.DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// Create inserts a new report into the database.
func (r *ReportRepository) Create(ctx context.Context, rep *domain.Report) error {
	query := `
		INSERT INTO reports (id, review_id, reporter_id, reason, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.db.Exec(ctx, query,
		rep.ID,
		rep.ReviewID,
		rep.ReporterID,
		rep.Reason,
		rep.Status,
		rep.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}

	return nil
}

// GetByID retrieves a report by its ID.
func (r *ReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	query := `
		SELECT id, review_id, reporter_id, reason, status, created_at
		FROM reports
		WHERE id = $1`

	var rep domain.Report
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rep.ID,
		&rep.ReviewID,
		&rep.ReporterID,
		&rep.Reason,
		&rep.Status,
		&rep.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan report: %w", err)
	}

	return &rep, nil
}

// UpdateStatus sets the resolution status of a report.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id, status string) error {
	ct, err := r.db.Exec(ctx,
		`UPDATE reports SET status = $1 WHERE id = $2`,
		status, id,
	)
	if err != nil {
		return fmt.Errorf("update report status: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("report", id)
	}

	return nil
}
