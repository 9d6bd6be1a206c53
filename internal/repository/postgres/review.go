package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/repository"
	"github.com/elopinion/elopinion/pkg/database"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	db database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(db database.DBTX) *ReviewRepository {
	return &ReviewRepository{db: db}
}

const insertReviewQuery = `
	INSERT INTO reviews (
		id, product_a_id, product_b_id, preferred_product_id, user_id,
		category, justification, allow_comments, status, created_at, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

// Create inserts a review without touching product scores.
func (r *ReviewRepository) Create(ctx context.Context, rev *domain.Review) error {
	_, err := r.db.Exec(ctx, insertReviewQuery,
		rev.ID,
		rev.ProductAID,
		rev.ProductBID,
		rev.PreferredProductID,
		rev.UserID,
		rev.Category,
		rev.Justification,
		rev.AllowComments,
		rev.Status,
		rev.CreatedAt,
		rev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert review: %w", err)
	}

	return nil
}

// CreateApproved inserts an approved review and updates the scores of both
// products in one transaction. The product rows are locked in ascending id
// order to avoid deadlocks between concurrent approvals, and the update
// callback sees the scores as they are at lock time.
func (r *ReviewRepository) CreateApproved(ctx context.Context, rev *domain.Review, update repository.ScoreUpdate) (int, int, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, 0, fmt.Errorf("begin approval transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	firstID, secondID := rev.ProductAID, rev.ProductBID
	if secondID < firstID {
		firstID, secondID = secondID, firstID
	}

	scores := make(map[string]int, 2)
	for _, id := range []string{firstID, secondID} {
		var score int
		err := tx.QueryRow(ctx,
			`SELECT elo_score FROM products WHERE id = $1 FOR UPDATE`, id,
		).Scan(&score)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return 0, 0, apperrors.NotFound("product", id)
			}
			return 0, 0, fmt.Errorf("lock product %s: %w", id, err)
		}
		scores[id] = score
	}

	newScoreA, newScoreB := update(scores[rev.ProductAID], scores[rev.ProductBID])

	now := time.Now().UTC()
	for _, p := range []struct {
		id    string
		score int
	}{
		{rev.ProductAID, newScoreA},
		{rev.ProductBID, newScoreB},
	} {
		if _, err := tx.Exec(ctx,
			`UPDATE products SET elo_score = $1, updated_at = $2 WHERE id = $3`,
			p.score, now, p.id,
		); err != nil {
			return 0, 0, fmt.Errorf("update product score %s: %w", p.id, err)
		}
	}

	if _, err := tx.Exec(ctx, insertReviewQuery,
		rev.ID,
		rev.ProductAID,
		rev.ProductBID,
		rev.PreferredProductID,
		rev.UserID,
		rev.Category,
		rev.Justification,
		rev.AllowComments,
		rev.Status,
		rev.CreatedAt,
		rev.UpdatedAt,
	); err != nil {
		return 0, 0, fmt.Errorf("insert review: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, 0, fmt.Errorf("commit approval transaction: %w", err)
	}

	return newScoreA, newScoreB, nil
}

// GetByID retrieves a review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	query := `
		SELECT id, product_a_id, product_b_id, preferred_product_id, user_id,
			   category, justification, allow_comments, status, created_at, updated_at
		FROM reviews
		WHERE id = $1`

	var rev domain.Review
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rev.ID,
		&rev.ProductAID,
		&rev.ProductBID,
		&rev.PreferredProductID,
		&rev.UserID,
		&rev.Category,
		&rev.Justification,
		&rev.AllowComments,
		&rev.Status,
		&rev.CreatedAt,
		&rev.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("scan review: %w", err)
	}

	return &rev, nil
}

// Delete removes a review by its ID.
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	ct, err := r.db.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", id)
	}

	return nil
}

// List returns reviews matching the given filter, most recent first.
func (r *ReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	var (
		conditions []string
		args       []any
		argIndex   = 1
	)

	if !filter.IncludeRejected {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
		args = append(args, domain.ReviewStatusApproved)
		argIndex++
	}

	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argIndex))
		args = append(args, filter.Category)
		argIndex++
	}

	if filter.UserID != "" {
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", argIndex))
		args = append(args, filter.UserID)
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	limitClause := ""
	if filter.Limit > 0 {
		limitClause = fmt.Sprintf("LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	query := fmt.Sprintf(`
		SELECT id, product_a_id, product_b_id, preferred_product_id, user_id,
			   category, justification, allow_comments, status, created_at, updated_at
		FROM reviews
		%s
		ORDER BY created_at DESC
		%s`,
		whereClause, limitClause,
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(
			&rev.ID,
			&rev.ProductAID,
			&rev.ProductBID,
			&rev.PreferredProductID,
			&rev.UserID,
			&rev.Category,
			&rev.Justification,
			&rev.AllowComments,
			&rev.Status,
			&rev.CreatedAt,
			&rev.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}

// ScoreEvolution returns the per-month average score of products that took
// part in approved reviews, ordered by month ascending.
func (r *ReviewRepository) ScoreEvolution(ctx context.Context, start, end *time.Time) ([]domain.MonthlyAverage, error) {
	var (
		conditions = []string{"r.status = $1"}
		args       = []any{domain.ReviewStatusApproved}
		argIndex   = 2
	)

	if start != nil {
		conditions = append(conditions, fmt.Sprintf("r.updated_at >= $%d", argIndex))
		args = append(args, *start)
		argIndex++
	}

	if end != nil {
		conditions = append(conditions, fmt.Sprintf("r.updated_at <= $%d", argIndex))
		args = append(args, *end)
	}

	query := fmt.Sprintf(`
		SELECT to_char(r.updated_at, 'YYYY-MM') AS month,
			   AVG((pa.elo_score + pb.elo_score) / 2.0) AS average_score
		FROM reviews r
		JOIN products pa ON pa.id = r.product_a_id
		JOIN products pb ON pb.id = r.product_b_id
		WHERE %s
		GROUP BY month
		ORDER BY month ASC`,
		strings.Join(conditions, " AND "),
	)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("score evolution: %w", err)
	}
	defer rows.Close()

	var months []domain.MonthlyAverage
	for rows.Next() {
		var m domain.MonthlyAverage
		if err := rows.Scan(&m.Month, &m.AverageScore); err != nil {
			return nil, fmt.Errorf("scan evolution row: %w", err)
		}
		months = append(months, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate evolution rows: %w", err)
	}

	if months == nil {
		months = []domain.MonthlyAverage{}
	}

	return months, nil
}
