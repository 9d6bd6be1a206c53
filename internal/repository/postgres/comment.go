package postgres

import (
	"context"
	"fmt"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/pkg/database"
)

// CommentRepository implements repository.CommentRepository using PostgreSQL.
type CommentRepository struct {
	db database.DBTX
}

// NewCommentRepository creates a new PostgreSQL-backed comment repository.
func NewCommentRepository(db database.DBTX) *CommentRepository {
	return &CommentRepository{db: db}
}

// Create inserts a new comment into the database.
func (r *CommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	query := `
		INSERT INTO comments (id, review_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.db.Exec(ctx, query,
		c.ID,
		c.ReviewID,
		c.UserID,
		c.Text,
		c.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}

	return nil
}

// ListByReviewIDs returns comments for the given reviews grouped by review
// id, oldest first within each review.
func (r *CommentRepository) ListByReviewIDs(ctx context.Context, reviewIDs []string) (map[string][]domain.Comment, error) {
	grouped := make(map[string][]domain.Comment, len(reviewIDs))
	if len(reviewIDs) == 0 {
		return grouped, nil
	}

	query := `
		SELECT id, review_id, user_id, text, created_at
		FROM comments
		WHERE review_id = ANY($1)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, query, reviewIDs)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.ID,
			&c.ReviewID,
			&c.UserID,
			&c.Text,
			&c.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		grouped[c.ReviewID] = append(grouped[c.ReviewID], c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}

	return grouped, nil
}
