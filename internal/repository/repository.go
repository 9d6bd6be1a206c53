package repository

import (
	"context"
	"time"

	"github.com/elopinion/elopinion/internal/domain"
)

// ReviewFilter defines filter criteria for listing reviews.
type ReviewFilter struct {
	// Category restricts results to one category, most recent first.
	Category string
	// UserID restricts results to one author.
	UserID string
	// IncludeRejected includes rejected reviews when true. Approved reviews
	// are always included; pending is never persisted.
	IncludeRejected bool
	// Limit caps the number of rows; zero means no cap.
	Limit int
}

// ScoreUpdate computes the new scores for the two products of a review from
// their current scores, read under lock inside the approval transaction.
type ScoreUpdate func(scoreA, scoreB int) (newScoreA, newScoreB int)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create inserts a new product into the store.
	Create(ctx context.Context, product *domain.Product) error

	// GetByID retrieves a product by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Product, error)

	// List returns all products ordered by name.
	List(ctx context.Context) ([]domain.Product, error)

	// TopByScore returns the n highest-rated products, ordered by score
	// descending with ties broken by id ascending.
	TopByScore(ctx context.Context, n int) ([]domain.Product, error)
}

// ReviewRepository defines the interface for review persistence operations.
type ReviewRepository interface {
	// Create inserts a review without touching product scores. Used for the
	// rejected path.
	Create(ctx context.Context, review *domain.Review) error

	// CreateApproved inserts an approved review and applies the score update
	// to both products in a single transaction. The update callback receives
	// the current scores of product A and product B and returns the new
	// ones. Returns the scores actually written.
	CreateApproved(ctx context.Context, review *domain.Review, update ScoreUpdate) (int, int, error)

	// GetByID retrieves a review by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Review, error)

	// Delete removes a review from the store by its identifier.
	Delete(ctx context.Context, id string) error

	// List returns reviews matching the given filter.
	List(ctx context.Context, filter ReviewFilter) ([]domain.Review, error)

	// ScoreEvolution returns the per-month average score of the products
	// participating in approved reviews, ordered by month ascending. The
	// optional bounds restrict reviews by their last update timestamp.
	ScoreEvolution(ctx context.Context, start, end *time.Time) ([]domain.MonthlyAverage, error)
}

// CommentRepository defines the interface for comment persistence operations.
type CommentRepository interface {
	// Create inserts a new comment into the store.
	Create(ctx context.Context, comment *domain.Comment) error

	// ListByReviewIDs returns comments for the given reviews, grouped by
	// review id, oldest first.
	ListByReviewIDs(ctx context.Context, reviewIDs []string) (map[string][]domain.Comment, error)
}

// ReportRepository defines the interface for report persistence operations.
type ReportRepository interface {
	// Create inserts a new report into the store.
	Create(ctx context.Context, report *domain.Report) error

	// GetByID retrieves a report by its unique identifier.
	GetByID(ctx context.Context, id string) (*domain.Report, error)

	// UpdateStatus sets the resolution status of a report.
	UpdateStatus(ctx context.Context, id, status string) error
}

// UserRepository resolves user identities supplied by the upstream identity
// provider.
type UserRepository interface {
	// GetByID retrieves a user, including the optional profile relation.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
