package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/repository"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// CommentService implements commenting on reviews.
type CommentService struct {
	comments repository.CommentRepository
	reviews  repository.ReviewRepository
	logger   *slog.Logger
}

// NewCommentService creates a new comment service.
func NewCommentService(
	comments repository.CommentRepository,
	reviews repository.ReviewRepository,
	logger *slog.Logger,
) *CommentService {
	return &CommentService{
		comments: comments,
		reviews:  reviews,
		logger:   logger,
	}
}

// CreateCommentInput holds the parameters for commenting on a review.
type CreateCommentInput struct {
	ReviewID string
	UserID   string
	Text     string
}

// CreateComment attaches a comment to a review. The review author may have
// disabled comments, in which case the operation is forbidden.
func (s *CommentService) CreateComment(ctx context.Context, input *CreateCommentInput) (*domain.Comment, error) {
	if input.Text == "" {
		return nil, apperrors.InvalidInput("comment text is required")
	}

	review, err := s.reviews.GetByID(ctx, input.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("resolve commented review: %w", err)
	}

	if !review.AllowComments {
		return nil, apperrors.Forbidden("comments are disabled for this review")
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		ReviewID:  input.ReviewID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.logger.InfoContext(ctx, "comment created",
		slog.String("comment_id", comment.ID),
		slog.String("review_id", comment.ReviewID),
	)

	return comment, nil
}
