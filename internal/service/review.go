package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/event"
	"github.com/elopinion/elopinion/internal/moderation"
	"github.com/elopinion/elopinion/internal/rating"
	"github.com/elopinion/elopinion/internal/repository"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// ReviewService implements the review submission state machine. Each
// submission is moderated synchronously and lands in a terminal status;
// approval runs the rating engine exactly once inside the persistence
// transaction.
type ReviewService struct {
	reviews   repository.ReviewRepository
	products  repository.ProductRepository
	moderator *moderation.Moderator
	engine    *rating.Engine
	producer  *event.Producer
	logger    *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(
	reviews repository.ReviewRepository,
	products repository.ProductRepository,
	moderator *moderation.Moderator,
	engine *rating.Engine,
	producer *event.Producer,
	logger *slog.Logger,
) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		products:  products,
		moderator: moderator,
		engine:    engine,
		producer:  producer,
		logger:    logger,
	}
}

// SubmitReviewInput holds the parameters for submitting a review.
type SubmitReviewInput struct {
	ProductAID         string
	ProductBID         string
	PreferredProductID string
	UserID             string
	Justification      string
	AllowComments      bool
}

// Submit validates the comparison, moderates the justification, and persists
// the review in its terminal status. Approved submissions update both product
// scores atomically; rejected submissions never touch scores.
func (s *ReviewService) Submit(ctx context.Context, input *SubmitReviewInput) (*domain.Review, error) {
	if input.ProductAID == "" || input.ProductBID == "" || input.PreferredProductID == "" {
		return nil, apperrors.InvalidInput("product_a_id, product_b_id and preferred_product_id are required")
	}
	if input.ProductAID == input.ProductBID {
		return nil, apperrors.InvalidInput("a review must compare two distinct products")
	}

	productA, err := s.products.GetByID(ctx, input.ProductAID)
	if err != nil {
		return nil, fmt.Errorf("resolve product A: %w", err)
	}
	productB, err := s.products.GetByID(ctx, input.ProductBID)
	if err != nil {
		return nil, fmt.Errorf("resolve product B: %w", err)
	}

	if productA.Category != productB.Category {
		return nil, apperrors.InvalidInput("compared products must share a category")
	}
	if input.PreferredProductID != input.ProductAID && input.PreferredProductID != input.ProductBID {
		return nil, apperrors.InvalidInput("preferred_product_id must be one of the compared products")
	}

	now := time.Now().UTC()
	review := &domain.Review{
		ID:                 uuid.New().String(),
		ProductAID:         input.ProductAID,
		ProductBID:         input.ProductBID,
		PreferredProductID: input.PreferredProductID,
		UserID:             input.UserID,
		Category:           productA.Category,
		Justification:      input.Justification,
		AllowComments:      input.AllowComments,
		Status:             domain.ReviewStatusPending,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if s.moderator.Moderate(input.Justification) == moderation.VerdictReject {
		review.Status = domain.ReviewStatusRejected
		if err := s.reviews.Create(ctx, review); err != nil {
			return nil, fmt.Errorf("persist rejected review: %w", err)
		}

		s.publishModerated(ctx, review)
		s.logger.InfoContext(ctx, "review rejected by moderation",
			slog.String("review_id", review.ID),
			slog.String("user_id", review.UserID),
		)
		return review, nil
	}

	review.Status = domain.ReviewStatusApproved
	aWon := input.PreferredProductID == input.ProductAID

	var oldScoreA, oldScoreB int
	newScoreA, newScoreB, err := s.reviews.CreateApproved(ctx, review, func(scoreA, scoreB int) (int, int) {
		oldScoreA, oldScoreB = scoreA, scoreB
		return s.engine.Update(scoreA, scoreB, aWon)
	})
	if err != nil {
		return nil, fmt.Errorf("persist approved review: %w", err)
	}

	s.publishModerated(ctx, review)
	s.publishScoreUpdated(ctx, review.ProductAID, oldScoreA, newScoreA, review.ID)
	s.publishScoreUpdated(ctx, review.ProductBID, oldScoreB, newScoreB, review.ID)

	s.logger.InfoContext(ctx, "review approved",
		slog.String("review_id", review.ID),
		slog.String("category", review.Category),
		slog.Int("score_a", newScoreA),
		slog.Int("score_b", newScoreB),
	)

	return review, nil
}

// GetReview retrieves a review by its ID.
func (s *ReviewService) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review by id: %w", err)
	}
	return review, nil
}

// Delete removes a review. Only the author may delete their own review.
func (s *ReviewService) Delete(ctx context.Context, id, actorID string) error {
	review, err := s.reviews.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get review for delete: %w", err)
	}

	if review.UserID != actorID {
		return apperrors.Forbidden("only the author may delete a review")
	}

	if err := s.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.InfoContext(ctx, "review deleted",
		slog.String("review_id", id),
		slog.String("user_id", actorID),
	)

	return nil
}

func (s *ReviewService) publishModerated(ctx context.Context, review *domain.Review) {
	if err := s.producer.PublishReviewModerated(ctx, review); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish review moderation event",
			slog.String("review_id", review.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}
}

func (s *ReviewService) publishScoreUpdated(ctx context.Context, productID string, oldScore, newScore int, reviewID string) {
	if err := s.producer.PublishScoreUpdated(ctx, productID, oldScore, newScore, reviewID); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish product.score_updated event",
			slog.String("product_id", productID),
			slog.String("error", err.Error()),
		)
	}
}
