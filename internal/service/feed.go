package service

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/repository"
)

// Feed composition limits.
const (
	randomFeedSize       = 10
	personalizedFeedSize = 50
)

// FeedService composes review feeds. The random feed is a fresh uniform
// sample on every call; the personalized feed leads with the caller's most
// reviewed category.
type FeedService struct {
	reviews         repository.ReviewRepository
	comments        repository.CommentRepository
	includeRejected bool
	logger          *slog.Logger
}

// NewFeedService creates a new feed service. includeRejected controls whether
// rejected reviews may appear in feeds.
func NewFeedService(
	reviews repository.ReviewRepository,
	comments repository.CommentRepository,
	includeRejected bool,
	logger *slog.Logger,
) *FeedService {
	return &FeedService{
		reviews:         reviews,
		comments:        comments,
		includeRejected: includeRejected,
		logger:          logger,
	}
}

// RandomFeed returns up to ten reviews sampled uniformly without replacement,
// shuffled again so the presentation order is independent of the sample order.
func (s *FeedService) RandomFeed(ctx context.Context) ([]domain.Review, error) {
	all, err := s.reviews.List(ctx, repository.ReviewFilter{IncludeRejected: s.includeRejected})
	if err != nil {
		return nil, fmt.Errorf("load reviews for random feed: %w", err)
	}

	feed := sampleReviews(all, randomFeedSize)
	rand.Shuffle(len(feed), func(i, j int) {
		feed[i], feed[j] = feed[j], feed[i]
	})

	return feed, nil
}

// PersonalizedFeed returns a feed led by the user's most reviewed category,
// most recent first, followed by a shuffled tail of everything else. Users
// without a usable category preference get the random feed. Every entry
// carries its nested comments.
func (s *FeedService) PersonalizedFeed(ctx context.Context, userID string) ([]domain.Review, error) {
	own, err := s.reviews.List(ctx, repository.ReviewFilter{UserID: userID, IncludeRejected: true})
	if err != nil {
		return nil, fmt.Errorf("load user reviews: %w", err)
	}

	topCategory, ok := preferredCategory(own)
	if !ok {
		feed, err := s.RandomFeed(ctx)
		if err != nil {
			return nil, err
		}
		return s.attachComments(ctx, feed)
	}

	lead, err := s.reviews.List(ctx, repository.ReviewFilter{
		Category:        topCategory,
		IncludeRejected: s.includeRejected,
		Limit:           personalizedFeedSize,
	})
	if err != nil {
		return nil, fmt.Errorf("load category reviews: %w", err)
	}

	all, err := s.reviews.List(ctx, repository.ReviewFilter{IncludeRejected: s.includeRejected})
	if err != nil {
		return nil, fmt.Errorf("load remaining reviews: %w", err)
	}

	var rest []domain.Review
	for _, r := range all {
		if r.Category != topCategory {
			rest = append(rest, r)
		}
	}
	rand.Shuffle(len(rest), func(i, j int) {
		rest[i], rest[j] = rest[j], rest[i]
	})

	feed := append(lead, rest...)
	if len(feed) > personalizedFeedSize {
		feed = feed[:personalizedFeedSize]
	}

	return s.attachComments(ctx, feed)
}

// preferredCategory returns the category the user reviews most. The second
// return is false when the user has no reviews or every category is equally
// represented, in which case no preference exists.
func preferredCategory(own []domain.Review) (string, bool) {
	if len(own) == 0 {
		return "", false
	}

	counts := make(map[string]int)
	for _, r := range own {
		counts[r.Category]++
	}

	max := 0
	for _, n := range counts {
		if n > max {
			max = n
		}
	}

	var top []string
	for category, n := range counts {
		if n == max {
			top = append(top, category)
		}
	}

	// Every category tied: no real preference.
	if len(top) == len(counts) && len(counts) >= 2 {
		return "", false
	}

	// Partial tie at the top: break it at random.
	rand.Shuffle(len(top), func(i, j int) {
		top[i], top[j] = top[j], top[i]
	})
	return top[0], true
}

// sampleReviews picks up to n distinct reviews uniformly without replacement.
func sampleReviews(reviews []domain.Review, n int) []domain.Review {
	if len(reviews) <= n {
		sample := make([]domain.Review, len(reviews))
		copy(sample, reviews)
		return sample
	}

	perm := rand.Perm(len(reviews))
	sample := make([]domain.Review, 0, n)
	for _, idx := range perm[:n] {
		sample = append(sample, reviews[idx])
	}
	return sample
}

// attachComments populates the Comments field of each review in place.
func (s *FeedService) attachComments(ctx context.Context, feed []domain.Review) ([]domain.Review, error) {
	if len(feed) == 0 {
		return []domain.Review{}, nil
	}

	ids := make([]string, len(feed))
	for i, r := range feed {
		ids[i] = r.ID
	}

	grouped, err := s.comments.ListByReviewIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load feed comments: %w", err)
	}

	for i := range feed {
		feed[i].Comments = grouped[feed[i].ID]
	}

	return feed, nil
}
