package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/event"
	"github.com/elopinion/elopinion/internal/repository"
	"github.com/elopinion/elopinion/pkg/httputil"
	pkgkafka "github.com/elopinion/elopinion/pkg/kafka"
)

// ============================================================================
// Mock repositories
// ============================================================================

type mockProductRepository struct {
	mock.Mock
}

func (m *mockProductRepository) Create(ctx context.Context, product *domain.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *mockProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *mockProductRepository) TopByScore(ctx context.Context, n int) ([]domain.Product, error) {
	args := m.Called(ctx, n)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

type mockReviewRepository struct {
	mock.Mock
}

func (m *mockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *mockReviewRepository) CreateApproved(ctx context.Context, review *domain.Review, update repository.ScoreUpdate) (int, int, error) {
	args := m.Called(ctx, review, update)
	return args.Int(0), args.Int(1), args.Error(2)
}

func (m *mockReviewRepository) GetByID(ctx context.Context, id string) (*domain.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Review), args.Error(1)
}

func (m *mockReviewRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockReviewRepository) List(ctx context.Context, filter repository.ReviewFilter) ([]domain.Review, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *mockReviewRepository) ScoreEvolution(ctx context.Context, start, end *time.Time) ([]domain.MonthlyAverage, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MonthlyAverage), args.Error(1)
}

type mockCommentRepository struct {
	mock.Mock
}

func (m *mockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *mockCommentRepository) ListByReviewIDs(ctx context.Context, reviewIDs []string) (map[string][]domain.Comment, error) {
	args := m.Called(ctx, reviewIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string][]domain.Comment), args.Error(1)
}

type mockReportRepository struct {
	mock.Mock
}

func (m *mockReportRepository) Create(ctx context.Context, report *domain.Report) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *mockReportRepository) GetByID(ctx context.Context, id string) (*domain.Report, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Report), args.Error(1)
}

func (m *mockReportRepository) UpdateStatus(ctx context.Context, id, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// ============================================================================
// Test helpers
// ============================================================================

const (
	testUserID     = "550e8400-e29b-41d4-a716-446655440100"
	testProductAID = "550e8400-e29b-41d4-a716-446655440001"
	testProductBID = "550e8400-e29b-41d4-a716-446655440002"
	testReviewID   = "550e8400-e29b-41d4-a716-446655440200"
	testReportID   = "550e8400-e29b-41d4-a716-446655440300"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testEventProducer() *event.Producer {
	logger := testLogger()
	kafkaCfg := pkgkafka.DefaultProducerConfig([]string{"localhost:9092"})
	kafkaProducer := pkgkafka.NewProducer(kafkaCfg, logger)
	return event.NewProducer(kafkaProducer, logger)
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) httputil.Response {
	t.Helper()
	var resp httputil.Response
	err := json.NewDecoder(rec.Body).Decode(&resp)
	require.NoError(t, err)
	return resp
}

// sampleReview returns an approved domain.Review suitable for test assertions.
func sampleReview() *domain.Review {
	now := time.Now().UTC()
	return &domain.Review{
		ID:                 testReviewID,
		ProductAID:         testProductAID,
		ProductBID:         testProductBID,
		PreferredProductID: testProductAID,
		UserID:             testUserID,
		Category:           domain.CategoryPelicula,
		Justification:      "mejor ritmo y mejor final",
		AllowComments:      true,
		Status:             domain.ReviewStatusApproved,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// sampleProduct returns a domain.Product in the given category.
func sampleProduct(id, name, category string) *domain.Product {
	now := time.Now().UTC()
	return &domain.Product{
		ID:        id,
		Name:      name,
		Category:  category,
		EloScore:  domain.DefaultEloScore,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
