package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elopinion/elopinion/internal/domain"
	"github.com/elopinion/elopinion/internal/event"
	"github.com/elopinion/elopinion/internal/repository"
	apperrors "github.com/elopinion/elopinion/pkg/errors"
)

// DefaultTopN is the ranking size used when a report request does not ask
// for a specific one.
const DefaultTopN = 5

// ReportService aggregates report metrics and manages user-filed review
// reports. Report resolution is an admin action and never touches scores.
type ReportService struct {
	reports  repository.ReportRepository
	reviews  repository.ReviewRepository
	products repository.ProductRepository
	users    repository.UserRepository
	producer *event.Producer
	logger   *slog.Logger
}

// NewReportService creates a new report service.
func NewReportService(
	reports repository.ReportRepository,
	reviews repository.ReviewRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	producer *event.Producer,
	logger *slog.Logger,
) *ReportService {
	return &ReportService{
		reports:  reports,
		reviews:  reviews,
		products: products,
		users:    users,
		producer: producer,
		logger:   logger,
	}
}

// GenerateReportInput holds the parameters for generating report metrics.
type GenerateReportInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	TopN      int
}

// Generate produces the report aggregate: the top-N products by score and the
// monthly average-score evolution across approved reviews. The optional date
// range restricts which reviews feed the evolution series.
func (s *ReportService) Generate(ctx context.Context, input *GenerateReportInput) (*domain.ReportMetrics, error) {
	topN := input.TopN
	if topN <= 0 {
		topN = DefaultTopN
	}
	if input.StartDate != nil && input.EndDate != nil && input.EndDate.Before(*input.StartDate) {
		return nil, apperrors.InvalidInput("end date must not precede start date")
	}

	products, err := s.products.TopByScore(ctx, topN)
	if err != nil {
		return nil, fmt.Errorf("load top products: %w", err)
	}

	topProducts := make([]domain.TopProduct, len(products))
	for i, p := range products {
		topProducts[i] = domain.TopProduct{Name: p.Name, Score: p.EloScore}
	}

	evolution, err := s.reviews.ScoreEvolution(ctx, input.StartDate, input.EndDate)
	if err != nil {
		return nil, fmt.Errorf("load score evolution: %w", err)
	}

	return &domain.ReportMetrics{
		TopProducts:    topProducts,
		ScoreEvolution: evolution,
	}, nil
}

// FileReportInput holds the parameters for reporting a review.
type FileReportInput struct {
	ReviewID   string
	ReporterID string
	Reason     string
}

// File records a user report against a review. The report starts pending.
func (s *ReportService) File(ctx context.Context, input *FileReportInput) (*domain.Report, error) {
	if input.Reason == "" {
		return nil, apperrors.InvalidInput("report reason is required")
	}

	if _, err := s.reviews.GetByID(ctx, input.ReviewID); err != nil {
		return nil, fmt.Errorf("resolve reported review: %w", err)
	}

	report := &domain.Report{
		ID:         uuid.New().String(),
		ReviewID:   input.ReviewID,
		ReporterID: input.ReporterID,
		Reason:     input.Reason,
		Status:     domain.ReportStatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}

	if err := s.producer.PublishReportFiled(ctx, report); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish report.filed event",
			slog.String("report_id", report.ID),
			slog.String("error", err.Error()),
		)
		// Do not fail the operation if event publishing fails.
	}

	s.logger.InfoContext(ctx, "report filed",
		slog.String("report_id", report.ID),
		slog.String("review_id", report.ReviewID),
	)

	return report, nil
}

// Resolve sets a report's terminal status. Only admins may resolve reports,
// and the resolution is independent of the rating pipeline.
func (s *ReportService) Resolve(ctx context.Context, id, status, actorID string) (*domain.Report, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("resolve acting user: %w", err)
	}
	if !actor.IsAdmin() {
		return nil, apperrors.Forbidden("only admins may resolve reports")
	}

	if !domain.IsValidReportResolution(status) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid report resolution %q", status))
	}

	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get report for resolution: %w", err)
	}

	if err := s.reports.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update report status: %w", err)
	}
	report.Status = status

	s.logger.InfoContext(ctx, "report resolved",
		slog.String("report_id", id),
		slog.String("status", status),
		slog.String("resolved_by", actorID),
	)

	return report, nil
}
