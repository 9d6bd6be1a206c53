package event

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/elopinion/elopinion/internal/domain"
	pkgkafka "github.com/elopinion/elopinion/pkg/kafka"
)

// Kafka topic constants for rating domain events.
const (
	TopicReviewApproved      = "elopinion.review.approved"
	TopicReviewRejected      = "elopinion.review.rejected"
	TopicProductScoreUpdated = "elopinion.product.score_updated"
	TopicReportFiled         = "elopinion.report.filed"
)

// Aggregate type constants.
const (
	AggregateTypeReview  = "review"
	AggregateTypeProduct = "product"
	AggregateTypeReport  = "report"
)

// Source identifier for events originating from this service.
const SourceRatingService = "elopinion-service"

// ReviewModeratedData is the payload for review.approved and review.rejected events.
type ReviewModeratedData struct {
	ID                 string `json:"id"`
	ProductAID         string `json:"product_a_id"`
	ProductBID         string `json:"product_b_id"`
	PreferredProductID string `json:"preferred_product_id"`
	UserID             string `json:"user_id"`
	Category           string `json:"category"`
	Status             string `json:"status"`
}

// ScoreUpdatedData is the payload for a product.score_updated event.
type ScoreUpdatedData struct {
	ProductID string `json:"product_id"`
	OldScore  int    `json:"old_score"`
	NewScore  int    `json:"new_score"`
	ReviewID  string `json:"review_id"`
}

// ReportFiledData is the payload for a report.filed event.
type ReportFiledData struct {
	ID         string `json:"id"`
	ReviewID   string `json:"review_id"`
	ReporterID string `json:"reporter_id"`
	Reason     string `json:"reason"`
}

// Producer publishes rating domain events to Kafka.
type Producer struct {
	kafka  *pkgkafka.Producer
	logger *slog.Logger
}

// NewProducer creates a new event producer for the rating service.
func NewProducer(kafka *pkgkafka.Producer, logger *slog.Logger) *Producer {
	return &Producer{
		kafka:  kafka,
		logger: logger,
	}
}

// PublishReviewModerated publishes review.approved or review.rejected
// depending on the review's terminal status.
func (p *Producer) PublishReviewModerated(ctx context.Context, review *domain.Review) error {
	topic := TopicReviewApproved
	if review.Status == domain.ReviewStatusRejected {
		topic = TopicReviewRejected
	}

	data := ReviewModeratedData{
		ID:                 review.ID,
		ProductAID:         review.ProductAID,
		ProductBID:         review.ProductBID,
		PreferredProductID: review.PreferredProductID,
		UserID:             review.UserID,
		Category:           review.Category,
		Status:             review.Status,
	}

	event, err := pkgkafka.NewEvent(topic, review.ID, AggregateTypeReview, SourceRatingService, data)
	if err != nil {
		return fmt.Errorf("create review moderation event: %w", err)
	}

	if err := p.kafka.Publish(ctx, topic, event); err != nil {
		return fmt.Errorf("publish review moderation event: %w", err)
	}

	p.logger.DebugContext(ctx, "published review moderation event",
		slog.String("review_id", review.ID),
		slog.String("status", review.Status),
	)

	return nil
}

// PublishScoreUpdated publishes a product.score_updated event.
func (p *Producer) PublishScoreUpdated(ctx context.Context, productID string, oldScore, newScore int, reviewID string) error {
	data := ScoreUpdatedData{
		ProductID: productID,
		OldScore:  oldScore,
		NewScore:  newScore,
		ReviewID:  reviewID,
	}

	event, err := pkgkafka.NewEvent(TopicProductScoreUpdated, productID, AggregateTypeProduct, SourceRatingService, data)
	if err != nil {
		return fmt.Errorf("create product.score_updated event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicProductScoreUpdated, event); err != nil {
		return fmt.Errorf("publish product.score_updated event: %w", err)
	}

	p.logger.DebugContext(ctx, "published product.score_updated event",
		slog.String("product_id", productID),
		slog.Int("new_score", newScore),
	)

	return nil
}

// PublishReportFiled publishes a report.filed event.
func (p *Producer) PublishReportFiled(ctx context.Context, report *domain.Report) error {
	data := ReportFiledData{
		ID:         report.ID,
		ReviewID:   report.ReviewID,
		ReporterID: report.ReporterID,
		Reason:     report.Reason,
	}

	event, err := pkgkafka.NewEvent(TopicReportFiled, report.ID, AggregateTypeReport, SourceRatingService, data)
	if err != nil {
		return fmt.Errorf("create report.filed event: %w", err)
	}

	if err := p.kafka.Publish(ctx, TopicReportFiled, event); err != nil {
		return fmt.Errorf("publish report.filed event: %w", err)
	}

	p.logger.DebugContext(ctx, "published report.filed event",
		slog.String("report_id", report.ID),
		slog.String("review_id", report.ReviewID),
	)

	return nil
}
