package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/elopinion/elopinion/internal/service"
	"github.com/elopinion/elopinion/pkg/health"
	"github.com/elopinion/elopinion/pkg/middleware"
)

// NewRouter creates a chi router with all rating service routes registered.
func NewRouter(
	reviewService *service.ReviewService,
	feedService *service.FeedService,
	productService *service.ProductService,
	commentService *service.CommentService,
	reportService *service.ReportService,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(CORS)
	r.Use(middleware.Recovery(logger))
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("elopinion"))

	// Health check endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
		promhttp.Handler().ServeHTTP(w, r)
	})

	reviewHandler := NewReviewHandler(reviewService, logger)
	feedHandler := NewFeedHandler(feedService, logger)
	productHandler := NewProductHandler(productService, logger)
	commentHandler := NewCommentHandler(commentService, logger)
	reportHandler := NewReportHandler(reportService, logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Route("/reviews", func(r chi.Router) {
			r.Use(UserIDFromHeader)
			r.Post("/", reviewHandler.SubmitReview)
			r.Delete("/{id}", reviewHandler.DeleteReview)
		})

		r.Route("/feed", func(r chi.Router) {
			r.Get("/", feedHandler.RandomFeed)
			r.With(UserIDFromHeader).Get("/personalized", feedHandler.PersonalizedFeed)
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", productHandler.ListProducts)
			r.Post("/", productHandler.CreateProduct)
		})

		r.Route("/comments", func(r chi.Router) {
			r.Use(UserIDFromHeader)
			r.Post("/", commentHandler.CreateComment)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Use(UserIDFromHeader)
			r.Post("/", reportHandler.FileReport)
			r.Patch("/{id}", reportHandler.ResolveReport)
		})

		r.Post("/analytics/report", reportHandler.GenerateReport)
	})

	return r
}
