package http

import (
	"log/slog"
	"net/http"

	"github.com/elopinion/elopinion/internal/service"
	"github.com/elopinion/elopinion/pkg/httputil"
)

// FeedHandler handles HTTP requests for feed endpoints.
type FeedHandler struct {
	service *service.FeedService
	logger  *slog.Logger
}

// NewFeedHandler creates a new feed HTTP handler.
func NewFeedHandler(svc *service.FeedService, logger *slog.Logger) *FeedHandler {
	return &FeedHandler{
		service: svc,
		logger:  logger,
	}
}

// RandomFeed handles GET /api/v1/feed
func (h *FeedHandler) RandomFeed(w http.ResponseWriter, r *http.Request) {
	feed, err := h.service.RandomFeed(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: feed})
}

// PersonalizedFeed handles GET /api/v1/feed/personalized
func (h *FeedHandler) PersonalizedFeed(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromContext(r.Context())
	if !ok {
		httputil.WriteJSON(w, http.StatusUnauthorized, httputil.Response{
			Error: &httputil.ErrorResponse{Code: "UNAUTHORIZED", Message: "authentication required"},
		})
		return
	}

	feed, err := h.service.PersonalizedFeed(r.Context(), userID)
	if err != nil {
		httputil.WriteError(w, r, err, h.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: feed})
}
