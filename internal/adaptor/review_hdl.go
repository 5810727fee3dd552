package adaptor

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"moview-api/internal/dto/request"
	"moview-api/internal/usecase"
	"moview-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /reviews/
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body")
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, utils.FormatValidationErrors(validationErrors))
		return
	}

	review, err := h.service.CreateReview(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, review)
}

// GetMovieReviews handles GET /reviews/{movieId} (public)
func (h *ReviewHandler) GetMovieReviews(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer")
		return
	}

	reviews, err := h.service.GetMovieReviews(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetUserReviews handles GET /reviews/user/{userId} (public)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, reviews)
}

// GetMovieStats handles GET /reviews/stats/{movieId} (public)
func (h *ReviewHandler) GetMovieStats(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "movieId"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer")
		return
	}

	stats, err := h.service.GetMovieStats(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie stats")
		return
	}

	utils.ResponseSuccess(w, stats)
}

func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already reviewed"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
