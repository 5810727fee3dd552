package adaptor

import (
	"net/http"
	"strings"

	"moview-api/internal/dto/response"
	"moview-api/internal/usecase"
	"moview-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RecommendHandler struct {
	service usecase.RecommendService
	log     *zap.Logger
}

func NewRecommendHandler(service usecase.RecommendService, log *zap.Logger) *RecommendHandler {
	return &RecommendHandler{
		service: service,
		log:     log.With(zap.String("handler", "recommend")),
	}
}

// GetRecommendations handles GET /reviews/recommendations/{userId} (public)
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required")
		return
	}

	recommendations, err := h.service.Recommend(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get recommendations")
		return
	}

	// An empty list is a valid answer, distinct from the no-reviews 400
	utils.ResponseSuccess(w, response.RecommendationsResponse{
		Recommendations: recommendations,
	})
}

func (h *RecommendHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no reviews yet"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "catalog unavailable"):
		h.log.Error(operation+" failed - upstream", zap.Error(err))
		utils.ResponseBadGateway(w, "Movie catalog is unavailable")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
