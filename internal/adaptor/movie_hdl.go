package adaptor

import (
	"net/http"
	"strconv"
	"strings"

	"moview-api/internal/usecase"
	"moview-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetPopular handles GET /movies/popular (public)
func (h *MovieHandler) GetPopular(w http.ResponseWriter, r *http.Request) {
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	result, err := h.service.GetPopular(r.Context(), page)
	if err != nil {
		h.handleServiceError(w, err, "get popular movies")
		return
	}

	utils.ResponseSuccess(w, result)
}

// Search handles GET /movies/search (public)
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	page := utils.ParseInt(r.URL.Query().Get("page"), 1)

	result, err := h.service.Search(r.Context(), query, page)
	if err != nil {
		h.handleServiceError(w, err, "search movies")
		return
	}

	utils.ResponseSuccess(w, result)
}

// GetByID handles GET /movies/{id} (public)
func (h *MovieHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	movieID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Movie ID must be an integer")
		return
	}

	movie, err := h.service.GetByID(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie details")
		return
	}

	utils.ResponseSuccess(w, movie)
}

func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg)

	case strings.Contains(errMsg, "forbidden"):
		h.log.Warn(operation+" failed - forbidden", zap.Error(err))
		utils.ResponseForbidden(w, errMsg)

	case strings.Contains(errMsg, "catalog unavailable"):
		h.log.Error(operation+" failed - upstream", zap.Error(err))
		utils.ResponseBadGateway(w, "Movie catalog is unavailable")

	default:
		h.log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
