package wire

import (
	"net/http"

	"moview-api/internal/adaptor"
	"moview-api/internal/data/repository"
	"moview-api/internal/usecase"
	"moview-api/pkg/middleware"
	"moview-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the assembled dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, catalog usecase.MovieCatalog, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, catalog, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireMovie(r, handler.Movie)
	wireReview(r, handler.Review, handler.Recommend)
	wireSentiment(r, handler.Sentiment)

	// Root and health endpoints
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"message": "Welcome to MoView API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{"status": "healthy"})
	})

	return r
}
