package wire

import (
	"moview-api/internal/adaptor"
	"moview-api/internal/data/repository"
	"moview-api/pkg/middleware"
	"moview-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(repo.User, config.JWT, log))

		r.Get("/auth/me", authHandler.GetMe)
		r.Post("/auth/verify-token", authHandler.VerifyToken)
	})
}
