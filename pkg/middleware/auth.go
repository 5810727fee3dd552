package middleware

import (
	"net/http"
	"strings"

	"moview-api/internal/data/repository"
	"moview-api/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Auth validates the bearer access token and loads the user into the request context
func Auth(userRepo repository.UserRepository, jwtConfig utils.JWTConfig, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseAccessToken(parts[1], jwtConfig)
			if err != nil {
				logger.Warn("Invalid or expired token", zap.Error(err))
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			// Token may outlive the account, re-resolve the user
			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil {
				logger.Error("Failed to resolve token user",
					zap.Error(err),
					zap.String("user_id", claims.UserID))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil {
				logger.Warn("Token refers to unknown user", zap.String("user_id", claims.UserID))
				utils.ResponseUnauthorized(w, "Could not validate credentials")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, user.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
