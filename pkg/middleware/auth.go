package middleware

import (
	"net/http"
	"strings"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/pkg/utils"

	"go.uber.org/zap"
)

// AuthSession validates the bearer session token and puts the staff user's
// identity and role on the request context.
func AuthSession(sessionRepo repository.SessionRepository, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			user, err := userRepo.FindByID(r.Context(), session.UserID)
			if err != nil {
				logger.Error("Failed to load session user",
					zap.Error(err),
					zap.String("user_id", session.UserID.String()))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if user == nil || !user.IsActive {
				logger.Warn("Session for missing or inactive user",
					zap.String("user_id", session.UserID.String()))
				utils.ResponseUnauthorized(w, "Account is deactivated")
				return
			}

			ctx := utils.SetUserContext(r.Context(), user.ID, string(user.Role))
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole allows only the listed roles past. Must run after AuthSession.
func RequireRole(logger *zap.Logger, roles ...entity.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			for _, allowed := range roles {
				if entity.UserRole(role) == allowed {
					next.ServeHTTP(w, r)
					return
				}
			}

			logger.Warn("Insufficient role for route",
				zap.String("role", role),
				zap.String("path", r.URL.Path))
			utils.ResponseForbidden(w, "Insufficient permissions")
		})
	}
}
