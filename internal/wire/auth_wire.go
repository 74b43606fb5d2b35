package wire

import (
	"hotel-manager/internal/adaptor"
	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/pkg/middleware"
	"hotel-manager/pkg/utils"

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
	r.Post("/api/auth/login", authHandler.Login)
	r.Get("/api/auth/security-question", authHandler.GetSecurityQuestion)
	r.Post("/api/auth/recovery", authHandler.RequestRecoveryToken)
	r.Post("/api/auth/reset-password", authHandler.ResetPassword)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/auth/logout", authHandler.Logout)
		r.Put("/api/auth/password", authHandler.ChangePassword)
		r.Put("/api/auth/security-question", authHandler.SetSecurityQuestion)
	})

	// ==================== ADMIN ROUTES ====================
	// Staff accounts are provisioned by an admin, there is no self-signup.
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Post("/", authHandler.RegisterUser)
	})
}
