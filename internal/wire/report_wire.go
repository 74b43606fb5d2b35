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

func wireReport(
	r chi.Router,
	reportHandler *adaptor.ReportHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/reports", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleManager))

		r.Get("/dashboard", reportHandler.Dashboard)
		r.Get("/activity", reportHandler.RecentActivity)
		r.Get("/activity/{entityType}/{entityID}", reportHandler.EntityActivity)
	})
}
