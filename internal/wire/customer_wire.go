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

func wireCustomer(
	r chi.Router,
	customerHandler *adaptor.CustomerHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/customers", customerHandler.CreateCustomer)
		r.Get("/api/customers", customerHandler.ListCustomers)
		r.Get("/api/customers/{id}", customerHandler.GetCustomerByID)
		r.Put("/api/customers/{id}", customerHandler.UpdateCustomer)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/customers", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin))

		r.Delete("/{id}", customerHandler.DeleteCustomer)
	})
}
