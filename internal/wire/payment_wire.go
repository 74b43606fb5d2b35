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

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/payments", paymentHandler.RecordPayment)
		r.Get("/api/payments", paymentHandler.ListPayments)
		r.Get("/api/payments/{id}", paymentHandler.GetPaymentByID)
		r.Put("/api/payments/{id}/status", paymentHandler.UpdateStatus)
	})

	// ==================== ADMIN ROUTES ====================
	// Revenue figures are for management eyes only.
	r.Route("/api/admin/revenue", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleManager))

		r.Get("/", paymentHandler.TotalRevenue)
	})
}
