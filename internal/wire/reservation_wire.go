package wire

import (
	"hotel-manager/internal/adaptor"
	"hotel-manager/internal/data/repository"
	"hotel-manager/pkg/middleware"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReservation(
	r chi.Router,
	reservationHandler *adaptor.ReservationHandler,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Post("/api/reservations", reservationHandler.CreateReservation)
		r.Post("/api/reservations/check-availability", reservationHandler.CheckAvailability)
		r.Get("/api/reservations", reservationHandler.ListReservations)
		r.Get("/api/reservations/active", reservationHandler.ListActiveReservations)
		r.Get("/api/reservations/{id}", reservationHandler.GetReservationByID)
		r.Put("/api/reservations/{id}/status", reservationHandler.UpdateStatus)
		r.Put("/api/reservations/{id}/cancel", reservationHandler.CancelReservation)
		r.Get("/api/reservations/{id}/payments", paymentHandler.ListByReservation)
	})
}
