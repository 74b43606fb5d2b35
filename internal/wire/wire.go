// internal/wire/wire.go
package wire

import (
	"net/http"

	"hotel-manager/internal/adaptor"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/middleware"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type App struct {
	Router *chi.Mux
}

// Wiring builds the service and handler graph and mounts all routes.
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
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
	wireCustomer(r, handler.Customer, repo, config, logger)
	wireRoom(r, handler.Room, repo, config, logger)
	wireReservation(r, handler.Reservation, handler.Payment, repo, config, logger)
	wirePayment(r, handler.Payment, repo, config, logger)
	wireReport(r, handler.Report, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
