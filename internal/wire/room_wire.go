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

func wireRoom(
	r chi.Router,
	roomHandler *adaptor.RoomHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES ====================
	// Every member of staff can inspect rooms and flip the operational flag
	// (housekeeping marks CLEANING, reception marks OCCUPIED and so on).
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/api/rooms", roomHandler.ListRooms)
		r.Get("/api/rooms/{id}", roomHandler.GetRoomByID)
		r.Put("/api/rooms/{id}/status", roomHandler.UpdateRoomStatus)
		r.Get("/api/room-types", roomHandler.ListRoomTypes)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/rooms", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleManager))

		r.Post("/", roomHandler.CreateRoom)
		r.Put("/{id}", roomHandler.UpdateRoom)
		r.Delete("/{id}", roomHandler.DeleteRoom)
	})

	r.Route("/api/admin/room-types", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireRole(log, entity.RoleAdmin, entity.RoleManager))

		r.Post("/", roomHandler.CreateRoomType)
	})
}
