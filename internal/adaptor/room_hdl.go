package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type RoomHandler struct {
	service usecase.RoomService
	log     *zap.Logger
}

func NewRoomHandler(service usecase.RoomService, log *zap.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log.With(zap.String("handler", "room")),
	}
}

// ListRooms handles GET /api/rooms (protected)
func (h *RoomHandler) ListRooms(w http.ResponseWriter, r *http.Request) {
	if status := r.URL.Query().Get("status"); status != "" {
		rooms, err := h.service.ListRoomsByStatus(r.Context(), status)
		if err != nil {
			handleServiceError(h.log, w, err, "list rooms by status")
			return
		}
		utils.ResponseSuccess(w, "success", rooms)
		return
	}

	rooms, err := h.service.ListRooms(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list rooms")
		return
	}

	utils.ResponseSuccess(w, "success", rooms)
}

// GetRoomByID handles GET /api/rooms/{id} (protected)
func (h *RoomHandler) GetRoomByID(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	room, err := h.service.GetRoomByID(r.Context(), roomID)
	if err != nil {
		handleServiceError(h.log, w, err, "get room by ID")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// UpdateRoomStatus handles PUT /api/rooms/{id}/status (protected)
func (h *RoomHandler) UpdateRoomStatus(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateRoomStatus(r.Context(), roomID, req.Status); err != nil {
		handleServiceError(h.log, w, err, "update room status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// ==================== ADMIN METHODS ====================

// CreateRoom handles POST /api/admin/rooms (admin only)
func (h *RoomHandler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room")
		return
	}

	utils.ResponseCreated(w, "success", room)
}

// UpdateRoom handles PUT /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	var req request.UpdateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	room, err := h.service.UpdateRoom(r.Context(), roomID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update room")
		return
	}

	utils.ResponseSuccess(w, "success", room)
}

// DeleteRoom handles DELETE /api/admin/rooms/{id} (admin only)
func (h *RoomHandler) DeleteRoom(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "id")
	if roomID == "" {
		utils.ResponseBadRequest(w, "Room ID is required", nil)
		return
	}

	if err := h.service.DeleteRoom(r.Context(), roomID); err != nil {
		handleServiceError(h.log, w, err, "delete room")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CreateRoomType handles POST /api/admin/room-types (admin only)
func (h *RoomHandler) CreateRoomType(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRoomTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	roomType, err := h.service.CreateRoomType(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create room type")
		return
	}

	utils.ResponseCreated(w, "success", roomType)
}

// ListRoomTypes handles GET /api/room-types (protected)
func (h *RoomHandler) ListRoomTypes(w http.ResponseWriter, r *http.Request) {
	roomTypes, err := h.service.ListRoomTypes(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list room types")
		return
	}

	utils.ResponseSuccess(w, "success", roomTypes)
}
