package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/dto/response"
	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationHandler struct {
	service      usecase.ReservationService
	availability usecase.AvailabilityService
	log          *zap.Logger
}

func NewReservationHandler(service usecase.ReservationService, availability usecase.AvailabilityService, log *zap.Logger) *ReservationHandler {
	return &ReservationHandler{
		service:      service,
		availability: availability,
		log:          log.With(zap.String("handler", "reservation")),
	}
}

// CreateReservation handles POST /api/reservations (protected)
func (h *ReservationHandler) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	reservation, err := h.service.CreateReservation(r.Context(), userID.String(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create reservation")
		return
	}

	utils.ResponseCreated(w, "success", reservation)
}

// CheckAvailability handles POST /api/reservations/check-availability (protected)
func (h *ReservationHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	var req request.CheckAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid room ID", nil)
		return
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid check-in date", nil)
		return
	}

	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid check-out date", nil)
		return
	}

	available, err := h.availability.IsRoomAvailable(r.Context(), roomID, checkIn, checkOut)
	if err != nil {
		handleServiceError(h.log, w, err, "check availability")
		return
	}

	utils.ResponseSuccess(w, "success", response.AvailabilityResponse{
		RoomID:       req.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Available:    available,
	})
}

// GetReservationByID handles GET /api/reservations/{id} (protected)
func (h *ReservationHandler) GetReservationByID(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	reservation, err := h.service.GetReservationByID(r.Context(), reservationID)
	if err != nil {
		handleServiceError(h.log, w, err, "get reservation by ID")
		return
	}

	utils.ResponseSuccess(w, "success", reservation)
}

// ListReservations handles GET /api/reservations (protected)
func (h *ReservationHandler) ListReservations(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	// Date-bounded listing when both bounds are present.
	if start, end := query.Get("start"), query.Get("end"); start != "" && end != "" {
		reservations, err := h.service.ListByDateRange(r.Context(), start, end)
		if err != nil {
			handleServiceError(h.log, w, err, "list reservations by date range")
			return
		}
		utils.ResponseSuccess(w, "success", reservations)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	reservations, err := h.service.ListReservations(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// ListActiveReservations handles GET /api/reservations/active (protected)
func (h *ReservationHandler) ListActiveReservations(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.ListActiveReservations(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list active reservations")
		return
	}

	utils.ResponseSuccess(w, "success", reservations)
}

// UpdateStatus handles PUT /api/reservations/{id}/status (protected)
func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	var req request.UpdateReservationStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), reservationID, req.Status); err != nil {
		handleServiceError(h.log, w, err, "update reservation status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// CancelReservation handles PUT /api/reservations/{id}/cancel (protected)
func (h *ReservationHandler) CancelReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	if err := h.service.CancelReservation(r.Context(), reservationID); err != nil {
		handleServiceError(h.log, w, err, "cancel reservation")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
