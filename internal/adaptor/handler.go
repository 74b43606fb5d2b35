package adaptor

import (
	"errors"
	"net/http"

	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	Customer    *CustomerHandler
	Room        *RoomHandler
	Reservation *ReservationHandler
	Payment     *PaymentHandler
	Report      *ReportHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		Customer:    NewCustomerHandler(service.Customer, log),
		Room:        NewRoomHandler(service.Room, log),
		Reservation: NewReservationHandler(service.Reservation, service.Availability, log),
		Payment:     NewPaymentHandler(service.Payment, log),
		Report:      NewReportHandler(service.Report, service.Activity, log),
	}
}

// handleServiceError maps service errors to HTTP responses.
func handleServiceError(log *zap.Logger, w http.ResponseWriter, err error, operation string) {
	switch {
	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.Is(err, usecase.ErrValidation),
		errors.Is(err, usecase.ErrInvalidStayRange):
		log.Warn(operation+" failed - invalid input", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrRoomConflict):
		log.Warn(operation+" failed - room conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, usecase.ErrInvalidCredentials),
		errors.Is(err, usecase.ErrInvalidToken):
		log.Warn(operation+" failed - unauthorized", zap.Error(err))
		utils.ResponseUnauthorized(w, err.Error())

	case errors.Is(err, usecase.ErrAccountInactive):
		log.Warn(operation+" failed - account inactive", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
