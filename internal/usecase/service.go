package usecase

import (
	"hotel-manager/internal/data/repository"
	"hotel-manager/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth         AuthService
	Customer     CustomerService
	Room         RoomService
	Availability AvailabilityService
	Reservation  ReservationService
	Payment      PaymentService
	Report       ReportService
	Activity     ActivityService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	activity := NewActivityService(repo.Activity, log)

	return &Service{
		Auth:         NewAuthService(repo, activity, config, log),
		Customer:     NewCustomerService(repo, log),
		Room:         NewRoomService(repo, activity, log),
		Availability: NewAvailabilityService(repo.Reservation, log),
		Reservation:  NewReservationService(repo, activity, log),
		Payment:      NewPaymentService(repo, activity, log),
		Report:       NewReportService(repo, log),
		Activity:     activity,
	}
}
