package repository

import (
	"hotel-manager/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Customer    CustomerRepository
	RoomType    RoomTypeRepository
	Room        RoomRepository
	Reservation ReservationRepository
	Payment     PaymentRepository
	Activity    ActivityLogRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Customer:    NewCustomerRepository(db, log),
		RoomType:    NewRoomTypeRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Reservation: NewReservationRepository(db, log),
		Payment:     NewPaymentRepository(db, log),
		Activity:    NewActivityLogRepository(db, log),
	}
}
