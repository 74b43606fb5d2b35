package entity

import (
	"time"

	"github.com/google/uuid"
)

type ReservationStatus string

const (
	ReservationStatusPending    ReservationStatus = "PENDING"
	ReservationStatusConfirmed  ReservationStatus = "CONFIRMED"
	ReservationStatusCheckedIn  ReservationStatus = "CHECKED_IN"
	ReservationStatusCheckedOut ReservationStatus = "CHECKED_OUT"
	ReservationStatusCancelled  ReservationStatus = "CANCELLED"
)

// ActiveReservationStatuses are the statuses that still occupy a room.
var ActiveReservationStatuses = []ReservationStatus{
	ReservationStatusPending,
	ReservationStatusConfirmed,
	ReservationStatusCheckedIn,
}

func ParseReservationStatus(s string) (ReservationStatus, bool) {
	switch ReservationStatus(s) {
	case ReservationStatusPending, ReservationStatusConfirmed, ReservationStatusCheckedIn,
		ReservationStatusCheckedOut, ReservationStatusCancelled:
		return ReservationStatus(s), true
	}
	return "", false
}

// IsActive reports whether the status still occupies the room.
func (s ReservationStatus) IsActive() bool {
	for _, active := range ActiveReservationStatuses {
		if s == active {
			return true
		}
	}
	return false
}

type Reservation struct {
	Base
	CustomerID     uuid.UUID         `db:"customer_id"`
	RoomID         uuid.UUID         `db:"room_id"`
	UserID         uuid.UUID         `db:"user_id"`
	CheckInDate    time.Time         `db:"check_in_date"`
	CheckOutDate   time.Time         `db:"check_out_date"`
	NumberOfGuests int               `db:"number_of_guests"`
	TotalAmount    float64           `db:"total_amount"`
	Status         ReservationStatus `db:"status"`
	Notes          string            `db:"notes"`
}

// Nights returns the stay length in whole days, 0 when either date is unset.
func (r *Reservation) Nights() int {
	if r.CheckInDate.IsZero() || r.CheckOutDate.IsZero() {
		return 0
	}
	return int(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}

// Overlaps tests the stay against [checkIn, checkOut). Intervals are
// half-open: a reservation ending the day another begins does not conflict.
func (r *Reservation) Overlaps(checkIn, checkOut time.Time) bool {
	return r.CheckOutDate.After(checkIn) && r.CheckInDate.Before(checkOut)
}
