package entity

import "github.com/google/uuid"

type RoomStatus string

const (
	RoomStatusAvailable   RoomStatus = "AVAILABLE"
	RoomStatusOccupied    RoomStatus = "OCCUPIED"
	RoomStatusMaintenance RoomStatus = "MAINTENANCE"
	RoomStatusCleaning    RoomStatus = "CLEANING"
)

func ParseRoomStatus(s string) (RoomStatus, bool) {
	switch RoomStatus(s) {
	case RoomStatusAvailable, RoomStatusOccupied, RoomStatusMaintenance, RoomStatusCleaning:
		return RoomStatus(s), true
	}
	return "", false
}

// Room.Status is an operational flag set by staff. It is independent of the
// date-based availability derived from reservations and is never updated
// automatically when reservations change.
type Room struct {
	Base
	RoomNumber  string     `db:"room_number"`
	Floor       int        `db:"floor"`
	RoomTypeID  uuid.UUID  `db:"room_type_id"`
	Status      RoomStatus `db:"status"`
	Price       float64    `db:"price"`
	Description string     `db:"description"`
}
