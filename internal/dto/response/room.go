package response

import (
	"hotel-manager/internal/data/entity"
)

type RoomResponse struct {
	ID          string            `json:"id"`
	RoomNumber  string            `json:"room_number"`
	Floor       int               `json:"floor"`
	RoomTypeID  string            `json:"room_type_id"`
	Status      entity.RoomStatus `json:"status"`
	Price       float64           `json:"price"`
	Description string            `json:"description,omitempty"`
}

func RoomToResponse(room *entity.Room) RoomResponse {
	return RoomResponse{
		ID:          room.ID.String(),
		RoomNumber:  room.RoomNumber,
		Floor:       room.Floor,
		RoomTypeID:  room.RoomTypeID.String(),
		Status:      room.Status,
		Price:       room.Price,
		Description: room.Description,
	}
}

type RoomTypeResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	BaseRate    float64 `json:"base_rate"`
	Capacity    int     `json:"capacity"`
	Description string  `json:"description,omitempty"`
}

func RoomTypeToResponse(roomType *entity.RoomType) RoomTypeResponse {
	return RoomTypeResponse{
		ID:          roomType.ID.String(),
		Name:        roomType.Name,
		BaseRate:    roomType.BaseRate,
		Capacity:    roomType.Capacity,
		Description: roomType.Description,
	}
}
