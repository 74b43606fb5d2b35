package request

type CreateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,max=10"`
	Floor       int     `json:"floor" validate:"gte=0"`
	RoomTypeID  string  `json:"room_type_id" validate:"required,uuid"`
	Status      string  `json:"status" validate:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE CLEANING"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=500"`
}

type UpdateRoomRequest struct {
	RoomNumber  string  `json:"room_number" validate:"required,max=10"`
	Floor       int     `json:"floor" validate:"gte=0"`
	RoomTypeID  string  `json:"room_type_id" validate:"required,uuid"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"max=500"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE CLEANING"`
}

type CreateRoomTypeRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	BaseRate    float64 `json:"base_rate" validate:"gte=0"`
	Capacity    int     `json:"capacity" validate:"required,gte=1"`
	Description string  `json:"description" validate:"max=500"`
}
