package request

type CreateReservationRequest struct {
	CustomerID     string  `json:"customer_id" validate:"required,uuid"`
	RoomID         string  `json:"room_id" validate:"required,uuid"`
	CheckInDate    string  `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate   string  `json:"check_out_date" validate:"required,datetime=2006-01-02"`
	NumberOfGuests int     `json:"number_of_guests" validate:"required,gte=1"`
	TotalAmount    float64 `json:"total_amount" validate:"gte=0"`
	Notes          string  `json:"notes" validate:"max=1000"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING CONFIRMED CHECKED_IN CHECKED_OUT CANCELLED"`
}

type CheckAvailabilityRequest struct {
	RoomID       string `json:"room_id" validate:"required,uuid"`
	CheckInDate  string `json:"check_in_date" validate:"required,datetime=2006-01-02"`
	CheckOutDate string `json:"check_out_date" validate:"required,datetime=2006-01-02"`
}
