package response

import (
	"time"

	"hotel-manager/internal/data/entity"
)

type ReservationResponse struct {
	ID             string                   `json:"id"`
	CustomerID     string                   `json:"customer_id"`
	RoomID         string                   `json:"room_id"`
	UserID         string                   `json:"user_id"`
	CheckInDate    string                   `json:"check_in_date"`
	CheckOutDate   string                   `json:"check_out_date"`
	Nights         int                      `json:"nights"`
	NumberOfGuests int                      `json:"number_of_guests"`
	TotalAmount    float64                  `json:"total_amount"`
	Status         entity.ReservationStatus `json:"status"`
	Notes          string                   `json:"notes,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
}

func ReservationToResponse(res *entity.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:             res.ID.String(),
		CustomerID:     res.CustomerID.String(),
		RoomID:         res.RoomID.String(),
		UserID:         res.UserID.String(),
		CheckInDate:    res.CheckInDate.Format("2006-01-02"),
		CheckOutDate:   res.CheckOutDate.Format("2006-01-02"),
		Nights:         res.Nights(),
		NumberOfGuests: res.NumberOfGuests,
		TotalAmount:    res.TotalAmount,
		Status:         res.Status,
		Notes:          res.Notes,
		CreatedAt:      res.CreatedAt,
	}
}

type AvailabilityResponse struct {
	RoomID       string `json:"room_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}
