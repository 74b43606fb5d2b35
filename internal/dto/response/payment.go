package response

import (
	"time"

	"hotel-manager/internal/data/entity"
)

type PaymentResponse struct {
	ID            string               `json:"id"`
	ReservationID string               `json:"reservation_id"`
	PaymentMethod string               `json:"payment_method"`
	Amount        float64              `json:"amount"`
	Status        entity.PaymentStatus `json:"status"`
	TransactionID *string              `json:"transaction_id,omitempty"`
	PaymentDate   time.Time            `json:"payment_date"`
	Notes         string               `json:"notes,omitempty"`
}

func PaymentToResponse(payment *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            payment.ID.String(),
		ReservationID: payment.ReservationID.String(),
		PaymentMethod: payment.PaymentMethod,
		Amount:        payment.Amount,
		Status:        payment.Status,
		TransactionID: payment.TransactionID,
		PaymentDate:   payment.PaymentDate,
		Notes:         payment.Notes,
	}
}

type RevenueResponse struct {
	Total float64 `json:"total"`
	Start string  `json:"start,omitempty"`
	End   string  `json:"end,omitempty"`
}
