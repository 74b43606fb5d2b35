package request

type RecordPaymentRequest struct {
	ReservationID string  `json:"reservation_id" validate:"required,uuid"`
	PaymentMethod string  `json:"payment_method" validate:"required,max=50"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Status        string  `json:"status" validate:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
	PaymentDate   string  `json:"payment_date" validate:"omitempty,datetime=2006-01-02"`
	Notes         string  `json:"notes" validate:"max=1000"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=PENDING COMPLETED FAILED REFUNDED"`
}
