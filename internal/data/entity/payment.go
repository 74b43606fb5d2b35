package entity

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed, PaymentStatusRefunded:
		return PaymentStatus(s), true
	}
	return "", false
}

// A refund is just a payment whose status is REFUNDED. There is no linked
// compensating transaction, and the sum of completed payments is not
// reconciled against the reservation's total amount.
type Payment struct {
	Base
	ReservationID uuid.UUID     `db:"reservation_id"`
	PaymentMethod string        `db:"payment_method"`
	Amount        float64       `db:"amount"`
	Status        PaymentStatus `db:"status"`
	TransactionID *string       `db:"transaction_id"`
	PaymentDate   time.Time     `db:"payment_date"`
	Notes         string        `db:"notes"`
}
