package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPaymentFixture() (PaymentService, *fakePaymentRepo, *entity.Reservation) {
	payments := newFakePaymentRepo()
	reservations := newFakeReservationRepo()

	res := seedReservation(reservations, uuid.New(),
		date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusConfirmed)

	repo := &repository.Repository{
		Payment:     payments,
		Reservation: reservations,
	}

	log := zap.NewNop()
	svc := NewPaymentService(repo, NewActivityService(&fakeActivityRepo{}, log), log)
	return svc, payments, res
}

func seedPayment(payments *fakePaymentRepo, reservationID uuid.UUID, amount float64, status entity.PaymentStatus, paymentDate time.Time) *entity.Payment {
	payment := &entity.Payment{
		Base:          entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		ReservationID: reservationID,
		PaymentMethod: "CASH",
		Amount:        amount,
		Status:        status,
		PaymentDate:   paymentDate,
	}
	payments.items[payment.ID] = payment
	return payment
}

func TestRecordPayment(t *testing.T) {
	svc, payments, res := newPaymentFixture()

	payment, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: res.ID.String(),
		PaymentMethod: "CARD",
		Amount:        250,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.PaymentStatusCompleted, payment.Status)
	assert.Equal(t, 250.0, payment.Amount)
	assert.Len(t, payments.items, 1)
}

func TestRecordPaymentUnknownReservation(t *testing.T) {
	svc, _, _ := newPaymentFixture()

	_, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: uuid.New().String(),
		PaymentMethod: "CARD",
		Amount:        250,
	})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRecordPaymentRejectsNonPositiveAmount(t *testing.T) {
	svc, _, res := newPaymentFixture()

	_, err := svc.RecordPayment(context.Background(), &request.RecordPaymentRequest{
		ReservationID: res.ID.String(),
		PaymentMethod: "CARD",
		Amount:        0,
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTotalRevenueCountsOnlyCompleted(t *testing.T) {
	svc, payments, res := newPaymentFixture()

	seedPayment(payments, res.ID, 100, entity.PaymentStatusCompleted, date(2024, time.June, 2))
	seedPayment(payments, res.ID, 50, entity.PaymentStatusPending, date(2024, time.June, 2))
	seedPayment(payments, res.ID, 30, entity.PaymentStatusRefunded, date(2024, time.June, 3))
	seedPayment(payments, res.ID, 20, entity.PaymentStatusFailed, date(2024, time.June, 3))

	revenue, err := svc.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 100.0, revenue.Total)
}

func TestTotalRevenueByDateRange(t *testing.T) {
	svc, payments, res := newPaymentFixture()

	seedPayment(payments, res.ID, 100, entity.PaymentStatusCompleted, date(2024, time.June, 2))
	seedPayment(payments, res.ID, 80, entity.PaymentStatusCompleted, date(2024, time.July, 15))
	seedPayment(payments, res.ID, 50, entity.PaymentStatusPending, date(2024, time.June, 2))

	revenue, err := svc.TotalRevenueByDateRange(context.Background(), "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Equal(t, 100.0, revenue.Total)

	revenue, err = svc.TotalRevenueByDateRange(context.Background(), "2024-01-01", "2024-12-31")
	require.NoError(t, err)
	assert.Equal(t, 180.0, revenue.Total)

	_, err = svc.TotalRevenueByDateRange(context.Background(), "June 1st", "2024-06-30")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRefundDropsOutOfRevenue(t *testing.T) {
	svc, payments, res := newPaymentFixture()

	payment := seedPayment(payments, res.ID, 100, entity.PaymentStatusCompleted, date(2024, time.June, 2))

	revenue, err := svc.TotalRevenue(context.Background())
	require.NoError(t, err)
	require.Equal(t, 100.0, revenue.Total)

	require.NoError(t, svc.UpdateStatus(context.Background(), payment.ID.String(), "REFUNDED"))

	revenue, err = svc.TotalRevenue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, revenue.Total)
}

func TestListByReservation(t *testing.T) {
	svc, payments, res := newPaymentFixture()

	seedPayment(payments, res.ID, 100, entity.PaymentStatusCompleted, date(2024, time.June, 2))
	seedPayment(payments, uuid.New(), 999, entity.PaymentStatusCompleted, date(2024, time.June, 2))

	got, err := svc.ListByReservation(context.Background(), res.ID.String())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 100.0, got[0].Amount)
}
