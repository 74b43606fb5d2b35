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

type reservationFixture struct {
	svc          ReservationService
	reservations *fakeReservationRepo
	customer     *entity.Customer
	room         *entity.Room
	userID       uuid.UUID
}

func newReservationFixture() *reservationFixture {
	reservations := newFakeReservationRepo()
	customers := newFakeCustomerRepo()
	rooms := newFakeRoomRepo()

	customer := &entity.Customer{
		Base:      entity.Base{ID: uuid.New()},
		FirstName: "Ana",
		LastName:  "Silva",
	}
	customers.items[customer.ID] = customer

	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New()},
		RoomNumber: "101",
		RoomTypeID: uuid.New(),
		Status:     entity.RoomStatusAvailable,
	}
	rooms.items[room.ID] = room

	repo := &repository.Repository{
		Customer:    customers,
		Room:        rooms,
		Reservation: reservations,
	}

	log := zap.NewNop()
	activity := NewActivityService(&fakeActivityRepo{}, log)

	return &reservationFixture{
		svc:          NewReservationService(repo, activity, log),
		reservations: reservations,
		customer:     customer,
		room:         room,
		userID:       uuid.New(),
	}
}

func (f *reservationFixture) createRequest() *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		CustomerID:     f.customer.ID.String(),
		RoomID:         f.room.ID.String(),
		CheckInDate:    "2024-06-01",
		CheckOutDate:   "2024-06-05",
		NumberOfGuests: 2,
		TotalAmount:    400,
	}
}

func TestCreateReservation(t *testing.T) {
	f := newReservationFixture()

	res, err := f.svc.CreateReservation(context.Background(), f.userID.String(), f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationStatusPending, res.Status)
	assert.Equal(t, 4, res.Nights)
	assert.Equal(t, f.room.ID.String(), res.RoomID)
	assert.Len(t, f.reservations.items, 1)
}

func TestCreateReservationRejectsInvertedDates(t *testing.T) {
	f := newReservationFixture()

	req := f.createRequest()
	req.CheckInDate = "2024-06-05"
	req.CheckOutDate = "2024-06-01"

	_, err := f.svc.CreateReservation(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestCreateReservationRejectsZeroNightStay(t *testing.T) {
	f := newReservationFixture()

	req := f.createRequest()
	req.CheckOutDate = req.CheckInDate

	_, err := f.svc.CreateReservation(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, ErrInvalidStayRange)
}

func TestCreateReservationConflict(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	_, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	// Same room, overlapping interval.
	req := f.createRequest()
	req.CheckInDate = "2024-06-03"
	req.CheckOutDate = "2024-06-07"

	_, err = f.svc.CreateReservation(ctx, f.userID.String(), req)
	assert.ErrorIs(t, err, ErrRoomConflict)
	assert.Len(t, f.reservations.items, 1)
}

func TestCreateReservationBackToBackStays(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	_, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	// Check-in on the previous guest's check-out day is not a conflict.
	req := f.createRequest()
	req.CheckInDate = "2024-06-05"
	req.CheckOutDate = "2024-06-08"

	_, err = f.svc.CreateReservation(ctx, f.userID.String(), req)
	require.NoError(t, err)
	assert.Len(t, f.reservations.items, 2)
}

func TestCreateReservationUnknownCustomer(t *testing.T) {
	f := newReservationFixture()

	req := f.createRequest()
	req.CustomerID = uuid.New().String()

	_, err := f.svc.CreateReservation(context.Background(), f.userID.String(), req)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateStatusAllowsAnyTransition(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	// Status corrections can move in any direction.
	for _, status := range []string{"CHECKED_OUT", "CONFIRMED", "CANCELLED", "CHECKED_IN"} {
		require.NoError(t, f.svc.UpdateStatus(ctx, res.ID, status))

		got, err := f.svc.GetReservationByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.ReservationStatus(status), got.Status)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	err = f.svc.UpdateStatus(ctx, res.ID, "OVERBOOKED")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestUpdateStatusUnknownReservation(t *testing.T) {
	f := newReservationFixture()

	err := f.svc.UpdateStatus(context.Background(), uuid.New().String(), "CONFIRMED")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCancelReservationFreesTheRoom(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	require.NoError(t, f.svc.CancelReservation(ctx, res.ID))

	got, err := f.svc.GetReservationByID(ctx, res.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, got.Status)

	// The cancelled interval no longer blocks a new booking.
	_, err = f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)
}

func TestListActiveReservations(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	res, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	active, err := f.svc.ListActiveReservations(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)

	require.NoError(t, f.svc.UpdateStatus(ctx, res.ID, "CHECKED_OUT"))

	active, err = f.svc.ListActiveReservations(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestListByDateRange(t *testing.T) {
	f := newReservationFixture()
	ctx := context.Background()

	_, err := f.svc.CreateReservation(ctx, f.userID.String(), f.createRequest())
	require.NoError(t, err)

	inRange, err := f.svc.ListByDateRange(ctx, "2024-06-01", "2024-06-30")
	require.NoError(t, err)
	assert.Len(t, inRange, 1)

	outOfRange, err := f.svc.ListByDateRange(ctx, "2024-07-01", "2024-07-31")
	require.NoError(t, err)
	assert.Empty(t, outOfRange)

	_, err = f.svc.ListByDateRange(ctx, "not-a-date", "2024-07-31")
	assert.ErrorIs(t, err, ErrValidation)
}

func seedRoomStatus(t *testing.T) (*fakeRoomRepo, *entity.Room) {
	t.Helper()
	rooms := newFakeRoomRepo()
	room := &entity.Room{
		Base:       entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		RoomNumber: "204",
		RoomTypeID: uuid.New(),
		Status:     entity.RoomStatusAvailable,
	}
	rooms.items[room.ID] = room
	return rooms, room
}

func TestUpdateRoomStatusIndependentOfReservations(t *testing.T) {
	rooms, room := seedRoomStatus(t)
	reservations := newFakeReservationRepo()
	seedReservation(reservations, room.ID, date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusCheckedIn)

	repo := &repository.Repository{Room: rooms, Reservation: reservations}
	log := zap.NewNop()
	svc := NewRoomService(repo, NewActivityService(&fakeActivityRepo{}, log), log)

	// The flag moves freely regardless of the reservation calendar.
	for _, status := range []string{"MAINTENANCE", "CLEANING", "OCCUPIED", "AVAILABLE"} {
		require.NoError(t, svc.UpdateRoomStatus(context.Background(), room.ID.String(), status))
		assert.Equal(t, entity.RoomStatus(status), room.Status)
	}

	// And the active reservation is untouched by flag changes.
	active, err := reservations.FindActiveByRoomID(context.Background(), room.ID)
	require.NoError(t, err)
	assert.Len(t, active, 1)
}

func TestUpdateRoomStatusRejectsUnknownStatus(t *testing.T) {
	rooms, room := seedRoomStatus(t)
	repo := &repository.Repository{Room: rooms}
	log := zap.NewNop()
	svc := NewRoomService(repo, NewActivityService(&fakeActivityRepo{}, log), log)

	err := svc.UpdateRoomStatus(context.Background(), room.ID.String(), "CLOSED")
	assert.ErrorIs(t, err, ErrValidation)
}
