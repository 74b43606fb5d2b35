package usecase

import (
	"context"
	"testing"
	"time"

	"hotel-manager/internal/data/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func seedReservation(repo *fakeReservationRepo, roomID uuid.UUID, checkIn, checkOut time.Time, status entity.ReservationStatus) *entity.Reservation {
	res := &entity.Reservation{
		Base:         entity.Base{ID: uuid.New(), CreatedAt: time.Now(), UpdatedAt: time.Now()},
		CustomerID:   uuid.New(),
		RoomID:       roomID,
		UserID:       uuid.New(),
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       status,
	}
	repo.items[res.ID] = res
	return res
}

func TestIsRoomAvailable(t *testing.T) {
	roomID := uuid.New()
	repo := newFakeReservationRepo()
	seedReservation(repo, roomID, date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusConfirmed)

	svc := NewAvailabilityService(repo, zap.NewNop())
	ctx := context.Background()

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		want     bool
	}{
		{"overlapping middle", date(2024, time.June, 3), date(2024, time.June, 7), false},
		{"identical range", date(2024, time.June, 1), date(2024, time.June, 5), false},
		{"contained inside", date(2024, time.June, 2), date(2024, time.June, 4), false},
		{"surrounding", date(2024, time.May, 30), date(2024, time.June, 10), false},
		{"starts on checkout day", date(2024, time.June, 5), date(2024, time.June, 8), true},
		{"ends on checkin day", date(2024, time.May, 28), date(2024, time.June, 1), true},
		{"entirely after", date(2024, time.June, 10), date(2024, time.June, 12), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.IsRoomAvailable(ctx, roomID, tt.checkIn, tt.checkOut)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsRoomAvailableIgnoresInactiveStatuses(t *testing.T) {
	roomID := uuid.New()
	repo := newFakeReservationRepo()
	seedReservation(repo, roomID, date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusCancelled)
	seedReservation(repo, roomID, date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusCheckedOut)

	svc := NewAvailabilityService(repo, zap.NewNop())

	available, err := svc.IsRoomAvailable(context.Background(), roomID, date(2024, time.June, 2), date(2024, time.June, 4))
	require.NoError(t, err)
	assert.True(t, available)
}

func TestIsRoomAvailableOtherRoomDoesNotBlock(t *testing.T) {
	repo := newFakeReservationRepo()
	seedReservation(repo, uuid.New(), date(2024, time.June, 1), date(2024, time.June, 5), entity.ReservationStatusCheckedIn)

	svc := NewAvailabilityService(repo, zap.NewNop())

	available, err := svc.IsRoomAvailable(context.Background(), uuid.New(), date(2024, time.June, 1), date(2024, time.June, 5))
	require.NoError(t, err)
	assert.True(t, available)
}
