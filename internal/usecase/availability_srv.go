package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-manager/internal/data/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AvailabilityService interface {
	// IsRoomAvailable reports whether no active reservation on the room
	// overlaps [checkIn, checkOut). It reads the active set fresh on every
	// call and takes no lock, so it is a pre-check only: the authoritative
	// overlap test runs again inside the reservation insert.
	IsRoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type availabilityService struct {
	reservations repository.ReservationRepository
	log          *zap.Logger
}

func NewAvailabilityService(reservations repository.ReservationRepository, log *zap.Logger) AvailabilityService {
	return &availabilityService{
		reservations: reservations,
		log:          log.With(zap.String("service", "availability")),
	}
}

func (s *availabilityService) IsRoomAvailable(ctx context.Context, roomID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	active, err := s.reservations.FindActiveByRoomID(ctx, roomID)
	if err != nil {
		s.log.Error("Failed to load active reservations",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return false, fmt.Errorf("check availability for room %s: %w", roomID.String(), err)
	}

	for _, res := range active {
		if res.Overlaps(checkIn, checkOut) {
			return false, nil
		}
	}

	return true, nil
}
