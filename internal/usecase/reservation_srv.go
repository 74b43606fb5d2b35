package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/dto/response"
	"hotel-manager/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ReservationService interface {
	CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error)
	GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error)
	ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error)
	ListActiveReservations(ctx context.Context) ([]response.ReservationResponse, error)
	ListByDateRange(ctx context.Context, start, end string) ([]response.ReservationResponse, error)
	UpdateStatus(ctx context.Context, reservationID, status string) error
	CancelReservation(ctx context.Context, reservationID string) error
}

type reservationService struct {
	repo     *repository.Repository
	activity ActivityService
	log      *zap.Logger
}

func NewReservationService(repo *repository.Repository, activity ActivityService, log *zap.Logger) ReservationService {
	return &reservationService{
		repo:     repo,
		activity: activity,
		log:      log.With(zap.String("service", "reservation")),
	}
}

// CreateReservation persists a new PENDING reservation. Callers may consult
// the availability service first, but the overlap check is repeated inside
// the insert so a concurrent booking cannot slip past a stale pre-check.
// The room's operational status flag is deliberately not touched here.
func (s *reservationService) CreateReservation(ctx context.Context, userID string, req *request.CreateReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create reservation validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid user ID %s", ErrValidation, userID)
	}

	customerID, err := uuid.Parse(req.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, req.CustomerID)
	}

	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, req.RoomID)
	}

	checkIn, err := utils.ParseDate(req.CheckInDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-in date %s", ErrValidation, req.CheckInDate)
	}

	checkOut, err := utils.ParseDate(req.CheckOutDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid check-out date %s", ErrValidation, req.CheckOutDate)
	}

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidStayRange
	}

	customer, err := s.repo.Customer.FindByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("verify customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", req.CustomerID, ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("verify room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, ErrNotFound)
	}

	now := time.Now()
	res := &entity.Reservation{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		CustomerID:     customerID,
		RoomID:         roomID,
		UserID:         userUUID,
		CheckInDate:    checkIn,
		CheckOutDate:   checkOut,
		NumberOfGuests: req.NumberOfGuests,
		TotalAmount:    req.TotalAmount,
		Status:         entity.ReservationStatusPending,
		Notes:          req.Notes,
	}

	if err := s.repo.Reservation.CreateIfAvailable(ctx, res); err != nil {
		if errors.Is(err, repository.ErrOverlappingReservation) {
			s.log.Warn("Reservation conflict",
				zap.String("room_id", req.RoomID),
				zap.String("check_in", req.CheckInDate),
				zap.String("check_out", req.CheckOutDate),
			)
			return nil, ErrRoomConflict
		}
		s.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("room_id", req.RoomID),
		)
		return nil, fmt.Errorf("create reservation: %w", err)
	}

	s.activity.Record(ctx, &userUUID, "reservation.created", "reservation", &res.ID,
		fmt.Sprintf("room %s, %s to %s", room.RoomNumber, req.CheckInDate, req.CheckOutDate))

	s.log.Info("Reservation created",
		zap.String("reservation_id", res.ID.String()),
		zap.String("room_id", req.RoomID),
		zap.String("customer_id", req.CustomerID),
		zap.Int("nights", res.Nights()),
	)

	resp := response.ReservationToResponse(res)
	return &resp, nil
}

func (s *reservationService) GetReservationByID(ctx context.Context, reservationID string) (*response.ReservationResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, reservationID)
	}

	res, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	if res == nil {
		return nil, fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	resp := response.ReservationToResponse(res)
	return &resp, nil
}

func (s *reservationService) ListReservations(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.ReservationResponse], error) {
	reservations, err := s.repo.Reservation.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	total, err := s.repo.Reservation.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, res := range reservations {
		responses[i] = response.ReservationToResponse(res)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *reservationService) ListActiveReservations(ctx context.Context) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindActive(ctx)
	if err != nil {
		s.log.Error("Failed to list active reservations", zap.Error(err))
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, res := range reservations {
		responses[i] = response.ReservationToResponse(res)
	}

	return responses, nil
}

func (s *reservationService) ListByDateRange(ctx context.Context, start, end string) ([]response.ReservationResponse, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, start)
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %s", ErrValidation, end)
	}

	reservations, err := s.repo.Reservation.FindByDateRange(ctx, startDate, endDate)
	if err != nil {
		s.log.Error("Failed to list reservations by date range", zap.Error(err))
		return nil, fmt.Errorf("list reservations by date range: %w", err)
	}

	responses := make([]response.ReservationResponse, len(reservations))
	for i, res := range reservations {
		responses[i] = response.ReservationToResponse(res)
	}

	return responses, nil
}

// UpdateStatus overwrites the reservation status unconditionally. Any status
// may follow any other; staff corrections rely on this.
func (s *reservationService) UpdateStatus(ctx context.Context, reservationID, status string) error {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, reservationID)
	}

	newStatus, ok := entity.ParseReservationStatus(status)
	if !ok {
		return fmt.Errorf("%w: unknown reservation status %s", ErrValidation, status)
	}

	res, err := s.repo.Reservation.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get reservation: %w", err)
	}
	if res == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}

	if err := s.repo.Reservation.UpdateStatus(ctx, id, newStatus); err != nil {
		s.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
			zap.String("status", status),
		)
		return fmt.Errorf("update reservation status: %w", err)
	}

	s.activity.Record(ctx, nil, "reservation.status_changed", "reservation", &id,
		fmt.Sprintf("%s -> %s", res.Status, newStatus))

	s.log.Info("Reservation status updated",
		zap.String("reservation_id", reservationID),
		zap.String("from", string(res.Status)),
		zap.String("to", status),
	)

	return nil
}

func (s *reservationService) CancelReservation(ctx context.Context, reservationID string) error {
	return s.UpdateStatus(ctx, reservationID, string(entity.ReservationStatusCancelled))
}
