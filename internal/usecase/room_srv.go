package usecase

import (
	"context"
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

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error)
	ListRooms(ctx context.Context) ([]response.RoomResponse, error)
	ListRoomsByStatus(ctx context.Context, status string) ([]response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	UpdateRoomStatus(ctx context.Context, roomID, status string) error
	DeleteRoom(ctx context.Context, roomID string) error

	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
	ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)
}

type roomService struct {
	repo     *repository.Repository
	activity ActivityService
	log      *zap.Logger
}

func NewRoomService(repo *repository.Repository, activity ActivityService, log *zap.Logger) RoomService {
	return &roomService{
		repo:     repo,
		activity: activity,
		log:      log.With(zap.String("service", "room")),
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room type ID %s", ErrValidation, req.RoomTypeID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("verify room type: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("room type %s: %w", req.RoomTypeID, ErrNotFound)
	}

	existing, err := s.repo.Room.FindByRoomNumber(ctx, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("check room number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: room number %s already exists", ErrValidation, req.RoomNumber)
	}

	status := entity.RoomStatusAvailable
	if req.Status != "" {
		parsed, ok := entity.ParseRoomStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown room status %s", ErrValidation, req.Status)
		}
		status = parsed
	}

	now := time.Now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		RoomNumber:  req.RoomNumber,
		Floor:       req.Floor,
		RoomTypeID:  roomTypeID,
		Status:      status,
		Price:       req.Price,
		Description: req.Description,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("room_number", room.RoomNumber),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRoomByID(ctx context.Context, roomID string) (*response.RoomResponse, error) {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}

	return responses, nil
}

func (s *roomService) ListRoomsByStatus(ctx context.Context, status string) ([]response.RoomResponse, error) {
	parsed, ok := entity.ParseRoomStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown room status %s", ErrValidation, status)
	}

	rooms, err := s.repo.Room.FindByStatus(ctx, parsed)
	if err != nil {
		s.log.Error("Failed to list rooms by status",
			zap.Error(err),
			zap.String("status", status),
		)
		return nil, fmt.Errorf("list rooms by status: %w", err)
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}

	return responses, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID string, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(roomID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	roomTypeID, err := uuid.Parse(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room type ID %s", ErrValidation, req.RoomTypeID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	room.RoomNumber = req.RoomNumber
	room.Floor = req.Floor
	room.RoomTypeID = roomTypeID
	room.Price = req.Price
	room.Description = req.Description
	room.UpdatedAt = time.Now()

	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	s.log.Info("Room updated", zap.String("room_id", roomID))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

// UpdateRoomStatus flips the operational flag. It never consults the
// reservation calendar and reservations never consult it back; the two
// signals are maintained independently by staff.
func (s *roomService) UpdateRoomStatus(ctx context.Context, roomID, status string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	parsed, ok := entity.ParseRoomStatus(status)
	if !ok {
		return fmt.Errorf("%w: unknown room status %s", ErrValidation, status)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	if err := s.repo.Room.UpdateStatus(ctx, id, parsed); err != nil {
		return fmt.Errorf("update room status: %w", err)
	}

	s.activity.Record(ctx, nil, "room.status_changed", "room", &id,
		fmt.Sprintf("%s: %s -> %s", room.RoomNumber, room.Status, parsed))

	s.log.Info("Room status updated",
		zap.String("room_id", roomID),
		zap.String("from", string(room.Status)),
		zap.String("to", status),
	)

	return nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID string) error {
	id, err := uuid.Parse(roomID)
	if err != nil {
		return fmt.Errorf("%w: invalid room ID %s", ErrValidation, roomID)
	}

	room, err := s.repo.Room.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("room %s: %w", roomID, ErrNotFound)
	}

	if err := s.repo.Room.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted",
		zap.String("room_id", roomID),
		zap.String("room_number", room.RoomNumber),
	)

	return nil
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	roomType := &entity.RoomType{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		BaseRate:    req.BaseRate,
		Capacity:    req.Capacity,
		Description: req.Description,
	}

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}

	s.log.Info("Room type created",
		zap.String("room_type_id", roomType.ID.String()),
		zap.String("name", roomType.Name),
	)

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}

func (s *roomService) ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list room types", zap.Error(err))
		return nil, fmt.Errorf("list room types: %w", err)
	}

	responses := make([]response.RoomTypeResponse, len(roomTypes))
	for i, rt := range roomTypes {
		responses[i] = response.RoomTypeToResponse(rt)
	}

	return responses, nil
}
