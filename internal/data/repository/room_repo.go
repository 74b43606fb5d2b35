package repository

import (
	"context"
	"fmt"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountAll(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status entity.RoomStatus) (int64, error)

	// Business queries
	FindByStatus(ctx context.Context, status entity.RoomStatus) ([]*entity.Room, error)
	FindAvailable(ctx context.Context) ([]*entity.Room, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, room_number, floor, room_type_id, status, price, description, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.RoomNumber,
		&room.Floor,
		&room.RoomTypeID,
		&room.Status,
		&room.Price,
		&room.Description,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, floor, room_type_id, status, price, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Floor,
		room.RoomTypeID,
		room.Status,
		room.Price,
		room.Description,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByRoomNumber(ctx context.Context, roomNumber string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE room_number = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, roomNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by number",
			zap.Error(err),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room by number %s: %w", roomNumber, err)
	}

	return room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms ORDER BY floor, room_number`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_number = $2, floor = $3, room_type_id = $4, status = $5,
		    price = $6, description = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomNumber,
		room.Floor,
		room.RoomTypeID,
		room.Status,
		room.Price,
		room.Description,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

func (r *roomRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms", zap.Error(err))
		return 0, fmt.Errorf("count rooms: %w", err)
	}
	return count, nil
}

func (r *roomRepository) CountByStatus(ctx context.Context, status entity.RoomStatus) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM rooms WHERE status = $1`, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return 0, fmt.Errorf("count rooms by status %s: %w", string(status), err)
	}
	return count, nil
}

func (r *roomRepository) FindByStatus(ctx context.Context, status entity.RoomStatus) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE status = $1 ORDER BY floor, room_number`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find rooms by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find rooms by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectRooms(rows)
}

// FindAvailable selects on the staff-set operational flag only. Whether a
// room is bookable for a date range is a separate question answered by the
// availability service.
func (r *roomRepository) FindAvailable(ctx context.Context) ([]*entity.Room, error) {
	return r.FindByStatus(ctx, entity.RoomStatusAvailable)
}

func (r *roomRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RoomStatus) error {
	query := `UPDATE rooms SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update room status",
			zap.Error(err),
			zap.String("room_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update room %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	return nil
}

func collectRooms(rows pgx.Rows) ([]*entity.Room, error) {
	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}
	return rooms, nil
}
