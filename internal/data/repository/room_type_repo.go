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

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindAll(ctx context.Context) ([]*entity.RoomType, error)
	Update(ctx context.Context, roomType *entity.RoomType) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, base_rate, capacity, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.BaseRate,
		roomType.Capacity,
		roomType.Description,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type", zap.Error(err), zap.String("name", roomType.Name))
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `
		SELECT id, name, base_rate, capacity, description, created_at, updated_at
		FROM room_types
		WHERE id = $1
	`

	var roomType entity.RoomType
	err := r.db.QueryRow(ctx, query, id).Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.BaseRate,
		&roomType.Capacity,
		&roomType.Description,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return &roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context) ([]*entity.RoomType, error) {
	query := `
		SELECT id, name, base_rate, capacity, description, created_at, updated_at
		FROM room_types
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list room types", zap.Error(err))
		return nil, fmt.Errorf("list room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		var roomType entity.RoomType
		err := rows.Scan(
			&roomType.ID,
			&roomType.Name,
			&roomType.BaseRate,
			&roomType.Capacity,
			&roomType.Description,
			&roomType.CreatedAt,
			&roomType.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, &roomType)
	}

	return roomTypes, nil
}

func (r *roomTypeRepository) Update(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		UPDATE room_types
		SET name = $2, base_rate = $3, capacity = $4, description = $5, updated_at = $6
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.BaseRate,
		roomType.Capacity,
		roomType.Description,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room type",
			zap.Error(err),
			zap.String("room_type_id", roomType.ID.String()),
		)
		return fmt.Errorf("update room type %s: %w", roomType.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", roomType.ID.String())
	}

	return nil
}

func (r *roomTypeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM room_types WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete room type",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return fmt.Errorf("delete room type %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room type %s not found", id.String())
	}

	return nil
}
