package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// ErrOverlappingReservation is returned by CreateIfAvailable when another
// active reservation already occupies the room for the requested interval.
var ErrOverlappingReservation = errors.New("overlapping active reservation")

type ReservationRepository interface {
	Create(ctx context.Context, res *entity.Reservation) error
	CreateIfAvailable(ctx context.Context, res *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, res *entity.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindActive(ctx context.Context) ([]*entity.Reservation, error)
	FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error)
	FindByStatus(ctx context.Context, status entity.ReservationStatus) ([]*entity.Reservation, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

const reservationColumns = `id, customer_id, room_id, user_id, check_in_date, check_out_date,
	       number_of_guests, total_amount, status, notes, created_at, updated_at`

func scanReservation(row pgx.Row) (*entity.Reservation, error) {
	var res entity.Reservation
	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.RoomID,
		&res.UserID,
		&res.CheckInDate,
		&res.CheckOutDate,
		&res.NumberOfGuests,
		&res.TotalAmount,
		&res.Status,
		&res.Notes,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, customer_id, room_id, user_id, check_in_date, check_out_date,
		                          number_of_guests, total_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.Exec(ctx, query,
		res.ID,
		res.CustomerID,
		res.RoomID,
		res.UserID,
		res.CheckInDate,
		res.CheckOutDate,
		res.NumberOfGuests,
		res.TotalAmount,
		res.Status,
		res.Notes,
		res.CreatedAt,
		res.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("room_id", res.RoomID.String()),
			zap.String("customer_id", res.CustomerID.String()),
		)
		return fmt.Errorf("create reservation %s: %w", res.ID.String(), err)
	}

	return nil
}

// CreateIfAvailable re-runs the overlap check and inserts in one transaction.
// Writes for a given room are serialized through an advisory lock, so two
// concurrent check-then-create sequences cannot both pass the check.
func (r *reservationRepository) CreateIfAvailable(ctx context.Context, res *entity.Reservation) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin create reservation: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, res.RoomID.String())
	if err != nil {
		r.log.Error("Failed to take room lock",
			zap.Error(err),
			zap.String("room_id", res.RoomID.String()),
		)
		return fmt.Errorf("lock room %s: %w", res.RoomID.String(), err)
	}

	var conflicts int
	overlapQuery := `
		SELECT COUNT(*)
		FROM reservations
		WHERE room_id = $1
		  AND status IN ('PENDING', 'CONFIRMED', 'CHECKED_IN')
		  AND NOT (check_out_date <= $2 OR check_in_date >= $3)
	`
	err = tx.QueryRow(ctx, overlapQuery, res.RoomID, res.CheckInDate, res.CheckOutDate).Scan(&conflicts)
	if err != nil {
		r.log.Error("Failed to count overlapping reservations",
			zap.Error(err),
			zap.String("room_id", res.RoomID.String()),
		)
		return fmt.Errorf("count overlaps for room %s: %w", res.RoomID.String(), err)
	}

	if conflicts > 0 {
		return ErrOverlappingReservation
	}

	insertQuery := `
		INSERT INTO reservations (id, customer_id, room_id, user_id, check_in_date, check_out_date,
		                          number_of_guests, total_amount, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = tx.Exec(ctx, insertQuery,
		res.ID,
		res.CustomerID,
		res.RoomID,
		res.UserID,
		res.CheckInDate,
		res.CheckOutDate,
		res.NumberOfGuests,
		res.TotalAmount,
		res.Status,
		res.Notes,
		res.CreatedAt,
		res.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to insert reservation",
			zap.Error(err),
			zap.String("room_id", res.RoomID.String()),
		)
		return fmt.Errorf("insert reservation %s: %w", res.ID.String(), err)
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit reservation", zap.Error(err))
		return fmt.Errorf("commit reservation %s: %w", res.ID.String(), err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	res, err := scanReservation(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation by ID %s: %w", id.String(), err)
	}

	return res, nil
}

func (r *reservationRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM reservations`).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count reservations", zap.Error(err))
		return 0, fmt.Errorf("count reservations: %w", err)
	}
	return count, nil
}

func (r *reservationRepository) Update(ctx context.Context, res *entity.Reservation) error {
	query := `
		UPDATE reservations
		SET customer_id = $2, room_id = $3, user_id = $4, check_in_date = $5,
		    check_out_date = $6, number_of_guests = $7, total_amount = $8,
		    status = $9, notes = $10, updated_at = $11
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		res.ID,
		res.CustomerID,
		res.RoomID,
		res.UserID,
		res.CheckInDate,
		res.CheckOutDate,
		res.NumberOfGuests,
		res.TotalAmount,
		res.Status,
		res.Notes,
		res.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update reservation",
			zap.Error(err),
			zap.String("reservation_id", res.ID.String()),
		)
		return fmt.Errorf("update reservation %s: %w", res.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", res.ID.String())
	}

	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func (r *reservationRepository) FindActive(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status IN ('PENDING', 'CONFIRMED', 'CHECKED_IN')
		ORDER BY check_in_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active reservations", zap.Error(err))
		return nil, fmt.Errorf("find active reservations: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) FindActiveByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE room_id = $1
		  AND status IN ('PENDING', 'CONFIRMED', 'CHECKED_IN')
		ORDER BY check_in_date DESC
	`

	rows, err := r.db.Query(ctx, query, roomID)
	if err != nil {
		r.log.Error("Failed to find active reservations by room",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
		)
		return nil, fmt.Errorf("find active reservations for room %s: %w", roomID.String(), err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) FindByStatus(ctx context.Context, status entity.ReservationStatus) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE status = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find reservations by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find reservations by status %s: %w", string(status), err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

// FindByDateRange returns reservations whose check-in or check-out falls in
// [start, end], newest check-in first.
func (r *reservationRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]*entity.Reservation, error) {
	query := `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE check_in_date BETWEEN $1 AND $2
		   OR check_out_date BETWEEN $1 AND $2
		ORDER BY check_in_date DESC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to find reservations by date range",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find reservations by date range: %w", err)
	}
	defer rows.Close()

	return collectReservations(rows)
}

func (r *reservationRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReservationStatus) error {
	query := `UPDATE reservations SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update reservation status",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update reservation %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	return nil
}

func collectReservations(rows pgx.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, nil
}
