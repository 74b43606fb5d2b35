package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-manager/internal/data/entity"
	"hotel-manager/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindAll(ctx context.Context) ([]*entity.Payment, error)
	Update(ctx context.Context, payment *entity.Payment) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error)
	FindByPaymentDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, reservation_id, payment_method, amount, status, transaction_id,
	       payment_date, notes, created_at, updated_at`

func scanPayment(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.ReservationID,
		&payment.PaymentMethod,
		&payment.Amount,
		&payment.Status,
		&payment.TransactionID,
		&payment.PaymentDate,
		&payment.Notes,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, reservation_id, payment_method, amount, status, transaction_id,
		                      payment_date, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.PaymentMethod,
		payment.Amount,
		payment.Status,
		payment.TransactionID,
		payment.PaymentDate,
		payment.Notes,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("reservation_id", payment.ReservationID.String()),
		)
		return fmt.Errorf("create payment for reservation %s: %w", payment.ReservationID.String(), err)
	}

	return nil
}

func (r *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments ORDER BY payment_date DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	query := `
		UPDATE payments
		SET reservation_id = $2, payment_method = $3, amount = $4, status = $5,
		    transaction_id = $6, payment_date = $7, notes = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		payment.ID,
		payment.ReservationID,
		payment.PaymentMethod,
		payment.Amount,
		payment.Status,
		payment.TransactionID,
		payment.PaymentDate,
		payment.Notes,
		payment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update payment",
			zap.Error(err),
			zap.String("payment_id", payment.ID.String()),
		)
		return fmt.Errorf("update payment %s: %w", payment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", payment.ID.String())
	}

	return nil
}

func (r *paymentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.Exec(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		r.log.Error("Failed to delete payment",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return fmt.Errorf("delete payment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	r.log.Info("Payment deleted", zap.String("payment_id", id.String()))
	return nil
}

func (r *paymentRepository) FindByReservationID(ctx context.Context, reservationID uuid.UUID) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE reservation_id = $1
		ORDER BY payment_date DESC
	`

	rows, err := r.db.Query(ctx, query, reservationID)
	if err != nil {
		r.log.Error("Failed to find payments by reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID.String()),
		)
		return nil, fmt.Errorf("find payments for reservation %s: %w", reservationID.String(), err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentRepository) FindByPaymentDateRange(ctx context.Context, start, end time.Time) ([]*entity.Payment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_date BETWEEN $1 AND $2
		ORDER BY payment_date DESC
	`

	rows, err := r.db.Query(ctx, query, start, end)
	if err != nil {
		r.log.Error("Failed to find payments by date range",
			zap.Error(err),
			zap.Time("start", start),
			zap.Time("end", end),
		)
		return nil, fmt.Errorf("find payments by date range: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows)
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	query := `UPDATE payments SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id, status)
	if err != nil {
		r.log.Error("Failed to update payment status",
			zap.Error(err),
			zap.String("payment_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update payment %s status to %s: %w", id.String(), string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("payment %s not found", id.String())
	}

	return nil
}

func collectPayments(rows pgx.Rows) ([]*entity.Payment, error) {
	var payments []*entity.Payment
	for rows.Next() {
		payment, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, nil
}
