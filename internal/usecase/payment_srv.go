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

type PaymentService interface {
	RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error)
	GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error)
	ListPayments(ctx context.Context) ([]response.PaymentResponse, error)
	ListByReservation(ctx context.Context, reservationID string) ([]response.PaymentResponse, error)
	UpdateStatus(ctx context.Context, paymentID, status string) error
	TotalRevenue(ctx context.Context) (*response.RevenueResponse, error)
	TotalRevenueByDateRange(ctx context.Context, start, end string) (*response.RevenueResponse, error)
}

type paymentService struct {
	repo     *repository.Repository
	activity ActivityService
	log      *zap.Logger
}

func NewPaymentService(repo *repository.Repository, activity ActivityService, log *zap.Logger) PaymentService {
	return &paymentService{
		repo:     repo,
		activity: activity,
		log:      log.With(zap.String("service", "payment")),
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, req *request.RecordPaymentRequest) (*response.PaymentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	reservationID, err := uuid.Parse(req.ReservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, req.ReservationID)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, reservationID)
	if err != nil {
		return nil, fmt.Errorf("verify reservation: %w", err)
	}
	if reservation == nil {
		return nil, fmt.Errorf("reservation %s: %w", req.ReservationID, ErrNotFound)
	}

	status := entity.PaymentStatusCompleted
	if req.Status != "" {
		parsed, ok := entity.ParsePaymentStatus(req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown payment status %s", ErrValidation, req.Status)
		}
		status = parsed
	}

	paymentDate := time.Now()
	if req.PaymentDate != "" {
		parsed, err := utils.ParseDate(req.PaymentDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payment date %s", ErrValidation, req.PaymentDate)
		}
		paymentDate = parsed
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReservationID: reservationID,
		PaymentMethod: req.PaymentMethod,
		Amount:        req.Amount,
		Status:        status,
		TransactionID: req.TransactionID,
		PaymentDate:   paymentDate,
		Notes:         req.Notes,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.activity.Record(ctx, nil, "payment.recorded", "payment", &payment.ID,
		fmt.Sprintf("%.2f via %s for reservation %s", req.Amount, req.PaymentMethod, req.ReservationID))

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("reservation_id", req.ReservationID),
		zap.Float64("amount", req.Amount),
		zap.String("status", string(status)),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) GetPaymentByID(ctx context.Context, paymentID string) (*response.PaymentResponse, error) {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid payment ID %s", ErrValidation, paymentID)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return nil, fmt.Errorf("payment %s: %w", paymentID, ErrNotFound)
	}

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}

func (s *paymentService) ListPayments(ctx context.Context) ([]response.PaymentResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list payments", zap.Error(err))
		return nil, fmt.Errorf("list payments: %w", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}

func (s *paymentService) ListByReservation(ctx context.Context, reservationID string) ([]response.PaymentResponse, error) {
	id, err := uuid.Parse(reservationID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid reservation ID %s", ErrValidation, reservationID)
	}

	payments, err := s.repo.Payment.FindByReservationID(ctx, id)
	if err != nil {
		s.log.Error("Failed to list payments by reservation",
			zap.Error(err),
			zap.String("reservation_id", reservationID),
		)
		return nil, fmt.Errorf("list payments by reservation: %w", err)
	}

	responses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		responses[i] = response.PaymentToResponse(payment)
	}

	return responses, nil
}

func (s *paymentService) UpdateStatus(ctx context.Context, paymentID, status string) error {
	id, err := uuid.Parse(paymentID)
	if err != nil {
		return fmt.Errorf("%w: invalid payment ID %s", ErrValidation, paymentID)
	}

	newStatus, ok := entity.ParsePaymentStatus(status)
	if !ok {
		return fmt.Errorf("%w: unknown payment status %s", ErrValidation, status)
	}

	payment, err := s.repo.Payment.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get payment: %w", err)
	}
	if payment == nil {
		return fmt.Errorf("payment %s: %w", paymentID, ErrNotFound)
	}

	if err := s.repo.Payment.UpdateStatus(ctx, id, newStatus); err != nil {
		return fmt.Errorf("update payment status: %w", err)
	}

	s.activity.Record(ctx, nil, "payment.status_changed", "payment", &id,
		fmt.Sprintf("%s -> %s", payment.Status, newStatus))

	s.log.Info("Payment status updated",
		zap.String("payment_id", paymentID),
		zap.String("from", string(payment.Status)),
		zap.String("to", status),
	)

	return nil
}

// TotalRevenue sums completed payments only. Pending, failed and refunded
// payments never count toward revenue.
func (s *paymentService) TotalRevenue(ctx context.Context) (*response.RevenueResponse, error) {
	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to compute total revenue", zap.Error(err))
		return nil, fmt.Errorf("compute total revenue: %w", err)
	}

	return &response.RevenueResponse{Total: sumCompleted(payments)}, nil
}

func (s *paymentService) TotalRevenueByDateRange(ctx context.Context, start, end string) (*response.RevenueResponse, error) {
	startDate, err := utils.ParseDate(start)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid start date %s", ErrValidation, start)
	}

	endDate, err := utils.ParseDate(end)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid end date %s", ErrValidation, end)
	}

	payments, err := s.repo.Payment.FindByPaymentDateRange(ctx, startDate, endDate)
	if err != nil {
		s.log.Error("Failed to compute revenue by date range",
			zap.Error(err),
			zap.String("start", start),
			zap.String("end", end),
		)
		return nil, fmt.Errorf("compute revenue by date range: %w", err)
	}

	return &response.RevenueResponse{
		Total: sumCompleted(payments),
		Start: start,
		End:   end,
	}, nil
}

func sumCompleted(payments []*entity.Payment) float64 {
	var total float64
	for _, payment := range payments {
		if payment.Status == entity.PaymentStatusCompleted {
			total += payment.Amount
		}
	}
	return total
}
