package usecase

import (
	"context"
	"fmt"

	"hotel-manager/internal/data/entity"
	"hotel-manager/internal/data/repository"
	"hotel-manager/internal/dto/response"

	"go.uber.org/zap"
)

type ReportService interface {
	DashboardSummary(ctx context.Context) (*response.DashboardResponse, error)
}

type reportService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReportService(repo *repository.Repository, log *zap.Logger) ReportService {
	return &reportService{
		repo: repo,
		log:  log.With(zap.String("service", "report")),
	}
}

func (s *reportService) DashboardSummary(ctx context.Context) (*response.DashboardResponse, error) {
	totalReservations, err := s.repo.Reservation.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count reservations: %w", err)
	}

	active, err := s.repo.Reservation.FindActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active reservations: %w", err)
	}

	totalRooms, err := s.repo.Room.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	availableRooms, err := s.repo.Room.CountByStatus(ctx, entity.RoomStatusAvailable)
	if err != nil {
		return nil, fmt.Errorf("count available rooms: %w", err)
	}

	totalCustomers, err := s.repo.Customer.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	payments, err := s.repo.Payment.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}

	return &response.DashboardResponse{
		TotalReservations:  totalReservations,
		ActiveReservations: len(active),
		TotalRooms:         totalRooms,
		AvailableRooms:     availableRooms,
		TotalCustomers:     totalCustomers,
		TotalRevenue:       sumCompleted(payments),
	}, nil
}
