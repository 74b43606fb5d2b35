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

type CustomerService interface {
	CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error)
	GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error)
	ListCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error)
	SearchCustomers(ctx context.Context, name string) ([]response.CustomerResponse, error)
	UpdateCustomer(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

type customerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewCustomerService(repo *repository.Repository, log *zap.Logger) CustomerService {
	return &customerService{
		repo: repo,
		log:  log.With(zap.String("service", "customer")),
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, req *request.CreateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create customer validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	if req.Email != nil {
		existing, err := s.repo.Customer.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, fmt.Errorf("check customer email: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email %s already registered", ErrValidation, *req.Email)
		}
	}

	now := time.Now()
	customer := &entity.Customer{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		IDNumber:  req.IDNumber,
		Address:   req.Address,
	}

	if err := s.repo.Customer.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}

	s.log.Info("Customer created",
		zap.String("customer_id", customer.ID.String()),
		zap.String("name", customer.FirstName+" "+customer.LastName),
	)

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) GetCustomerByID(ctx context.Context, customerID string) (*response.CustomerResponse, error) {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) ListCustomers(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.CustomerResponse], error) {
	customers, err := s.repo.Customer.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to list customers", zap.Error(err))
		return nil, fmt.Errorf("list customers: %w", err)
	}

	total, err := s.repo.Customer.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("count customers: %w", err)
	}

	responses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = response.CustomerToResponse(customer)
	}

	return response.NewPaginatedResponse(responses, req.Page, req.PerPage, total), nil
}

func (s *customerService) SearchCustomers(ctx context.Context, name string) ([]response.CustomerResponse, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: search name is required", ErrValidation)
	}

	customers, err := s.repo.Customer.SearchByName(ctx, name)
	if err != nil {
		s.log.Error("Failed to search customers",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("search customers: %w", err)
	}

	responses := make([]response.CustomerResponse, len(customers))
	for i, customer := range customers {
		responses[i] = response.CustomerToResponse(customer)
	}

	return responses, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, req *request.UpdateCustomerRequest) (*response.CustomerResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrValidation, utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(customerID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return nil, fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.Phone = req.Phone
	customer.IDNumber = req.IDNumber
	customer.Address = req.Address
	customer.UpdatedAt = time.Now()

	if err := s.repo.Customer.Update(ctx, customer); err != nil {
		return nil, fmt.Errorf("update customer: %w", err)
	}

	s.log.Info("Customer updated", zap.String("customer_id", customerID))

	resp := response.CustomerToResponse(customer)
	return &resp, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	id, err := uuid.Parse(customerID)
	if err != nil {
		return fmt.Errorf("%w: invalid customer ID %s", ErrValidation, customerID)
	}

	customer, err := s.repo.Customer.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get customer: %w", err)
	}
	if customer == nil {
		return fmt.Errorf("customer %s: %w", customerID, ErrNotFound)
	}

	if err := s.repo.Customer.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}

	s.log.Info("Customer deleted", zap.String("customer_id", customerID))
	return nil
}
