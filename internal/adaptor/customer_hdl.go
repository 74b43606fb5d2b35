package adaptor

import (
	"encoding/json"
	"net/http"

	"hotel-manager/internal/dto/request"
	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	service usecase.CustomerService
	log     *zap.Logger
}

func NewCustomerHandler(service usecase.CustomerService, log *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		service: service,
		log:     log.With(zap.String("handler", "customer")),
	}
}

// CreateCustomer handles POST /api/customers (protected)
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req request.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.CreateCustomer(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "create customer")
		return
	}

	utils.ResponseCreated(w, "success", customer)
}

// GetCustomerByID handles GET /api/customers/{id} (protected)
func (h *CustomerHandler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	customer, err := h.service.GetCustomerByID(r.Context(), customerID)
	if err != nil {
		handleServiceError(h.log, w, err, "get customer by ID")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// ListCustomers handles GET /api/customers (protected)
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if name := query.Get("search"); name != "" {
		customers, err := h.service.SearchCustomers(r.Context(), name)
		if err != nil {
			handleServiceError(h.log, w, err, "search customers")
			return
		}
		utils.ResponseSuccess(w, "success", customers)
		return
	}

	req := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	customers, err := h.service.ListCustomers(r.Context(), req)
	if err != nil {
		handleServiceError(h.log, w, err, "list customers")
		return
	}

	utils.ResponseSuccess(w, "success", customers)
}

// UpdateCustomer handles PUT /api/customers/{id} (protected)
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	var req request.UpdateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	customer, err := h.service.UpdateCustomer(r.Context(), customerID, &req)
	if err != nil {
		handleServiceError(h.log, w, err, "update customer")
		return
	}

	utils.ResponseSuccess(w, "success", customer)
}

// DeleteCustomer handles DELETE /api/admin/customers/{id} (admin only)
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID := chi.URLParam(r, "id")
	if customerID == "" {
		utils.ResponseBadRequest(w, "Customer ID is required", nil)
		return
	}

	if err := h.service.DeleteCustomer(r.Context(), customerID); err != nil {
		handleServiceError(h.log, w, err, "delete customer")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}
