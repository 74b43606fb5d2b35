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

type PaymentHandler struct {
	service usecase.PaymentService
	log     *zap.Logger
}

func NewPaymentHandler(service usecase.PaymentService, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{
		service: service,
		log:     log.With(zap.String("handler", "payment")),
	}
}

// RecordPayment handles POST /api/payments (protected)
func (h *PaymentHandler) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.RecordPayment(r.Context(), &req)
	if err != nil {
		handleServiceError(h.log, w, err, "record payment")
		return
	}

	utils.ResponseCreated(w, "success", payment)
}

// GetPaymentByID handles GET /api/payments/{id} (protected)
func (h *PaymentHandler) GetPaymentByID(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	payment, err := h.service.GetPaymentByID(r.Context(), paymentID)
	if err != nil {
		handleServiceError(h.log, w, err, "get payment by ID")
		return
	}

	utils.ResponseSuccess(w, "success", payment)
}

// ListPayments handles GET /api/payments (protected)
func (h *PaymentHandler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.service.ListPayments(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "list payments")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// ListByReservation handles GET /api/reservations/{id}/payments (protected)
func (h *PaymentHandler) ListByReservation(w http.ResponseWriter, r *http.Request) {
	reservationID := chi.URLParam(r, "id")
	if reservationID == "" {
		utils.ResponseBadRequest(w, "Reservation ID is required", nil)
		return
	}

	payments, err := h.service.ListByReservation(r.Context(), reservationID)
	if err != nil {
		handleServiceError(h.log, w, err, "list payments by reservation")
		return
	}

	utils.ResponseSuccess(w, "success", payments)
}

// UpdateStatus handles PUT /api/payments/{id}/status (protected)
func (h *PaymentHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	paymentID := chi.URLParam(r, "id")
	if paymentID == "" {
		utils.ResponseBadRequest(w, "Payment ID is required", nil)
		return
	}

	var req request.UpdatePaymentStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), paymentID, req.Status); err != nil {
		handleServiceError(h.log, w, err, "update payment status")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// TotalRevenue handles GET /api/admin/revenue (manager or admin)
// With start and end query parameters it reports the revenue whose payment
// dates fall inside the range; without them it reports all-time revenue.
func (h *PaymentHandler) TotalRevenue(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, end := query.Get("start"), query.Get("end")

	if start != "" || end != "" {
		if start == "" || end == "" {
			utils.ResponseBadRequest(w, "Both start and end dates are required", nil)
			return
		}

		revenue, err := h.service.TotalRevenueByDateRange(r.Context(), start, end)
		if err != nil {
			handleServiceError(h.log, w, err, "compute revenue by date range")
			return
		}
		utils.ResponseSuccess(w, "success", revenue)
		return
	}

	revenue, err := h.service.TotalRevenue(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "compute total revenue")
		return
	}

	utils.ResponseSuccess(w, "success", revenue)
}
