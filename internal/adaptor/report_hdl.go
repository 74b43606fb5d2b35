package adaptor

import (
	"net/http"

	"hotel-manager/internal/usecase"
	"hotel-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type ReportHandler struct {
	service  usecase.ReportService
	activity usecase.ActivityService
	log      *zap.Logger
}

func NewReportHandler(service usecase.ReportService, activity usecase.ActivityService, log *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service:  service,
		activity: activity,
		log:      log.With(zap.String("handler", "report")),
	}
}

// Dashboard handles GET /api/admin/reports/dashboard (manager or admin)
func (h *ReportHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.service.DashboardSummary(r.Context())
	if err != nil {
		handleServiceError(h.log, w, err, "dashboard summary")
		return
	}

	utils.ResponseSuccess(w, "success", summary)
}

// RecentActivity handles GET /api/admin/reports/activity (manager or admin)
func (h *ReportHandler) RecentActivity(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseInt(r.URL.Query().Get("limit"), 50)

	entries, err := h.activity.ListRecent(r.Context(), limit)
	if err != nil {
		handleServiceError(h.log, w, err, "list recent activity")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// EntityActivity handles GET /api/admin/reports/activity/{entityType}/{entityID} (manager or admin)
func (h *ReportHandler) EntityActivity(w http.ResponseWriter, r *http.Request) {
	entityType := chi.URLParam(r, "entityType")
	entityID := chi.URLParam(r, "entityID")
	if entityType == "" || entityID == "" {
		utils.ResponseBadRequest(w, "Entity type and ID are required", nil)
		return
	}

	entries, err := h.activity.ListByEntity(r.Context(), entityType, entityID)
	if err != nil {
		handleServiceError(h.log, w, err, "list entity activity")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}
