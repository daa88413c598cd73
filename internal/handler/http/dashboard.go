package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/dashboard"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
)

const (
	defaultRecentEmployees = 3
	defaultRecentDays      = 3
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
	Overview(w http.ResponseWriter, r *http.Request)
	Departments(w http.ResponseWriter, r *http.Request)
	GetView(w http.ResponseWriter, r *http.Request)
	UpdateView(w http.ResponseWriter, r *http.Request)
	ResetView(w http.ResponseWriter, r *http.Request)
	RecentAttendance(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

func NewDashboardHandler(dashboardService dashboard.DashboardService, now func() time.Time) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
		now:              now,
	}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	today, err := dayParam(r, h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	stats, err := h.dashboardService.Stats(r.Context(), today)
	if err != nil {
		slog.Error("DashboardStats service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}

// Overview implements DashboardHandler.
func (h *dashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	today, err := dayParam(r, h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	overview, err := h.dashboardService.Overview(r.Context(), today)
	if err != nil {
		slog.Error("DashboardOverview service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, overview)
}

// Departments implements DashboardHandler.
func (h *dashboardHandlerImpl) Departments(w http.ResponseWriter, r *http.Request) {
	counts, err := h.dashboardService.DepartmentCounts(r.Context())
	if err != nil {
		slog.Error("DepartmentCounts service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, counts)
}

// GetView implements DashboardHandler.
func (h *dashboardHandlerImpl) GetView(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardService.CurrentView(r.Context())
	if err != nil {
		slog.Error("GetView service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// UpdateView implements DashboardHandler.
func (h *dashboardHandlerImpl) UpdateView(w http.ResponseWriter, r *http.Request) {
	var req dashboard.UpdateViewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateView decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("UpdateView validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	view, err := h.dashboardService.UpdateView(r.Context(), req)
	if err != nil {
		slog.Error("UpdateView service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, view)
}

// ResetView implements DashboardHandler.
func (h *dashboardHandlerImpl) ResetView(w http.ResponseWriter, r *http.Request) {
	view, err := h.dashboardService.ResetView(r.Context())
	if err != nil {
		slog.Error("ResetView service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Filters reset", view)
}

// RecentAttendance implements DashboardHandler.
func (h *dashboardHandlerImpl) RecentAttendance(w http.ResponseWriter, r *http.Request) {
	employees := getIntQueryParam(r, "employees", defaultRecentEmployees)
	days := getIntQueryParam(r, "days", defaultRecentDays)

	recent, err := h.dashboardService.RecentAttendance(r.Context(), employees, days)
	if err != nil {
		slog.Error("RecentAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, recent)
}
