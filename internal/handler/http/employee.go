package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/dashboard"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Attendance(w http.ResponseWriter, r *http.Request)
}

type employeeHandlerImpl struct {
	employeeService  employee.EmployeeService
	dashboardService dashboard.DashboardService
	now              func() time.Time
}

func NewEmployeeHandler(employeeService employee.EmployeeService, dashboardService dashboard.DashboardService, now func() time.Time) EmployeeHandler {
	return &employeeHandlerImpl{
		employeeService:  employeeService,
		dashboardService: dashboardService,
		now:              now,
	}
}

type employeeListResponse struct {
	View      dashboard.ViewState      `json:"view"`
	Total     int                      `json:"total"`
	Employees []dashboard.EmployeeView `json:"employees"`
}

// viewFromQuery overlays the query parameters on the saved view without persisting them.
func (h *employeeHandlerImpl) viewFromQuery(r *http.Request) (dashboard.ViewState, error) {
	current, err := h.dashboardService.CurrentView(r.Context())
	if err != nil {
		return dashboard.ViewState{}, err
	}

	q := r.URL.Query()
	var patch dashboard.UpdateViewRequest
	if q.Has("department") {
		department := q.Get("department")
		patch.FilterDepartment = &department
	}
	if q.Has("sort") {
		sortKey := dashboard.SortKey(q.Get("sort"))
		patch.SortKey = &sortKey
	}
	if q.Has("search") {
		search := q.Get("search")
		patch.SearchTerm = &search
	}
	if q.Has("view") {
		mode := dashboard.ViewMode(q.Get("view"))
		patch.ViewMode = &mode
	}
	if err := patch.Validate(); err != nil {
		return dashboard.ViewState{}, err
	}
	return patch.Apply(current), nil
}

// List implements EmployeeHandler.
func (h *employeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	view, err := h.viewFromQuery(r)
	if err != nil {
		slog.Error("ListEmployees query error", "error", err)
		response.HandleError(w, err)
		return
	}
	today, err := dayParam(r, h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employees, err := h.dashboardService.FilteredSortedEmployees(r.Context(), view, today)
	if err != nil {
		slog.Error("ListEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeListResponse{View: view, Total: len(employees), Employees: employees})
}

// Create implements EmployeeHandler.
func (h *employeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("CreateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("CreateEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	created, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", created)
}

// Get implements EmployeeHandler.
func (h *employeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	today, err := dayParam(r, h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	details, err := h.dashboardService.EmployeeDetails(r.Context(), id, today)
	if err != nil {
		slog.Error("GetEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, details)
}

// Update implements EmployeeHandler.
func (h *employeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEmployee decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("UpdateEmployee validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	updated, err := h.employeeService.UpdateEmployee(r.Context(), id, req)
	if err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", updated)
}

type employeeStatusResponse struct {
	EmployeeID int              `json:"employee_id"`
	Date       string           `json:"date"`
	Status     dashboard.Status `json:"status"`
}

// Status implements EmployeeHandler.
func (h *employeeHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	today, err := dayParam(r, h.now)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	status, err := h.dashboardService.EmployeeStatus(r.Context(), id, today)
	if err != nil {
		slog.Error("EmployeeStatus service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, employeeStatusResponse{
		EmployeeID: id,
		Date:       validator.Today(today),
		Status:     status,
	})
}

// Attendance implements EmployeeHandler.
func (h *employeeHandlerImpl) Attendance(w http.ResponseWriter, r *http.Request) {
	id, err := intURLParam(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	record, err := h.employeeService.GetAttendance(r.Context(), id)
	if err != nil {
		slog.Error("EmployeeAttendance service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, record)
}
