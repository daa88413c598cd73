package dashboard

import (
	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type EmployeeView struct {
	employee.EmployeeResponse
	Status         Status          `json:"status"`
	AttendanceRate *int            `json:"attendance_rate"` // nil renders as N/A
	FinalSalary    decimal.Decimal `json:"final_salary"`
}

type StatsResponse struct {
	Date                 string          `json:"date"`
	TotalEmployees       int             `json:"total_employees"`
	ActiveToday          int             `json:"active_today"`
	OnLeaveToday         int             `json:"on_leave_today"`
	PendingLeaveRequests int             `json:"pending_leave_requests"`
	TotalPayroll         decimal.Decimal `json:"total_payroll"`
}

// UpdateViewRequest patches the view state; nil fields are kept.
type UpdateViewRequest struct {
	FilterDepartment *string   `json:"filter_department,omitempty"`
	SortKey          *SortKey  `json:"sort_key,omitempty"`
	SearchTerm       *string   `json:"search_term,omitempty"`
	ViewMode         *ViewMode `json:"view_mode,omitempty"`
}

func (r *UpdateViewRequest) Validate() error {
	var errs validator.ValidationErrors

	// filter_department is free-form; an unknown department matches nobody
	if r.SortKey != nil && !r.SortKey.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "sort_key",
			Message: "sort_key must be one of name-asc, name-desc, dept-asc, dept-desc, salary-high, salary-low",
		})
	}
	if r.ViewMode != nil && !r.ViewMode.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "view_mode",
			Message: "view_mode must be grid or list",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r UpdateViewRequest) Apply(v ViewState) ViewState {
	if r.FilterDepartment != nil {
		v.FilterDepartment = *r.FilterDepartment
	}
	if r.SortKey != nil {
		v.SortKey = *r.SortKey
	}
	if r.SearchTerm != nil {
		v.SearchTerm = *r.SearchTerm
	}
	if r.ViewMode != nil {
		v.ViewMode = *r.ViewMode
	}
	return v.Normalize()
}

type RecentAttendanceResponse struct {
	EmployeeID   int                      `json:"employee_id"`
	Name         string                   `json:"name"`
	Days         []attendance.DayResponse `json:"days"`
	PresentCount int                      `json:"present_count"`
	TotalDays    int                      `json:"total_days"`
}

type EmployeeDetailsResponse struct {
	Employee   EmployeeView              `json:"employee"`
	Attendance attendance.RecordResponse `json:"attendance"`
	Payroll    *payroll.PayslipResponse  `json:"payroll"`
}

type OverviewResponse struct {
	Stats        StatsResponse           `json:"stats"`
	Departments  map[string]int          `json:"departments"`
	PendingLeave []leave.RequestResponse `json:"pending_leave"`
	Payroll      payroll.SummaryResponse `json:"payroll"`
}
