package dashboard

import (
	"context"
	"time"
)

type DashboardService interface {
	EmployeeStatus(ctx context.Context, employeeID int, today time.Time) (Status, error)
	// AttendanceRate returns ok=false when the employee has no attendance.
	AttendanceRate(ctx context.Context, employeeID int) (rate int, ok bool, err error)
	FilteredSortedEmployees(ctx context.Context, view ViewState, today time.Time) ([]EmployeeView, error)
	Stats(ctx context.Context, today time.Time) (StatsResponse, error)
	DepartmentCounts(ctx context.Context) (map[string]int, error)

	CurrentView(ctx context.Context) (ViewState, error)
	UpdateView(ctx context.Context, patch UpdateViewRequest) (ViewState, error)
	// ResetView clears the filter and search, keeping sort and layout.
	ResetView(ctx context.Context) (ViewState, error)

	RecentAttendance(ctx context.Context, employees, days int) ([]RecentAttendanceResponse, error)
	EmployeeDetails(ctx context.Context, employeeID int, today time.Time) (EmployeeDetailsResponse, error)
	Overview(ctx context.Context, today time.Time) (OverviewResponse, error)
}
