package employee

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
)

// EmployeeService defines business logic for employee operations
type EmployeeService interface {
	// CreateEmployee adds a new hire (admin only)
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee edits an existing employee (admin only)
	UpdateEmployee(ctx context.Context, id int, req UpdateEmployeeRequest) (EmployeeResponse, error)

	GetEmployee(ctx context.Context, id int) (EmployeeResponse, error)
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetAttendance returns the employee's attendance; an employee without entries gets an empty record
	GetAttendance(ctx context.Context, id int) (attendance.RecordResponse, error)
}
