package employee

import "context"

type EmployeeRepository interface {
	List(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id int) (Employee, error)
	// Create assigns the next id and seeds an empty attendance record and a default payroll record.
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, id int, req UpdateEmployeeRequest) (Employee, error)
	// Delete removes the employee with its attendance and payroll records.
	Delete(ctx context.Context, id int) error
}
