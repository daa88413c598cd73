package payroll

import "context"

type PayrollRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (Record, error)
	List(ctx context.Context) ([]Record, error)
}
