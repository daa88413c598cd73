package attendance

import "context"

type AttendanceRepository interface {
	GetByEmployeeID(ctx context.Context, employeeID int) (Record, error)
	List(ctx context.Context) ([]Record, error)
}
