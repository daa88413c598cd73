package leave

import "context"

type LeaveRepository interface {
	// Add appends a Pending request for the employee.
	Add(ctx context.Context, employeeID int, req Request) (Request, error)
	// AddAll appends one Pending request per entry, or none when any date is already taken.
	AddAll(ctx context.Context, employeeID int, reqs []Request) ([]Request, error)
	// Transition moves the request on date to next, returning ErrLeaveRequestAlreadyProcessed
	// when its current status does not allow it.
	Transition(ctx context.Context, employeeID int, date string, next Status) (Request, error)
	Get(ctx context.Context, employeeID int, date string) (Request, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]Request, error)
	// ListPending returns pending requests in employee then insertion order.
	ListPending(ctx context.Context) ([]PendingRequest, error)
}
