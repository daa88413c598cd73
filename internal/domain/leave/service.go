package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	// Approve moves a Pending request to Approved.
	Approve(ctx context.Context, employeeID int, date string) (RequestResponse, error)
	// Reject moves a Pending request to Denied.
	Reject(ctx context.Context, employeeID int, date string) (RequestResponse, error)

	// Submit files a single-day request on behalf of an employee.
	Submit(ctx context.Context, req SubmitLeaveRequest) (RequestResponse, error)
	// SubmitRange files one Pending request per calendar day between start and end.
	SubmitRange(ctx context.Context, employeeID int, req RangeLeaveRequest, now time.Time) (RangeLeaveResponse, error)

	// ListPending returns at most limit pending requests; limit <= 0 means all.
	ListPending(ctx context.Context, limit int) ([]RequestResponse, error)
	ListByEmployee(ctx context.Context, employeeID int) ([]RequestResponse, error)
}
