package memory

import (
	"context"
	"fmt"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
)

// Leave requests live on the attendance records, keyed by (employee id, date).
type leaveRepositoryImpl struct {
	w *Workforce
}

func NewLeaveRepository(w *Workforce) leave.LeaveRepository {
	return &leaveRepositoryImpl{w: w}
}

func (r *leaveRepositoryImpl) Add(ctx context.Context, employeeID int, req leave.Request) (leave.Request, error) {
	added, err := r.AddAll(ctx, employeeID, []leave.Request{req})
	if err != nil {
		return leave.Request{}, err
	}
	return added[0], nil
}

func (r *leaveRepositoryImpl) AddAll(ctx context.Context, employeeID int, reqs []leave.Request) ([]leave.Request, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()

	ei := r.w.employeeIndex(employeeID)
	if ei < 0 {
		return nil, employee.ErrEmployeeNotFound
	}

	taken := make(map[string]bool, len(reqs))
	i := r.w.attendanceIndex(employeeID)
	if i >= 0 {
		for _, existing := range r.w.attendance[i].LeaveRequests {
			taken[existing.Date] = true
		}
	}
	added := make([]leave.Request, 0, len(reqs))
	for _, req := range reqs {
		if taken[req.Date] {
			return nil, fmt.Errorf("%s: %w", req.Date, leave.ErrDuplicateLeaveDate)
		}
		taken[req.Date] = true
		req.Status = leave.StatusPending
		added = append(added, req)
	}

	if i < 0 {
		r.w.attendance = append(r.w.attendance, attendance.Record{
			EmployeeID: employeeID,
			Name:       r.w.employees[ei].FullName,
			Days:       []attendance.Day{},
		})
		i = len(r.w.attendance) - 1
	}
	r.w.attendance[i].LeaveRequests = append(r.w.attendance[i].LeaveRequests, added...)
	return append([]leave.Request{}, added...), nil
}

func (r *leaveRepositoryImpl) Transition(ctx context.Context, employeeID int, date string, next leave.Status) (leave.Request, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()

	i := r.w.attendanceIndex(employeeID)
	if i < 0 {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	requests := r.w.attendance[i].LeaveRequests
	for j := range requests {
		if requests[j].Date != date {
			continue
		}
		if !requests[j].Status.CanTransitionTo(next) {
			return leave.Request{}, leave.ErrLeaveRequestAlreadyProcessed
		}
		requests[j].Status = next
		return requests[j], nil
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (r *leaveRepositoryImpl) Get(ctx context.Context, employeeID int, date string) (leave.Request, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	i := r.w.attendanceIndex(employeeID)
	if i < 0 {
		return leave.Request{}, leave.ErrLeaveRequestNotFound
	}
	for _, lr := range r.w.attendance[i].LeaveRequests {
		if lr.Date == date {
			return lr, nil
		}
	}
	return leave.Request{}, leave.ErrLeaveRequestNotFound
}

func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int) ([]leave.Request, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	if r.w.employeeIndex(employeeID) < 0 {
		return nil, employee.ErrEmployeeNotFound
	}
	i := r.w.attendanceIndex(employeeID)
	if i < 0 {
		return []leave.Request{}, nil
	}
	return append([]leave.Request{}, r.w.attendance[i].LeaveRequests...), nil
}

func (r *leaveRepositoryImpl) ListPending(ctx context.Context) ([]leave.PendingRequest, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	var out []leave.PendingRequest
	for _, rec := range r.w.attendance {
		for _, lr := range rec.LeaveRequests {
			if lr.Status == leave.StatusPending {
				out = append(out, leave.PendingRequest{
					EmployeeID:   rec.EmployeeID,
					EmployeeName: rec.Name,
					Request:      lr,
				})
			}
		}
	}
	return out, nil
}
