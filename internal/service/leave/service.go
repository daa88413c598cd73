package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	leaveRepo    leave.LeaveRepository
	employeeRepo employee.EmployeeRepository
	hub          *sse.Hub
}

func NewLeaveService(leaveRepo leave.LeaveRepository, employeeRepo employee.EmployeeRepository, hub *sse.Hub) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:    leaveRepo,
		employeeRepo: employeeRepo,
		hub:          hub,
	}
}

// Approve implements leave.LeaveService.
func (s *LeaveServiceImpl) Approve(ctx context.Context, employeeID int, date string) (leave.RequestResponse, error) {
	return s.decide(ctx, employeeID, date, leave.StatusApproved)
}

// Reject implements leave.LeaveService.
func (s *LeaveServiceImpl) Reject(ctx context.Context, employeeID int, date string) (leave.RequestResponse, error) {
	return s.decide(ctx, employeeID, date, leave.StatusDenied)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, employeeID int, date string, next leave.Status) (leave.RequestResponse, error) {
	updated, err := s.leaveRepo.Transition(ctx, employeeID, date, next)
	if err != nil {
		return leave.RequestResponse{}, err
	}

	resp := leave.NewRequestResponse(employeeID, s.employeeName(ctx, employeeID), updated)
	s.publish(leave.EventUpdated, resp)
	return resp, nil
}

// Submit implements leave.LeaveService.
func (s *LeaveServiceImpl) Submit(ctx context.Context, req leave.SubmitLeaveRequest) (leave.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RequestResponse{}, err
	}

	added, err := s.leaveRepo.Add(ctx, req.EmployeeID, leave.Request{
		Date:   req.Date,
		Reason: leave.ReasonLabel(req.LeaveType),
	})
	if err != nil {
		return leave.RequestResponse{}, err
	}

	resp := leave.NewRequestResponse(req.EmployeeID, s.employeeName(ctx, req.EmployeeID), added)
	s.publish(leave.EventSubmitted, resp)
	return resp, nil
}

// SubmitRange implements leave.LeaveService. Either every day is filed or none is.
func (s *LeaveServiceImpl) SubmitRange(ctx context.Context, employeeID int, req leave.RangeLeaveRequest, now time.Time) (leave.RangeLeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.RangeLeaveResponse{}, err
	}

	dates, err := req.Dates()
	if err != nil {
		return leave.RangeLeaveResponse{}, err
	}
	if req.StartDate < validator.Today(now) {
		return leave.RangeLeaveResponse{}, leave.ErrStartDateInPast
	}

	label := leave.ReasonLabel(req.LeaveType)
	reqs := make([]leave.Request, 0, len(dates))
	for _, d := range dates {
		reqs = append(reqs, leave.Request{Date: d, Reason: label})
	}
	added, err := s.leaveRepo.AddAll(ctx, employeeID, reqs)
	if err != nil {
		return leave.RangeLeaveResponse{}, err
	}

	name := s.employeeName(ctx, employeeID)
	resp := leave.RangeLeaveResponse{Days: len(added), Requests: make([]leave.RequestResponse, 0, len(added))}
	for _, a := range added {
		r := leave.NewRequestResponse(employeeID, name, a)
		resp.Requests = append(resp.Requests, r)
		s.publish(leave.EventSubmitted, r)
	}
	return resp, nil
}

// ListPending implements leave.LeaveService.
func (s *LeaveServiceImpl) ListPending(ctx context.Context, limit int) ([]leave.RequestResponse, error) {
	pending, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending leave: %w", err)
	}
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}

	out := make([]leave.RequestResponse, 0, len(pending))
	for _, p := range pending {
		out = append(out, leave.NewRequestResponse(p.EmployeeID, p.EmployeeName, p.Request))
	}
	return out, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID int) ([]leave.RequestResponse, error) {
	requests, err := s.leaveRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	name := s.employeeName(ctx, employeeID)
	out := make([]leave.RequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, leave.NewRequestResponse(employeeID, name, r))
	}
	return out, nil
}

func (s *LeaveServiceImpl) employeeName(ctx context.Context, employeeID int) string {
	// The name is decoration; a lookup failure leaves it blank
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return ""
	}
	return e.FullName
}

func (s *LeaveServiceImpl) publish(name string, data leave.RequestResponse) {
	if s.hub == nil {
		return
	}
	s.hub.Publish(sse.Event{Name: name, Data: data}, string(user.RoleAdmin), string(user.RoleEmployee))
}
