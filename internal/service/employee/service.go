package employee

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
)

const (
	defaultHistory = "New employee"
	defaultPhone   = "Not specified"
)

type EmployeeServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	hub            *sse.Hub
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, attendanceRepo attendance.AttendanceRepository, hub *sse.Hub) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		hub:            hub,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	dept, _ := employee.ParseDepartment(req.Department)
	newEmployee := employee.Employee{
		FullName:          strings.TrimSpace(req.FullName),
		Email:             strings.TrimSpace(req.Email),
		Phone:             strings.TrimSpace(req.Phone),
		Position:          strings.TrimSpace(req.Position),
		Department:        dept,
		Salary:            req.Salary,
		EmploymentHistory: strings.TrimSpace(req.EmploymentHistory),
	}
	if newEmployee.Phone == "" {
		newEmployee.Phone = defaultPhone
	}
	if newEmployee.EmploymentHistory == "" {
		newEmployee.EmploymentHistory = defaultHistory
	}

	created, err := s.employeeRepo.Create(ctx, newEmployee)
	if err != nil {
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	resp := employee.NewEmployeeResponse(created)
	if s.hub != nil {
		s.hub.Publish(sse.Event{Name: employee.EventCreated, Data: resp}, string(user.RoleAdmin))
	}
	return resp, nil
}

// UpdateEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	updated, err := s.employeeRepo.Update(ctx, id, req)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(updated), nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id int) (employee.EmployeeResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(e), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context) ([]employee.EmployeeResponse, error) {
	all, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	out := make([]employee.EmployeeResponse, 0, len(all))
	for _, e := range all {
		out = append(out, employee.NewEmployeeResponse(e))
	}
	return out, nil
}

// GetAttendance implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetAttendance(ctx context.Context, id int) (attendance.RecordResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.RecordResponse{}, err
	}

	rec, err := s.attendanceRepo.GetByEmployeeID(ctx, id)
	if err != nil {
		if !errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.RecordResponse{}, fmt.Errorf("failed to get attendance: %w", err)
		}
		rec = attendance.Record{EmployeeID: id, Name: e.FullName, Days: []attendance.Day{}, LeaveRequests: []leave.Request{}}
	}
	return attendance.NewRecordResponse(rec), nil
}
