package memory

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
)

type employeeRepositoryImpl struct {
	w *Workforce
}

func NewEmployeeRepository(w *Workforce) employee.EmployeeRepository {
	return &employeeRepositoryImpl{w: w}
}

func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	return append([]employee.Employee{}, r.w.employees...), nil
}

func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int) (employee.Employee, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	i := r.w.employeeIndex(id)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return r.w.employees[i], nil
}

// Create ignores newEmployee.ID and assigns max+1.
func (r *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()

	newEmployee.ID = r.w.nextEmployeeID()
	r.w.employees = append(r.w.employees, newEmployee)
	r.w.attendance = append(r.w.attendance, attendance.Record{
		EmployeeID:    newEmployee.ID,
		Name:          newEmployee.FullName,
		Days:          []attendance.Day{},
		LeaveRequests: []leave.Request{},
	})
	r.w.payroll = append(r.w.payroll, payroll.NewRecord(newEmployee.ID, newEmployee.Salary))

	return newEmployee, nil
}

func (r *employeeRepositoryImpl) Update(ctx context.Context, id int, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()

	i := r.w.employeeIndex(id)
	if i < 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	req.Apply(&r.w.employees[i])

	// Keep the denormalized name on the attendance record in step
	if req.FullName != nil {
		if j := r.w.attendanceIndex(id); j >= 0 {
			r.w.attendance[j].Name = *req.FullName
		}
	}
	return r.w.employees[i], nil
}

func (r *employeeRepositoryImpl) Delete(ctx context.Context, id int) error {
	r.w.mu.Lock()
	defer r.w.mu.Unlock()

	i := r.w.employeeIndex(id)
	if i < 0 {
		return employee.ErrEmployeeNotFound
	}
	r.w.employees = append(r.w.employees[:i], r.w.employees[i+1:]...)
	if j := r.w.attendanceIndex(id); j >= 0 {
		r.w.attendance = append(r.w.attendance[:j], r.w.attendance[j+1:]...)
	}
	for j := range r.w.payroll {
		if r.w.payroll[j].EmployeeID == id {
			r.w.payroll = append(r.w.payroll[:j], r.w.payroll[j+1:]...)
			break
		}
	}
	return nil
}
