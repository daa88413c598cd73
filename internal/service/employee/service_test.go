package employee

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/dataset"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/sse"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
	"github.com/worksphere/worksphere-backend-go/internal/repository/memory"
)

func newTestService(t *testing.T, snap dataset.Snapshot) (employee.EmployeeService, *sse.Hub) {
	t.Helper()
	w := memory.NewWorkforce(snap)
	hub := sse.NewHub()
	return NewEmployeeService(memory.NewEmployeeRepository(w), memory.NewAttendanceRepository(w), hub), hub
}

func embedded(t *testing.T) dataset.Snapshot {
	t.Helper()
	snap, err := dataset.Embedded()
	require.NoError(t, err)
	return snap
}

func validCreate() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		FullName:   "Lerato Mahlangu",
		Email:      "lerato.mahlangu@moderntech.com",
		Position:   "QA Engineer",
		Department: "qa",
		Salary:     decimal.NewFromInt(52000),
	}
}

func TestCreateEmployee(t *testing.T) {
	svc, hub := newTestService(t, embedded(t))
	events, cancel := hub.Subscribe("admin")
	defer cancel()

	created, err := svc.CreateEmployee(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, 11, created.ID)
	assert.Equal(t, employee.DepartmentQA, created.Department)
	assert.Equal(t, "Not specified", created.Phone)
	assert.Equal(t, "New employee", created.EmploymentHistory)
	assert.Equal(t, "LM", created.Initials)

	select {
	case e := <-events:
		assert.Equal(t, employee.EventCreated, e.Name)
	case <-time.After(time.Second):
		t.Fatal("no employee.created event")
	}
}

func TestCreateEmployee_EmptyRepositoryStartsAtOne(t *testing.T) {
	svc, _ := newTestService(t, dataset.Snapshot{})

	first, err := svc.CreateEmployee(context.Background(), validCreate())
	require.NoError(t, err)
	second, err := svc.CreateEmployee(context.Background(), validCreate())
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestCreateEmployee_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *employee.CreateEmployeeRequest)
		field  string
	}{
		{"name", func(r *employee.CreateEmployeeRequest) { r.FullName = "" }, "full_name"},
		{"email", func(r *employee.CreateEmployeeRequest) { r.Email = "" }, "email"},
		{"position", func(r *employee.CreateEmployeeRequest) { r.Position = "" }, "position"},
		{"department", func(r *employee.CreateEmployeeRequest) { r.Department = "Legal" }, "department"},
		{"salary", func(r *employee.CreateEmployeeRequest) { r.Salary = decimal.Zero }, "salary"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(t, embedded(t))
			req := validCreate()
			tt.mutate(&req)

			_, err := svc.CreateEmployee(context.Background(), req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)

			all, err := svc.ListEmployees(context.Background())
			require.NoError(t, err)
			assert.Len(t, all, 10, "rejected input leaves the repository unchanged")
		})
	}
}

func TestUpdateEmployee(t *testing.T) {
	svc, _ := newTestService(t, embedded(t))
	ctx := context.Background()

	salary := decimal.NewFromInt(75000)
	dept := "IT"
	updated, err := svc.UpdateEmployee(ctx, 1, employee.UpdateEmployeeRequest{Salary: &salary, Department: &dept})
	require.NoError(t, err)
	assert.True(t, salary.Equal(updated.Salary))
	assert.Equal(t, employee.DepartmentIT, updated.Department)

	_, err = svc.UpdateEmployee(ctx, 404, employee.UpdateEmployeeRequest{Salary: &salary})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)

	bad := "Legal"
	_, err = svc.UpdateEmployee(ctx, 1, employee.UpdateEmployeeRequest{Department: &bad})
	var verrs validator.ValidationErrors
	assert.ErrorAs(t, err, &verrs)
}

func TestGetAttendance(t *testing.T) {
	svc, _ := newTestService(t, embedded(t))
	ctx := context.Background()

	rec, err := svc.GetAttendance(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, rec.Attendance, 5)
	require.NotNil(t, rec.AttendanceRate)
	assert.Equal(t, 80, *rec.AttendanceRate)

	created, err := svc.CreateEmployee(ctx, validCreate())
	require.NoError(t, err)
	rec, err = svc.GetAttendance(ctx, created.ID)
	require.NoError(t, err)
	assert.Empty(t, rec.Attendance)
	assert.Nil(t, rec.AttendanceRate)

	_, err = svc.GetAttendance(ctx, 404)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}
