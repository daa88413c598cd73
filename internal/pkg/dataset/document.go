package dataset

import (
	"strings"

	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
)

// Wire shapes of the three published documents.

type employeeDocument struct {
	EmployeeInformation []employeeEntry `json:"employeeInformation"`
}

type employeeEntry struct {
	EmployeeID        int             `json:"employeeId"`
	Name              string          `json:"name"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	EmploymentHistory string          `json:"employmentHistory"`
	Contact           string          `json:"contact"`
}

type attendanceDocument struct {
	AttendanceAndLeave []attendanceEntry `json:"attendanceAndLeave"`
}

type attendanceEntry struct {
	EmployeeID    int          `json:"employeeId"`
	Name          string       `json:"name"`
	Attendance    []dayEntry   `json:"attendance"`
	LeaveRequests []leaveEntry `json:"leaveRequests"`
}

type dayEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type leaveEntry struct {
	Date   string `json:"date"`
	Reason string `json:"reason"`
	Status string `json:"status"`
}

type payrollDocument struct {
	PayrollData []payrollEntry `json:"payrollData"`
}

type payrollEntry struct {
	EmployeeID      int             `json:"employeeId"`
	HoursWorked     decimal.Decimal `json:"hoursWorked"`
	LeaveDeductions decimal.Decimal `json:"leaveDeductions"`
	FinalSalary     decimal.Decimal `json:"finalSalary"`
}

func (d employeeDocument) toDomain() []employee.Employee {
	out := make([]employee.Employee, 0, len(d.EmployeeInformation))
	for _, e := range d.EmployeeInformation {
		dept, ok := employee.ParseDepartment(e.Department)
		if !ok {
			// Unknown departments are kept verbatim so counts and filters still see them
			dept = employee.Department(strings.TrimSpace(e.Department))
		}
		out = append(out, employee.Employee{
			ID:                e.EmployeeID,
			FullName:          e.Name,
			Email:             e.Contact,
			Position:          e.Position,
			Department:        dept,
			Salary:            e.Salary,
			EmploymentHistory: e.EmploymentHistory,
		})
	}
	return out
}

func (d attendanceDocument) toDomain() []attendance.Record {
	out := make([]attendance.Record, 0, len(d.AttendanceAndLeave))
	for _, a := range d.AttendanceAndLeave {
		rec := attendance.Record{
			EmployeeID:    a.EmployeeID,
			Name:          a.Name,
			Days:          make([]attendance.Day, 0, len(a.Attendance)),
			LeaveRequests: make([]leave.Request, 0, len(a.LeaveRequests)),
		}
		for _, day := range a.Attendance {
			rec.Days = append(rec.Days, attendance.Day{Date: day.Date, Status: attendance.Status(day.Status)})
		}
		for _, lr := range a.LeaveRequests {
			rec.LeaveRequests = append(rec.LeaveRequests, leave.Request{
				Date:   lr.Date,
				Reason: lr.Reason,
				Status: leave.Status(lr.Status),
			})
		}
		out = append(out, rec)
	}
	return out
}

func (d payrollDocument) toDomain() []payroll.Record {
	out := make([]payroll.Record, 0, len(d.PayrollData))
	for _, p := range d.PayrollData {
		out = append(out, payroll.Record{
			EmployeeID:      p.EmployeeID,
			HoursWorked:     p.HoursWorked,
			LeaveDeductions: p.LeaveDeductions,
			FinalSalary:     p.FinalSalary,
		})
	}
	return out
}
