package memory

import (
	"sync"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/dataset"
)

// Workforce holds the three loosely joined collections. Records join on employee id;
// an id may be missing from any of them.
type Workforce struct {
	mu         sync.RWMutex
	employees  []employee.Employee
	attendance []attendance.Record
	payroll    []payroll.Record
}

func NewWorkforce(snap dataset.Snapshot) *Workforce {
	w := &Workforce{
		employees:  append([]employee.Employee(nil), snap.Employees...),
		attendance: make([]attendance.Record, 0, len(snap.Attendance)),
		payroll:    append([]payroll.Record(nil), snap.Payroll...),
	}
	for _, rec := range snap.Attendance {
		w.attendance = append(w.attendance, rec.Clone())
	}
	return w
}

func (w *Workforce) employeeIndex(id int) int {
	for i := range w.employees {
		if w.employees[i].ID == id {
			return i
		}
	}
	return -1
}

func (w *Workforce) attendanceIndex(employeeID int) int {
	for i := range w.attendance {
		if w.attendance[i].EmployeeID == employeeID {
			return i
		}
	}
	return -1
}

func (w *Workforce) nextEmployeeID() int {
	maxID := 0
	for _, e := range w.employees {
		if e.ID > maxID {
			maxID = e.ID
		}
	}
	return maxID + 1
}
