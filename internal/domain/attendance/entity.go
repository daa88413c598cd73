package attendance

import "github.com/worksphere/worksphere-backend-go/internal/domain/leave"

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
)

type Day struct {
	Date   string // YYYY-MM-DD
	Status Status
}

// Record is an employee's attendance history and the leave requests filed against it.
type Record struct {
	EmployeeID    int
	Name          string
	Days          []Day
	LeaveRequests []leave.Request
}

// Rate returns round(100*present/total). ok is false when there are no days.
func (r Record) Rate() (rate int, ok bool) {
	if len(r.Days) == 0 {
		return 0, false
	}
	present := r.PresentCount()
	return (present*200 + len(r.Days)) / (2 * len(r.Days)), true
}

func (r Record) PresentCount() int {
	n := 0
	for _, d := range r.Days {
		if d.Status == StatusPresent {
			n++
		}
	}
	return n
}

// On returns the status recorded for date, if any.
func (r Record) On(date string) (Status, bool) {
	for _, d := range r.Days {
		if d.Date == date {
			return d.Status, true
		}
	}
	return "", false
}

// LastDays returns at most n trailing days.
func (r Record) LastDays(n int) []Day {
	if n <= 0 || len(r.Days) == 0 {
		return []Day{}
	}
	if n > len(r.Days) {
		n = len(r.Days)
	}
	out := make([]Day, n)
	copy(out, r.Days[len(r.Days)-n:])
	return out
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	c := r
	c.Days = append([]Day(nil), r.Days...)
	c.LeaveRequests = append([]leave.Request(nil), r.LeaveRequests...)
	return c
}
