package leave

import (
	"strings"
	"unicode"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusDenied   Status = "Denied"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDenied:
		return true
	}
	return false
}

// CanTransitionTo reports whether a request in s may move to next.
// Only Pending requests are decided; Approved and Denied are terminal.
func (s Status) CanTransitionTo(next Status) bool {
	return s == StatusPending && (next == StatusApproved || next == StatusDenied)
}

// Request is a single-day leave request. An employee has at most one per date.
type Request struct {
	Date   string
	Reason string
	Status Status
}

// PendingRequest is a Pending request joined with the owning employee.
type PendingRequest struct {
	EmployeeID   int
	EmployeeName string
	Request
}

// ReasonLabel turns a leave type such as "sick" into "Sick Leave".
func ReasonLabel(leaveType string) string {
	label := strings.TrimSpace(leaveType)
	if label == "" {
		return ""
	}
	runes := []rune(label)
	runes[0] = unicode.ToUpper(runes[0])
	label = string(runes)
	if strings.Contains(strings.ToLower(label), "leave") {
		return label
	}
	return label + " Leave"
}

// Events published when requests change.
const (
	EventSubmitted = "leave.submitted"
	EventUpdated   = "leave.updated"
)
