package leave

import (
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	EmployeeID int    `json:"employee_id"`
	Date       string `json:"date"`
	LeaveType  string `json:"leave_type"`
	Reason     string `json:"reason"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.EmployeeID <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	errs.Required("leave_type", r.LeaveType)
	errs.Required("reason", r.Reason)
	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RangeLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`
}

func (r *RangeLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("leave_type", r.LeaveType)
	errs.Required("reason", r.Reason)
	for _, f := range [...]struct{ name, value string }{
		{"start_date", r.StartDate},
		{"end_date", r.EndDate},
	} {
		if validator.IsEmpty(f.value) {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " is required"})
		} else if _, ok := validator.IsValidDate(f.value); !ok {
			errs = append(errs, validator.ValidationError{Field: f.name, Message: f.name + " must be in YYYY-MM-DD format"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Dates expands the inclusive range. Call Validate first.
func (r *RangeLeaveRequest) Dates() ([]string, error) {
	start, err := time.Parse(validator.DateLayout, r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := time.Parse(validator.DateLayout, r.EndDate)
	if err != nil {
		return nil, err
	}
	if end.Before(start) {
		return nil, ErrDateOrder
	}

	var dates []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(validator.DateLayout))
	}
	return dates, nil
}

type RequestResponse struct {
	EmployeeID   int    `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Reason       string `json:"reason"`
	Status       Status `json:"status"`
}

func NewRequestResponse(employeeID int, employeeName string, r Request) RequestResponse {
	return RequestResponse{
		EmployeeID:   employeeID,
		EmployeeName: employeeName,
		Date:         r.Date,
		Reason:       r.Reason,
		Status:       r.Status,
	}
}

type RangeLeaveResponse struct {
	Days     int               `json:"days"`
	Requests []RequestResponse `json:"requests"`
}
