package attendance

import "github.com/worksphere/worksphere-backend-go/internal/domain/leave"

type DayResponse struct {
	Date   string `json:"date"`
	Status Status `json:"status"`
}

type RecordResponse struct {
	EmployeeID     int                     `json:"employee_id"`
	Name           string                  `json:"name"`
	Attendance     []DayResponse           `json:"attendance"`
	LeaveRequests  []leave.RequestResponse `json:"leave_requests"`
	AttendanceRate *int                    `json:"attendance_rate"`
}

func NewRecordResponse(r Record) RecordResponse {
	days := make([]DayResponse, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, DayResponse{Date: d.Date, Status: d.Status})
	}
	requests := make([]leave.RequestResponse, 0, len(r.LeaveRequests))
	for _, lr := range r.LeaveRequests {
		requests = append(requests, leave.NewRequestResponse(r.EmployeeID, r.Name, lr))
	}

	resp := RecordResponse{
		EmployeeID:    r.EmployeeID,
		Name:          r.Name,
		Attendance:    days,
		LeaveRequests: requests,
	}
	if rate, ok := r.Rate(); ok {
		resp.AttendanceRate = &rate
	}
	return resp
}
