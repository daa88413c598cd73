package payroll

import "github.com/shopspring/decimal"

type PayslipResponse struct {
	EmployeeID      int             `json:"employee_id"`
	Name            string          `json:"name"`
	Position        string          `json:"position"`
	Department      string          `json:"department"`
	BaseSalary      decimal.Decimal `json:"base_salary"`
	HoursWorked     decimal.Decimal `json:"hours_worked"`
	LeaveDeductions decimal.Decimal `json:"leave_deductions"`
	FinalSalary     decimal.Decimal `json:"final_salary"`
}

type SummaryResponse struct {
	TotalPayroll    decimal.Decimal   `json:"total_payroll"`
	AverageSalary   decimal.Decimal   `json:"average_salary"`
	TotalHours      decimal.Decimal   `json:"total_hours"`
	TotalDeductions decimal.Decimal   `json:"total_deductions"`
	TotalBaseSalary decimal.Decimal   `json:"total_base_salary"`
	RecordCount     int               `json:"record_count"`
	Rows            []PayslipResponse `json:"rows"`
}
