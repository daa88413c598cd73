package payroll

import "github.com/shopspring/decimal"

// Default values for a new hire's payroll record.
var (
	DefaultHoursWorked     = decimal.NewFromInt(160)
	DefaultLeaveDeductions = decimal.Zero
)

type Record struct {
	EmployeeID      int
	HoursWorked     decimal.Decimal
	LeaveDeductions decimal.Decimal
	FinalSalary     decimal.Decimal
}

// NewRecord builds the default record for a salary.
func NewRecord(employeeID int, salary decimal.Decimal) Record {
	return Record{
		EmployeeID:      employeeID,
		HoursWorked:     DefaultHoursWorked,
		LeaveDeductions: DefaultLeaveDeductions,
		FinalSalary:     salary,
	}
}
