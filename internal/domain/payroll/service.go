package payroll

import (
	"context"
	"io"
)

type PayrollService interface {
	Summary(ctx context.Context) (SummaryResponse, error)
	Payslip(ctx context.Context, employeeID int) (PayslipResponse, error)
	// ExportReport writes the payroll table as an xlsx workbook.
	ExportReport(ctx context.Context, w io.Writer) error
}
