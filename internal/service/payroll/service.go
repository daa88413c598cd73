package payroll

import (
	"context"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/xuri/excelize/v2"
)

const reportSheet = "Payroll"

type PayrollServiceImpl struct {
	payrollRepo  payroll.PayrollRepository
	employeeRepo employee.EmployeeRepository
}

func NewPayrollService(payrollRepo payroll.PayrollRepository, employeeRepo employee.EmployeeRepository) payroll.PayrollService {
	return &PayrollServiceImpl{
		payrollRepo:  payrollRepo,
		employeeRepo: employeeRepo,
	}
}

func payslip(e employee.Employee, p payroll.Record) payroll.PayslipResponse {
	return payroll.PayslipResponse{
		EmployeeID:      p.EmployeeID,
		Name:            e.FullName,
		Position:        e.Position,
		Department:      string(e.Department),
		BaseSalary:      e.Salary,
		HoursWorked:     p.HoursWorked,
		LeaveDeductions: p.LeaveDeductions,
		FinalSalary:     p.FinalSalary,
	}
}

// Summary implements payroll.PayrollService. Totals cover every payroll record;
// rows and base salary only those with a matching employee.
func (s *PayrollServiceImpl) Summary(ctx context.Context) (payroll.SummaryResponse, error) {
	records, err := s.payrollRepo.List(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to list payroll: %w", err)
	}
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	byID := make(map[int]employee.Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}

	summary := payroll.SummaryResponse{
		TotalPayroll:    decimal.Zero,
		AverageSalary:   decimal.Zero,
		TotalHours:      decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalBaseSalary: decimal.Zero,
		RecordCount:     len(records),
		Rows:            make([]payroll.PayslipResponse, 0, len(records)),
	}
	for _, p := range records {
		summary.TotalPayroll = summary.TotalPayroll.Add(p.FinalSalary)
		summary.TotalHours = summary.TotalHours.Add(p.HoursWorked)
		summary.TotalDeductions = summary.TotalDeductions.Add(p.LeaveDeductions)

		e, ok := byID[p.EmployeeID]
		if !ok {
			continue
		}
		summary.TotalBaseSalary = summary.TotalBaseSalary.Add(e.Salary)
		summary.Rows = append(summary.Rows, payslip(e, p))
	}
	if len(records) > 0 {
		summary.AverageSalary = summary.TotalPayroll.Div(decimal.NewFromInt(int64(len(records)))).Round(0)
	}

	return summary, nil
}

// Payslip implements payroll.PayrollService.
func (s *PayrollServiceImpl) Payslip(ctx context.Context, employeeID int) (payroll.PayslipResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	p, err := s.payrollRepo.GetByEmployeeID(ctx, employeeID)
	if err != nil {
		return payroll.PayslipResponse{}, err
	}
	return payslip(e, p), nil
}

// ExportReport implements payroll.PayrollService.
func (s *PayrollServiceImpl) ExportReport(ctx context.Context, w io.Writer) error {
	summary, err := s.Summary(ctx)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := []interface{}{"Employee ID", "Name", "Department", "Hours Worked", "Leave Deductions", "Base Salary", "Final Salary"}
	if err := f.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	row := 2
	for _, r := range summary.Rows {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			r.EmployeeID,
			r.Name,
			r.Department,
			r.HoursWorked.InexactFloat64(),
			r.LeaveDeductions.InexactFloat64(),
			r.BaseSalary.InexactFloat64(),
			r.FinalSalary.InexactFloat64(),
		}
		if err := f.SetSheetRow(reportSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row for employee %d: %w", r.EmployeeID, err)
		}
		row++
	}

	totalsCell, _ := excelize.CoordinatesToCellName(1, row)
	totals := []interface{}{
		"TOTALS", "", "",
		summary.TotalHours.InexactFloat64(),
		summary.TotalDeductions.InexactFloat64(),
		summary.TotalBaseSalary.InexactFloat64(),
		summary.TotalPayroll.InexactFloat64(),
	}
	if err := f.SetSheetRow(reportSheet, totalsCell, &totals); err != nil {
		return fmt.Errorf("failed to write totals: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	lastCell, _ := excelize.CoordinatesToCellName(len(header), row)
	if err := f.SetCellStyle(reportSheet, "A1", "G1", bold); err != nil {
		return err
	}
	if err := f.SetCellStyle(reportSheet, totalsCell, lastCell, bold); err != nil {
		return err
	}
	if err := f.SetColWidth(reportSheet, "A", "G", 18); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
