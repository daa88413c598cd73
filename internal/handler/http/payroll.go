package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type PayrollHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewPayrollHandler(payrollService payroll.PayrollService, now func() time.Time) PayrollHandler {
	return &payrollHandlerImpl{
		payrollService: payrollService,
		now:            now,
	}
}

// Summary implements PayrollHandler.
func (h *payrollHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.payrollService.Summary(r.Context())
	if err != nil {
		slog.Error("PayrollSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Payslip implements PayrollHandler.
func (h *payrollHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := intURLParam(r, "employeeID")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := h.payrollService.Payslip(r.Context(), employeeID)
	if err != nil {
		slog.Error("Payslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}

// Export implements PayrollHandler. The workbook is buffered so a failure can still be reported as JSON.
func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.payrollService.ExportReport(r.Context(), &buf); err != nil {
		slog.Error("ExportPayroll service error", "error", err)
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("payroll-report-%s.xlsx", validator.Today(h.now()))
	response.Attachment(w, filename, xlsxContentType, &buf)
}
