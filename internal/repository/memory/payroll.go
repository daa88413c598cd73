package memory

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
)

type payrollRepositoryImpl struct {
	w *Workforce
}

func NewPayrollRepository(w *Workforce) payroll.PayrollRepository {
	return &payrollRepositoryImpl{w: w}
}

func (r *payrollRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int) (payroll.Record, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	for _, p := range r.w.payroll {
		if p.EmployeeID == employeeID {
			return p, nil
		}
	}
	return payroll.Record{}, payroll.ErrPayrollNotFound
}

func (r *payrollRepositoryImpl) List(ctx context.Context) ([]payroll.Record, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	return append([]payroll.Record{}, r.w.payroll...), nil
}
