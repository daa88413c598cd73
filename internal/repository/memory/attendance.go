package memory

import (
	"context"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
)

type attendanceRepositoryImpl struct {
	w *Workforce
}

func NewAttendanceRepository(w *Workforce) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{w: w}
}

func (r *attendanceRepositoryImpl) GetByEmployeeID(ctx context.Context, employeeID int) (attendance.Record, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	i := r.w.attendanceIndex(employeeID)
	if i < 0 {
		return attendance.Record{}, attendance.ErrAttendanceNotFound
	}
	return r.w.attendance[i].Clone(), nil
}

func (r *attendanceRepositoryImpl) List(ctx context.Context) ([]attendance.Record, error) {
	r.w.mu.RLock()
	defer r.w.mu.RUnlock()

	out := make([]attendance.Record, 0, len(r.w.attendance))
	for _, rec := range r.w.attendance {
		out = append(out, rec.Clone())
	}
	return out, nil
}
