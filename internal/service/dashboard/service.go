package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/dashboard"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
	"golang.org/x/sync/errgroup"
)

// pendingPreviewSize is how many pending requests the overview carries.
const pendingPreviewSize = 3

type DashboardServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRepository
	payrollRepo    payroll.PayrollRepository
	viewRepo       dashboard.ViewStateRepository
	leaveService   leave.LeaveService
	payrollService payroll.PayrollService
}

type Dependencies struct {
	Employees      employee.EmployeeRepository
	Attendance     attendance.AttendanceRepository
	Leave          leave.LeaveRepository
	Payroll        payroll.PayrollRepository
	Views          dashboard.ViewStateRepository
	LeaveService   leave.LeaveService
	PayrollService payroll.PayrollService
}

func NewDashboardService(deps Dependencies) dashboard.DashboardService {
	return &DashboardServiceImpl{
		employeeRepo:   deps.Employees,
		attendanceRepo: deps.Attendance,
		leaveRepo:      deps.Leave,
		payrollRepo:    deps.Payroll,
		viewRepo:       deps.Views,
		leaveService:   deps.LeaveService,
		payrollService: deps.PayrollService,
	}
}

// statusOn derives the presence status of one attendance record for a day.
func statusOn(rec attendance.Record, day string) dashboard.Status {
	for _, lr := range rec.LeaveRequests {
		if lr.Date == day && lr.Status == leave.StatusApproved {
			return dashboard.StatusOnLeave
		}
	}
	if st, ok := rec.On(day); ok && st == attendance.StatusAbsent {
		return dashboard.StatusAway
	}
	return dashboard.StatusAvailable
}

func onApprovedLeave(rec attendance.Record, day string) bool {
	return statusOn(rec, day) == dashboard.StatusOnLeave
}

// attendanceFor returns the employee's record, or an empty one when none exists.
func (s *DashboardServiceImpl) attendanceFor(ctx context.Context, e employee.Employee) (attendance.Record, error) {
	rec, err := s.attendanceRepo.GetByEmployeeID(ctx, e.ID)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return attendance.Record{EmployeeID: e.ID, Name: e.FullName}, nil
	}
	return rec, err
}

// EmployeeStatus implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeStatus(ctx context.Context, employeeID int, today time.Time) (dashboard.Status, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return "", err
	}
	rec, err := s.attendanceFor(ctx, e)
	if err != nil {
		return "", fmt.Errorf("failed to get attendance: %w", err)
	}
	return statusOn(rec, validator.Today(today)), nil
}

// AttendanceRate implements dashboard.DashboardService.
func (s *DashboardServiceImpl) AttendanceRate(ctx context.Context, employeeID int) (int, bool, error) {
	rec, err := s.attendanceRepo.GetByEmployeeID(ctx, employeeID)
	if errors.Is(err, attendance.ErrAttendanceNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get attendance: %w", err)
	}
	rate, ok := rec.Rate()
	return rate, ok, nil
}

// workforce is one consistent read of the three collections, keyed by employee id.
type workforce struct {
	employees  []employee.Employee
	attendance map[int]attendance.Record
	payroll    map[int]payroll.Record
}

func (s *DashboardServiceImpl) readWorkforce(ctx context.Context) (workforce, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return workforce{}, fmt.Errorf("failed to list employees: %w", err)
	}
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return workforce{}, fmt.Errorf("failed to list attendance: %w", err)
	}
	pay, err := s.payrollRepo.List(ctx)
	if err != nil {
		return workforce{}, fmt.Errorf("failed to list payroll: %w", err)
	}

	wf := workforce{
		employees:  employees,
		attendance: make(map[int]attendance.Record, len(records)),
		payroll:    make(map[int]payroll.Record, len(pay)),
	}
	for _, r := range records {
		if _, seen := wf.attendance[r.EmployeeID]; !seen {
			wf.attendance[r.EmployeeID] = r
		}
	}
	for _, p := range pay {
		if _, seen := wf.payroll[p.EmployeeID]; !seen {
			wf.payroll[p.EmployeeID] = p
		}
	}
	return wf, nil
}

func (wf workforce) view(e employee.Employee, day string) dashboard.EmployeeView {
	v := dashboard.EmployeeView{
		EmployeeResponse: employee.NewEmployeeResponse(e),
		Status:           dashboard.StatusAvailable,
		FinalSalary:      e.Salary,
	}
	if rec, ok := wf.attendance[e.ID]; ok {
		v.Status = statusOn(rec, day)
		if rate, ok := rec.Rate(); ok {
			v.AttendanceRate = &rate
		}
	}
	if p, ok := wf.payroll[e.ID]; ok {
		v.FinalSalary = p.FinalSalary
	}
	return v
}

func matchesSearch(e employee.Employee, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{e.FullName, e.Email, e.Position, string(e.Department)} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func lessFunc(key dashboard.SortKey, views []dashboard.EmployeeView) func(i, j int) bool {
	name := func(i int) string { return strings.ToLower(views[i].FullName) }
	dept := func(i int) string { return strings.ToLower(string(views[i].Department)) }

	switch key {
	case dashboard.SortNameDesc:
		return func(i, j int) bool { return name(i) > name(j) }
	case dashboard.SortDeptAsc:
		return func(i, j int) bool { return dept(i) < dept(j) }
	case dashboard.SortDeptDesc:
		return func(i, j int) bool { return dept(i) > dept(j) }
	case dashboard.SortSalaryHigh:
		return func(i, j int) bool { return views[i].Salary.GreaterThan(views[j].Salary) }
	case dashboard.SortSalaryLow:
		return func(i, j int) bool { return views[i].Salary.LessThan(views[j].Salary) }
	default:
		return func(i, j int) bool { return name(i) < name(j) }
	}
}

// FilteredSortedEmployees implements dashboard.DashboardService.
func (s *DashboardServiceImpl) FilteredSortedEmployees(ctx context.Context, view dashboard.ViewState, today time.Time) ([]dashboard.EmployeeView, error) {
	view = view.Normalize()
	wf, err := s.readWorkforce(ctx)
	if err != nil {
		return nil, err
	}

	day := validator.Today(today)
	views := make([]dashboard.EmployeeView, 0, len(wf.employees))
	for _, e := range wf.employees {
		if !view.MatchesDepartment(e.Department) || !matchesSearch(e, view.SearchTerm) {
			continue
		}
		views = append(views, wf.view(e, day))
	}

	sort.SliceStable(views, lessFunc(view.SortKey, views))
	return views, nil
}

// Stats implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Stats(ctx context.Context, today time.Time) (dashboard.StatsResponse, error) {
	wf, err := s.readWorkforce(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, err
	}
	pending, err := s.leaveRepo.ListPending(ctx)
	if err != nil {
		return dashboard.StatsResponse{}, fmt.Errorf("failed to list pending leave: %w", err)
	}

	day := validator.Today(today)
	stats := dashboard.StatsResponse{
		Date:                 day,
		TotalEmployees:       len(wf.employees),
		PendingLeaveRequests: len(pending),
		TotalPayroll:         decimal.Zero,
	}
	for _, rec := range wf.attendance {
		if st, ok := rec.On(day); ok && st == attendance.StatusPresent {
			stats.ActiveToday++
		}
		if onApprovedLeave(rec, day) {
			stats.OnLeaveToday++
		}
	}
	for _, p := range wf.payroll {
		stats.TotalPayroll = stats.TotalPayroll.Add(p.FinalSalary)
	}
	return stats, nil
}

// DepartmentCounts implements dashboard.DashboardService.
func (s *DashboardServiceImpl) DepartmentCounts(ctx context.Context) (map[string]int, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	counts := make(map[string]int, len(employee.Departments)+1)
	for _, d := range employee.Departments {
		counts[d.Slug()] = 0
	}
	for _, e := range employees {
		counts[e.Department.Slug()]++
	}
	counts[dashboard.FilterAll] = len(employees)
	return counts, nil
}

// CurrentView implements dashboard.DashboardService.
func (s *DashboardServiceImpl) CurrentView(ctx context.Context) (dashboard.ViewState, error) {
	v, ok, err := s.viewRepo.Get(ctx)
	if err != nil {
		return dashboard.ViewState{}, fmt.Errorf("failed to load view state: %w", err)
	}
	if !ok {
		return dashboard.DefaultViewState(), nil
	}
	return v.Normalize(), nil
}

// UpdateView implements dashboard.DashboardService.
func (s *DashboardServiceImpl) UpdateView(ctx context.Context, patch dashboard.UpdateViewRequest) (dashboard.ViewState, error) {
	if err := patch.Validate(); err != nil {
		return dashboard.ViewState{}, err
	}
	current, err := s.CurrentView(ctx)
	if err != nil {
		return dashboard.ViewState{}, err
	}
	next := patch.Apply(current)
	if err := s.viewRepo.Save(ctx, next); err != nil {
		return dashboard.ViewState{}, fmt.Errorf("failed to save view state: %w", err)
	}
	return next, nil
}

// ResetView implements dashboard.DashboardService.
func (s *DashboardServiceImpl) ResetView(ctx context.Context) (dashboard.ViewState, error) {
	current, err := s.CurrentView(ctx)
	if err != nil {
		return dashboard.ViewState{}, err
	}
	current.FilterDepartment = dashboard.FilterAll
	current.SearchTerm = ""
	if err := s.viewRepo.Save(ctx, current); err != nil {
		return dashboard.ViewState{}, fmt.Errorf("failed to save view state: %w", err)
	}
	return current, nil
}

// RecentAttendance implements dashboard.DashboardService.
func (s *DashboardServiceImpl) RecentAttendance(ctx context.Context, employees, days int) ([]dashboard.RecentAttendanceResponse, error) {
	records, err := s.attendanceRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	if employees < 0 {
		employees = 0
	}
	if employees < len(records) {
		records = records[:employees]
	}

	out := make([]dashboard.RecentAttendanceResponse, 0, len(records))
	for _, rec := range records {
		last := rec.LastDays(days)
		recent := attendance.Record{Days: last}
		resp := dashboard.RecentAttendanceResponse{
			EmployeeID:   rec.EmployeeID,
			Name:         rec.Name,
			Days:         make([]attendance.DayResponse, 0, len(last)),
			PresentCount: recent.PresentCount(),
			TotalDays:    len(last),
		}
		for _, d := range last {
			resp.Days = append(resp.Days, attendance.DayResponse{Date: d.Date, Status: d.Status})
		}
		out = append(out, resp)
	}
	return out, nil
}

// EmployeeDetails implements dashboard.DashboardService.
func (s *DashboardServiceImpl) EmployeeDetails(ctx context.Context, employeeID int, today time.Time) (dashboard.EmployeeDetailsResponse, error) {
	e, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return dashboard.EmployeeDetailsResponse{}, err
	}
	rec, err := s.attendanceFor(ctx, e)
	if err != nil {
		return dashboard.EmployeeDetailsResponse{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	wf := workforce{
		employees:  []employee.Employee{e},
		attendance: map[int]attendance.Record{e.ID: rec},
		payroll:    map[int]payroll.Record{},
	}
	resp := dashboard.EmployeeDetailsResponse{
		Attendance: attendance.NewRecordResponse(rec),
	}

	p, err := s.payrollRepo.GetByEmployeeID(ctx, e.ID)
	switch {
	case err == nil:
		wf.payroll[e.ID] = p
		resp.Payroll = &payroll.PayslipResponse{
			EmployeeID:      e.ID,
			Name:            e.FullName,
			Position:        e.Position,
			Department:      string(e.Department),
			BaseSalary:      e.Salary,
			HoursWorked:     p.HoursWorked,
			LeaveDeductions: p.LeaveDeductions,
			FinalSalary:     p.FinalSalary,
		}
	case !errors.Is(err, payroll.ErrPayrollNotFound):
		return dashboard.EmployeeDetailsResponse{}, fmt.Errorf("failed to get payroll: %w", err)
	}

	resp.Employee = wf.view(e, validator.Today(today))
	return resp, nil
}

// Overview implements dashboard.DashboardService.
func (s *DashboardServiceImpl) Overview(ctx context.Context, today time.Time) (dashboard.OverviewResponse, error) {
	var resp dashboard.OverviewResponse
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		stats, err := s.Stats(gCtx, today)
		if err != nil {
			return err
		}
		resp.Stats = stats
		return nil
	})

	g.Go(func() error {
		counts, err := s.DepartmentCounts(gCtx)
		if err != nil {
			return err
		}
		resp.Departments = counts
		return nil
	})

	g.Go(func() error {
		pending, err := s.leaveService.ListPending(gCtx, pendingPreviewSize)
		if err != nil {
			return err
		}
		resp.PendingLeave = pending
		return nil
	})

	g.Go(func() error {
		summary, err := s.payrollService.Summary(gCtx)
		if err != nil {
			return err
		}
		resp.Payroll = summary
		return nil
	})

	if err := g.Wait(); err != nil {
		return dashboard.OverviewResponse{}, err
	}
	return resp, nil
}
