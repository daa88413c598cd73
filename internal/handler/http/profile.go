package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/middleware"
	"github.com/worksphere/worksphere-backend-go/internal/handler/http/response"
)

// ProfileHandler serves the employee self-service pages under /me.
type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	ListLeave(w http.ResponseWriter, r *http.Request)
	SubmitLeave(w http.ResponseWriter, r *http.Request)
	Payslip(w http.ResponseWriter, r *http.Request)
}

type profileHandlerImpl struct {
	userService    user.UserService
	sessionService session.SessionService
	leaveService   leave.LeaveService
	payrollService payroll.PayrollService
	now            func() time.Time
}

func NewProfileHandler(
	userService user.UserService,
	sessionService session.SessionService,
	leaveService leave.LeaveService,
	payrollService payroll.PayrollService,
	now func() time.Time,
) ProfileHandler {
	return &profileHandlerImpl{
		userService:    userService,
		sessionService: sessionService,
		leaveService:   leaveService,
		payrollService: payrollService,
		now:            now,
	}
}

func currentSession(r *http.Request) (session.Session, error) {
	s, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		return session.Session{}, session.ErrUnauthenticated
	}
	return s, nil
}

// linkedEmployee returns the employee id behind the caller's account.
func linkedEmployee(r *http.Request) (int, error) {
	s, err := currentSession(r)
	if err != nil {
		return 0, err
	}
	if s.EmployeeID == nil {
		return 0, user.ErrNoLinkedEmployee
	}
	return *s.EmployeeID, nil
}

// GetProfile implements ProfileHandler.
func (h *profileHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.GetProfile(r.Context(), s.UserID)
	if err != nil {
		slog.Error("GetProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateProfile implements ProfileHandler. The session picks up the new name and email.
func (h *profileHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	s, err := currentSession(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("UpdateProfile validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	profile, err := h.userService.UpdateProfile(r.Context(), s.UserID, req)
	if err != nil {
		slog.Error("UpdateProfile service error", "error", err)
		response.HandleError(w, err)
		return
	}

	if _, err := h.sessionService.Refresh(r.Context(), func(cur *session.Session) {
		cur.Name = profile.Name
		cur.Email = profile.Email
	}); err != nil {
		slog.Error("UpdateProfile session refresh error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Profile updated successfully", profile)
}

// ListLeave implements ProfileHandler.
func (h *profileHandlerImpl) ListLeave(w http.ResponseWriter, r *http.Request) {
	employeeID, err := linkedEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	requests, err := h.leaveService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		slog.Error("ListMyLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, requests)
}

// SubmitLeave implements ProfileHandler.
func (h *profileHandlerImpl) SubmitLeave(w http.ResponseWriter, r *http.Request) {
	employeeID, err := linkedEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.RangeLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("SubmitMyLeave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		slog.Error("SubmitMyLeave validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	filed, err := h.leaveService.SubmitRange(r.Context(), employeeID, req, h.now())
	if err != nil {
		slog.Error("SubmitMyLeave service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Leave request submitted", filed)
}

// Payslip implements ProfileHandler.
func (h *profileHandlerImpl) Payslip(w http.ResponseWriter, r *http.Request) {
	employeeID, err := linkedEmployee(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slip, err := h.payrollService.Payslip(r.Context(), employeeID)
	if err != nil {
		slog.Error("MyPayslip service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, slip)
}
