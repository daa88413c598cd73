package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/worksphere/worksphere-backend-go/internal/domain/attendance"
	"github.com/worksphere/worksphere-backend-go/internal/domain/auth"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/leave"
	"github.com/worksphere/worksphere-backend-go/internal/domain/payroll"
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/jwt"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Session and auth
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email, password or role")
	case errors.Is(err, session.ErrUnauthenticated),
		errors.Is(err, session.ErrMalformedSession),
		errors.Is(err, jwt.ErrInvalidClaims):
		Unauthorized(w, "Please log in to continue")
	case errors.Is(err, session.ErrWrongRole):
		Forbidden(w, "Your role cannot access this resource")

	// User directory
	case errors.Is(err, user.ErrEmailTaken):
		Conflict(w, "An account with this email already exists")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrNoLinkedEmployee):
		NotFound(w, "No employee record is linked to this account")

	// Workforce
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Leave
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrDuplicateLeaveDate):
		Conflict(w, "A leave request already exists for this date")
	case errors.Is(err, leave.ErrDateOrder):
		BadRequest(w, "End date must not be before start date", nil)
	case errors.Is(err, leave.ErrStartDateInPast):
		BadRequest(w, "Start date must not be in the past", nil)

	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
