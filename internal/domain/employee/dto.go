package employee

import (
	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName          string          `json:"full_name"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Position          string          `json:"position"`
	Department        string          `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	EmploymentHistory string          `json:"employment_history,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("full_name", r.FullName)
	errs.Required("position", r.Position)

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department is required",
		})
	} else if _, ok := ParseDepartment(r.Department); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "department",
			Message: "department must be one of the known departments",
		})
	}

	if !r.Salary.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary is required and must be greater than zero",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries an admin edit; nil fields are left unchanged.
type UpdateEmployeeRequest struct {
	FullName          *string          `json:"full_name,omitempty"`
	Email             *string          `json:"email,omitempty"`
	Phone             *string          `json:"phone,omitempty"`
	Position          *string          `json:"position,omitempty"`
	Department        *string          `json:"department,omitempty"`
	Salary            *decimal.Decimal `json:"salary,omitempty"`
	EmploymentHistory *string          `json:"employment_history,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not be empty",
		})
	}
	if r.Position != nil && validator.IsEmpty(*r.Position) {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not be empty",
		})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}
	if r.Department != nil {
		if _, ok := ParseDepartment(*r.Department); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "department",
				Message: "department must be one of the known departments",
			})
		}
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "salary",
			Message: "salary must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply copies the set fields onto e. Call Validate first.
func (r UpdateEmployeeRequest) Apply(e *Employee) {
	if r.FullName != nil {
		e.FullName = *r.FullName
	}
	if r.Email != nil {
		e.Email = *r.Email
	}
	if r.Phone != nil {
		e.Phone = *r.Phone
	}
	if r.Position != nil {
		e.Position = *r.Position
	}
	if r.Department != nil {
		if d, ok := ParseDepartment(*r.Department); ok {
			e.Department = d
		}
	}
	if r.Salary != nil {
		e.Salary = *r.Salary
	}
	if r.EmploymentHistory != nil {
		e.EmploymentHistory = *r.EmploymentHistory
	}
}

type EmployeeResponse struct {
	ID                int             `json:"id"`
	FirstName         string          `json:"first_name"`
	LastName          string          `json:"last_name"`
	FullName          string          `json:"full_name"`
	Initials          string          `json:"initials"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone,omitempty"`
	Position          string          `json:"position"`
	Department        Department      `json:"department"`
	Salary            decimal.Decimal `json:"salary"`
	EmploymentHistory string          `json:"employment_history"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:                e.ID,
		FirstName:         e.FirstName(),
		LastName:          e.LastName(),
		FullName:          e.FullName,
		Initials:          e.Initials(),
		Email:             e.Email,
		Phone:             e.Phone,
		Position:          e.Position,
		Department:        e.Department,
		Salary:            e.Salary,
		EmploymentHistory: e.EmploymentHistory,
	}
}
