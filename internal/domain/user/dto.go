package user

import "github.com/worksphere/worksphere-backend-go/internal/pkg/validator"

const MinPasswordLength = 6

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	AgreeTerms      bool   `json:"agree_terms"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)

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

	if len(r.Password) < MinPasswordLength {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password must be at least 6 characters long",
		})
	}
	if r.Password != r.ConfirmPassword {
		errs = append(errs, validator.ValidationError{
			Field:   "confirm_password",
			Message: "confirm_password must match password",
		})
	}

	if !r.AgreeTerms {
		errs = append(errs, validator.ValidationError{
			Field:   "agree_terms",
			Message: "terms and conditions must be accepted",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest edits the caller's own profile. Password fields are optional.
type UpdateProfileRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone,omitempty"`
	NewPassword     string `json:"new_password,omitempty"`
	ConfirmPassword string `json:"confirm_password,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	errs.Required("name", r.Name)
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

	if r.NewPassword != "" {
		if len(r.NewPassword) < MinPasswordLength {
			errs = append(errs, validator.ValidationError{
				Field:   "new_password",
				Message: "new_password must be at least 6 characters long",
			})
		}
		if r.NewPassword != r.ConfirmPassword {
			errs = append(errs, validator.ValidationError{
				Field:   "confirm_password",
				Message: "confirm_password must match new_password",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ProfileResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	Position   string `json:"position"`
	Department string `json:"department"`
	Phone      string `json:"phone,omitempty"`
	EmployeeID *int   `json:"employee_id,omitempty"`
}

func NewProfileResponse(u User) ProfileResponse {
	return ProfileResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Role:       u.Role,
		Position:   u.Position,
		Department: u.Department,
		Phone:      u.Phone,
		EmployeeID: u.EmployeeID,
	}
}
