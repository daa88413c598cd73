package auth

import (
	"github.com/worksphere/worksphere-backend-go/internal/domain/session"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string    `json:"email"`
	Password string    `json:"password"`
	Role     user.Role `json:"role"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

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
	errs.Required("password", r.Password)
	if !r.Role.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be admin or employee",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TokenResponse struct {
	AccessToken string                  `json:"access_token"`
	TokenType   string                  `json:"token_type"`
	ExpiresAt   int64                   `json:"expires_at"`
	Session     session.SessionResponse `json:"session"`
}
