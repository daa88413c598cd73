package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"    // HR staff, full dashboard
	RoleEmployee Role = "employee" // self-service only
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEmployee
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"password_hash"`
	Role         Role      `json:"role"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Phone        string    `json:"phone,omitempty"`
	EmployeeID   *int      `json:"employee_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// IsAdmin checks if user can use the admin dashboard
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
