package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/fixtures"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultEmployeePosition = "Employee"
	defaultAdminPosition    = "HR Manager"
	defaultAdminDepartment  = "Human Resources"
)

type UserServiceImpl struct {
	user.UserRepository
	employee.EmployeeRepository
	demoAccounts fixtures.DemoAccounts
	now          func() time.Time
}

func NewUserService(userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, demoAccounts fixtures.DemoAccounts, now func() time.Time) user.UserService {
	if now == nil {
		now = time.Now
	}
	return &UserServiceImpl{
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		demoAccounts:       demoAccounts,
		now:                now,
	}
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// SeedDemoAccounts implements user.UserService.
func (s *UserServiceImpl) SeedDemoAccounts(ctx context.Context) error {
	for _, a := range s.demoAccounts {
		_, err := s.UserRepository.GetByEmailAndRole(ctx, a.Email, a.Role)
		if err == nil {
			continue
		}
		if !errors.Is(err, user.ErrUserNotFound) {
			return fmt.Errorf("failed to look up demo account %s: %w", a.Email, err)
		}

		hash, err := hashPassword(a.Password)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}
		if err := s.UserRepository.Create(ctx, user.User{
			ID:           a.ID,
			Email:        a.Email,
			Name:         a.Name,
			PasswordHash: hash,
			Role:         a.Role,
			Position:     a.Position,
			Department:   a.Department,
			EmployeeID:   a.EmployeeID,
			CreatedAt:    s.now().UTC(),
		}); err != nil {
			return fmt.Errorf("failed to seed demo account %s: %w", a.Email, err)
		}
		slog.Info("seeded demo account", "email", a.Email, "role", a.Role)
	}
	return nil
}

// FindUser implements user.UserService.
func (s *UserServiceImpl) FindUser(ctx context.Context, email string, role user.Role) (*user.User, error) {
	u, err := s.UserRepository.GetByEmailAndRole(ctx, email, role)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &u, nil
}

// EnsureDemoUser implements user.UserService.
func (s *UserServiceImpl) EnsureDemoUser(ctx context.Context, email string, role user.Role) (user.User, error) {
	if existing, err := s.FindUser(ctx, email, role); err != nil {
		return user.User{}, err
	} else if existing != nil {
		return *existing, nil
	}

	account, ok := s.demoAccounts.Lookup(email)
	if !ok {
		return user.User{}, user.ErrNotDemoAccount
	}

	hash, err := hashPassword(account.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash demo password: %w", err)
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         nameFromEmail(email),
		PasswordHash: hash,
		Role:         role,
		Position:     defaultEmployeePosition,
		Department:   string(employee.DepartmentGeneral),
		CreatedAt:    s.now().UTC(),
	}
	if role == user.RoleAdmin {
		u.Position = defaultAdminPosition
		u.Department = defaultAdminDepartment
	}

	if err := s.UserRepository.Create(ctx, u); err != nil {
		return user.User{}, fmt.Errorf("failed to store demo user: %w", err)
	}
	slog.Info("created demo user", "email", email, "role", role)
	return u, nil
}

// nameFromEmail capitalises the local part: "sarah.johnson@x" gives "Sarah.johnson".
func nameFromEmail(email string) string {
	local, _, _ := strings.Cut(email, "@")
	if local == "" {
		return ""
	}
	runes := []rune(local)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

// Register implements user.UserService. The new account gets a linked employee record.
func (s *UserServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	if _, err := s.UserRepository.GetByEmail(ctx, req.Email); err == nil {
		return user.User{}, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.User{}, fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return user.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	emp, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		FullName:          strings.TrimSpace(req.Name),
		Email:             req.Email,
		Phone:             notSpecified,
		Position:          defaultEmployeePosition,
		Department:        employee.DepartmentGeneral,
		Salary:            decimal.Zero,
		EmploymentHistory: "Registered via signup",
	})
	if err != nil {
		return user.User{}, fmt.Errorf("failed to create employee record: %w", err)
	}

	u := user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Role:         user.RoleEmployee,
		Position:     defaultEmployeePosition,
		Department:   string(employee.DepartmentGeneral),
		EmployeeID:   &emp.ID,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.UserRepository.Create(ctx, u); err != nil {
		// Roll back the employee created above
		if delErr := s.EmployeeRepository.Delete(ctx, emp.ID); delErr != nil {
			slog.Error("failed to remove employee after signup failure", "employee_id", emp.ID, "error", delErr)
		}
		return user.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

const notSpecified = "Not specified"

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (user.ProfileResponse, error) {
	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}
	return user.NewProfileResponse(u), nil
}

// UpdateProfile implements user.UserService. Name, email and phone are mirrored onto the linked employee.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.ProfileResponse, error) {
	if err := req.Validate(); err != nil {
		return user.ProfileResponse{}, err
	}

	u, err := s.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return user.ProfileResponse{}, err
	}

	if req.Email != u.Email {
		other, err := s.UserRepository.GetByEmail(ctx, req.Email)
		if err == nil && other.ID != u.ID {
			return user.ProfileResponse{}, user.ErrEmailTaken
		}
		if err != nil && !errors.Is(err, user.ErrUserNotFound) {
			return user.ProfileResponse{}, fmt.Errorf("failed to check email: %w", err)
		}
	}

	u.Name = strings.TrimSpace(req.Name)
	u.Email = req.Email
	u.Phone = strings.TrimSpace(req.Phone)
	if req.NewPassword != "" {
		hash, err := hashPassword(req.NewPassword)
		if err != nil {
			return user.ProfileResponse{}, fmt.Errorf("failed to hash password: %w", err)
		}
		u.PasswordHash = hash
	}

	if err := s.UserRepository.Update(ctx, u); err != nil {
		return user.ProfileResponse{}, fmt.Errorf("failed to update user: %w", err)
	}

	if u.EmployeeID != nil {
		upd := employee.UpdateEmployeeRequest{FullName: &u.Name, Email: &u.Email}
		if u.Phone != "" {
			upd.Phone = &u.Phone
		}
		if _, err := s.EmployeeRepository.Update(ctx, *u.EmployeeID, upd); err != nil && !errors.Is(err, employee.ErrEmployeeNotFound) {
			return user.ProfileResponse{}, fmt.Errorf("failed to update employee record: %w", err)
		}
	}

	return user.NewProfileResponse(u), nil
}
