package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/employee"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"github.com/worksphere/worksphere-backend-go/internal/fixtures"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/dataset"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/storage"
	"github.com/worksphere/worksphere-backend-go/internal/pkg/validator"
	"github.com/worksphere/worksphere-backend-go/internal/repository/kv"
	"github.com/worksphere/worksphere-backend-go/internal/repository/memory"
	"golang.org/x/crypto/bcrypt"
)

type deps struct {
	svc       user.UserService
	users     user.UserRepository
	employees employee.EmployeeRepository
}

func newTestService(t *testing.T) deps {
	t.Helper()

	snap, err := dataset.Embedded()
	require.NoError(t, err)
	accounts, err := fixtures.LoadDemoAccounts()
	require.NoError(t, err)

	users := kv.NewUserRepository(storage.NewMemoryStore())
	employees := memory.NewEmployeeRepository(memory.NewWorkforce(snap))
	now := func() time.Time { return time.Date(2025, 7, 29, 9, 0, 0, 0, time.UTC) }

	return deps{
		svc:       NewUserService(users, employees, accounts, now),
		users:     users,
		employees: employees,
	}
}

func TestSeedDemoAccounts(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()

	require.NoError(t, d.svc.SeedDemoAccounts(ctx))
	require.NoError(t, d.svc.SeedDemoAccounts(ctx), "seeding twice is a no-op")

	all, err := d.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	admin, err := d.svc.FindUser(ctx, "admin@worksphere.com", user.RoleAdmin)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, "Administrator", admin.Name)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))
}

func TestFindUser_RequiresRoleMatch(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()
	require.NoError(t, d.svc.SeedDemoAccounts(ctx))

	u, err := d.svc.FindUser(ctx, "admin@worksphere.com", user.RoleEmployee)
	require.NoError(t, err)
	assert.Nil(t, u)
}

func TestEnsureDemoUser(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()

	u, err := d.svc.EnsureDemoUser(ctx, "admin@worksphere.com", user.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "Admin", u.Name)
	assert.Equal(t, "Employee", u.Position)
	assert.Equal(t, "General", u.Department)

	again, err := d.svc.EnsureDemoUser(ctx, "admin@worksphere.com", user.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, u.ID, again.ID, "second call finds the stored user")

	a, err := d.svc.EnsureDemoUser(ctx, "sarah.johnson@worksphere.com", user.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "Sarah.johnson", a.Name)
	assert.Equal(t, "HR Manager", a.Position)
	assert.Equal(t, "Human Resources", a.Department)

	_, err = d.svc.EnsureDemoUser(ctx, "stranger@example.com", user.RoleEmployee)
	assert.ErrorIs(t, err, user.ErrNotDemoAccount)
}

func validRegistration() user.RegisterRequest {
	return user.RegisterRequest{
		Name:            "Thandi Mokoena",
		Email:           "thandi@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
		AgreeTerms:      true,
	}
}

func TestRegister(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()

	u, err := d.svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, user.RoleEmployee, u.Role)
	assert.Equal(t, "Employee", u.Position)
	assert.Equal(t, "General", u.Department)
	require.NotNil(t, u.EmployeeID)
	assert.Equal(t, 11, *u.EmployeeID)

	emp, err := d.employees.GetByID(ctx, 11)
	require.NoError(t, err)
	assert.Equal(t, "Thandi Mokoena", emp.FullName)
	assert.Equal(t, employee.DepartmentGeneral, emp.Department)

	_, err = d.svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	other := validRegistration()
	other.Email = "Thandi@example.com"
	_, err = d.svc.Register(ctx, other)
	assert.NoError(t, err, "email uniqueness is case-sensitive")
}

// failingUserRepository accepts reads but rejects every Create.
type failingUserRepository struct {
	user.UserRepository
	err error
}

func (r failingUserRepository) Create(ctx context.Context, newUser user.User) error {
	return r.err
}

func TestRegister_UserCreateFailureRemovesEmployee(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()
	accounts, err := fixtures.LoadDemoAccounts()
	require.NoError(t, err)
	now := func() time.Time { return time.Date(2025, 7, 29, 9, 0, 0, 0, time.UTC) }

	users := failingUserRepository{UserRepository: d.users, err: user.ErrEmailTaken}
	svc := NewUserService(users, d.employees, accounts, now)

	_, err = svc.Register(ctx, validRegistration())
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	roster, err := d.employees.List(ctx)
	require.NoError(t, err)
	assert.Len(t, roster, 10)
	_, err = d.employees.GetByID(ctx, 11)
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *user.RegisterRequest)
		field  string
	}{
		{"missing name", func(r *user.RegisterRequest) { r.Name = " " }, "name"},
		{"bad email", func(r *user.RegisterRequest) { r.Email = "test@com" }, "email"},
		{"short password", func(r *user.RegisterRequest) { r.Password, r.ConfirmPassword = "12345", "12345" }, "password"},
		{"mismatch", func(r *user.RegisterRequest) { r.ConfirmPassword = "other1" }, "confirm_password"},
		{"terms", func(r *user.RegisterRequest) { r.AgreeTerms = false }, "agree_terms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestService(t)
			req := validRegistration()
			tt.mutate(&req)

			_, err := d.svc.Register(context.Background(), req)
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.field)
		})
	}
}

func TestUpdateProfile(t *testing.T) {
	d := newTestService(t)
	ctx := context.Background()
	require.NoError(t, d.svc.SeedDemoAccounts(ctx))

	emp, err := d.svc.FindUser(ctx, "employee@worksphere.com", user.RoleEmployee)
	require.NoError(t, err)

	profile, err := d.svc.UpdateProfile(ctx, emp.ID, user.UpdateProfileRequest{
		Name:            "Thabo Molefe",
		Email:           "thabo.molefe@moderntech.com",
		Phone:           "+27 11 555 0100",
		NewPassword:     "newpass",
		ConfirmPassword: "newpass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Thabo Molefe", profile.Name)
	assert.Equal(t, "+27 11 555 0100", profile.Phone)

	stored, err := d.users.GetByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("newpass")))

	linked, err := d.employees.GetByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, "+27 11 555 0100", linked.Phone)

	_, err = d.svc.UpdateProfile(ctx, emp.ID, user.UpdateProfileRequest{Name: "X", Email: "admin@worksphere.com"})
	assert.ErrorIs(t, err, user.ErrEmailTaken)

	_, err = d.svc.UpdateProfile(ctx, emp.ID, user.UpdateProfileRequest{Name: "X", Email: "x@y.co", NewPassword: "abcdef", ConfirmPassword: "abcdeg"})
	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "confirm_password")
}

func TestNameFromEmail(t *testing.T) {
	assert.Equal(t, "Admin", nameFromEmail("admin@worksphere.com"))
	assert.Equal(t, "", nameFromEmail("@x.com"))
}
