package fixtures

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
)

func TestLoadDemoAccounts(t *testing.T) {
	accounts, err := LoadDemoAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	admin, ok := accounts.Lookup("admin@worksphere.com")
	require.True(t, ok)
	assert.Equal(t, "admin_001", admin.ID)
	assert.Equal(t, user.RoleAdmin, admin.Role)
	assert.Equal(t, "HR Manager", admin.Position)
	assert.Nil(t, admin.EmployeeID)

	emp, ok := accounts.Lookup("employee@worksphere.com")
	require.True(t, ok)
	require.NotNil(t, emp.EmployeeID)
	assert.Equal(t, 3, *emp.EmployeeID)

	_, ok = accounts.Lookup("Admin@worksphere.com")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestParseDemoAccounts_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "accounts: [::"},
		{"missing password", "accounts:\n  - id: a\n    email: a@b.co\n    role: admin\n"},
		{"bad role", "accounts:\n  - id: a\n    email: a@b.co\n    password: x\n    role: owner\n"},
		{"duplicate", "accounts:\n  - {id: a, email: a@b.co, password: x, role: admin}\n  - {id: b, email: a@b.co, password: y, role: employee}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDemoAccounts([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
