package fixtures

import (
	_ "embed"
	"fmt"

	"github.com/worksphere/worksphere-backend-go/internal/domain/user"
	"gopkg.in/yaml.v3"
)

//go:embed demo_accounts.yaml
var demoAccountsYAML []byte

// DemoAccount is one entry of the demo allow-list.
type DemoAccount struct {
	ID         string    `yaml:"id"`
	Email      string    `yaml:"email"`
	Password   string    `yaml:"password"`
	Name       string    `yaml:"name"`
	Role       user.Role `yaml:"role"`
	Position   string    `yaml:"position"`
	Department string    `yaml:"department"`
	EmployeeID *int      `yaml:"employee_id"`
}

type DemoAccounts []DemoAccount

// LoadDemoAccounts parses the embedded allow-list.
func LoadDemoAccounts() (DemoAccounts, error) {
	return ParseDemoAccounts(demoAccountsYAML)
}

func ParseDemoAccounts(data []byte) (DemoAccounts, error) {
	var doc struct {
		Accounts DemoAccounts `yaml:"accounts"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse demo accounts: %w", err)
	}

	seen := make(map[string]bool, len(doc.Accounts))
	for _, a := range doc.Accounts {
		if a.Email == "" || a.Password == "" || !a.Role.IsValid() {
			return nil, fmt.Errorf("demo account %q is incomplete", a.ID)
		}
		if seen[a.Email] {
			return nil, fmt.Errorf("demo account %q listed twice", a.Email)
		}
		seen[a.Email] = true
	}
	return doc.Accounts, nil
}

// Lookup matches email exactly.
func (d DemoAccounts) Lookup(email string) (DemoAccount, bool) {
	for _, a := range d {
		if a.Email == email {
			return a, true
		}
	}
	return DemoAccount{}, false
}
