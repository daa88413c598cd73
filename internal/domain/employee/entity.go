package employee

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                int
	FullName          string
	Email             string
	Phone             string
	Position          string
	Department        Department
	Salary            decimal.Decimal
	EmploymentHistory string
}

// FirstName and LastName split the full name on the first space.
func (e Employee) FirstName() string {
	first, _, _ := strings.Cut(strings.TrimSpace(e.FullName), " ")
	return first
}

func (e Employee) LastName() string {
	_, last, _ := strings.Cut(strings.TrimSpace(e.FullName), " ")
	return strings.TrimSpace(last)
}

// Initials returns up to two upper-case letters, first and last name.
func (e Employee) Initials() string {
	var b strings.Builder
	for _, part := range []string{e.FirstName(), e.LastName()} {
		if part != "" {
			b.WriteString(strings.ToUpper(part[:1]))
		}
	}
	return b.String()
}

type Department string

const (
	DepartmentDevelopment Department = "Development"
	DepartmentHR          Department = "HR"
	DepartmentQA          Department = "QA"
	DepartmentSales       Department = "Sales"
	DepartmentMarketing   Department = "Marketing"
	DepartmentDesign      Department = "Design"
	DepartmentIT          Department = "IT"
	DepartmentFinance     Department = "Finance"
	DepartmentSupport     Department = "Support"
	DepartmentGeneral     Department = "General" // self-registered accounts land here
)

// Departments lists every department in display order.
var Departments = []Department{
	DepartmentDevelopment,
	DepartmentHR,
	DepartmentQA,
	DepartmentSales,
	DepartmentMarketing,
	DepartmentDesign,
	DepartmentIT,
	DepartmentFinance,
	DepartmentSupport,
	DepartmentGeneral,
}

// Slug is the filter key for a department: lower case, spaces as hyphens.
func (d Department) Slug() string {
	return DepartmentSlug(string(d))
}

func DepartmentSlug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// ParseDepartment matches name case-insensitively against the known departments.
func ParseDepartment(name string) (Department, bool) {
	slug := DepartmentSlug(name)
	for _, d := range Departments {
		if d.Slug() == slug {
			return d, true
		}
	}
	return "", false
}

// EventCreated is published to admins when an employee is added.
const EventCreated = "employee.created"
