package employee

import (
	"strings"
	"unicode"

	employeeerrors "employee-api/internal/employee/errors"

	"github.com/shopspring/decimal"
)

const bonusThreshold = 30000

var (
	bonusRate = decimal.NewFromFloat(1.10) // +10% above the threshold
	pfRate    = decimal.NewFromFloat(0.95) // -5% provident fund
	taxRate   = decimal.NewFromFloat(0.70) // -30% tax
)

// Normalize validates the employee and rewrites it into canonical form. It
// runs before every write: name casing, department and gender
// canonicalization, and the salary adjustment chain.
//
// Normalize is deterministic but NOT idempotent: the stored salary is the
// post-adjustment value, and re-running the chain over it (as full updates and
// patches do) shrinks it again on every pass. Existing consumers depend on
// that behavior, so it is covered by tests rather than fixed.
func Normalize(e *Employee) error {
	name, err := normalizeName(e.Name)
	if err != nil {
		return err
	}
	e.Name = name

	dept, err := CanonicalDept(e.Dept)
	if err != nil {
		return err
	}
	e.Dept = dept

	salary, err := adjustSalary(e.Salary)
	if err != nil {
		return err
	}
	e.Salary = salary

	gender, err := CanonicalGender(e.Gender)
	if err != nil {
		return err
	}
	e.Gender = gender

	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", employeeerrors.ErrInvalidName
	}

	runes := []rune(strings.ToLower(name))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes), nil
}

// CanonicalDept maps any accepted spelling onto {HR, Developer, Tester}.
// Whitespace is stripped entirely and the match is case-insensitive.
func CanonicalDept(dept string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, dept)

	switch {
	case strings.EqualFold(stripped, "HR"):
		return "HR", nil
	case strings.EqualFold(stripped, "Developer"), strings.EqualFold(stripped, "Dev"):
		return "Developer", nil
	case strings.EqualFold(stripped, "Tester"), strings.EqualFold(stripped, "Test"):
		return "Tester", nil
	default:
		return "", employeeerrors.ErrIllegalDepartment
	}
}

// CanonicalGender maps any accepted spelling onto {M, F, Other}.
func CanonicalGender(gender string) (string, error) {
	trimmed := strings.TrimSpace(gender)

	switch {
	case strings.EqualFold(trimmed, "Male"), strings.EqualFold(trimmed, "M"):
		return "M", nil
	case strings.EqualFold(trimmed, "Female"), strings.EqualFold(trimmed, "F"):
		return "F", nil
	case strings.EqualFold(trimmed, "Other"):
		return "Other", nil
	default:
		return "", employeeerrors.ErrInvalidGender
	}
}

// adjustSalary applies bonus, PF and tax in that order, then rounds half-up
// to the cent. decimal keeps the rounding exact where float math would not.
func adjustSalary(salary float64) (float64, error) {
	if salary <= 0 {
		return 0, employeeerrors.ErrInvalidSalary
	}

	d := decimal.NewFromFloat(salary)
	if d.GreaterThan(decimal.NewFromInt(bonusThreshold)) {
		d = d.Mul(bonusRate)
	}
	d = d.Mul(pfRate)
	d = d.Mul(taxRate)

	out, _ := d.Round(2).Float64()
	return out, nil
}
