package employee_test

import (
	"testing"

	"employee-api/internal/employee"
	employeeerrors "employee-api/internal/employee/errors"

	"github.com/stretchr/testify/assert"
)

func validEmployee() *employee.Employee {
	return &employee.Employee{
		Name:   "bob",
		Salary: 50000,
		Dept:   " Dev ",
		Gender: "m",
		Email:  "bob@example.com",
	}
}

func TestNormalize_CanonicalForm(t *testing.T) {
	e := validEmployee()

	err := employee.Normalize(e)

	assert.NoError(t, err)
	assert.Equal(t, "Bob", e.Name)
	assert.Equal(t, "Developer", e.Dept)
	assert.Equal(t, "M", e.Gender)
	// 50000 -> +10% = 55000 -> -5% = 52250 -> -30% = 36575.00
	assert.Equal(t, 36575.00, e.Salary)
	assert.Equal(t, "bob@example.com", e.Email)
}

func TestNormalize_NameCasing(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"alice", "Alice"},
		{"  mCGREGOR  ", "Mcgregor"},
		{"X", "X"},
	}

	for _, tt := range tests {
		e := validEmployee()
		e.Name = tt.in

		err := employee.Normalize(e)

		assert.NoError(t, err)
		assert.Equal(t, tt.want, e.Name)
	}
}

func TestNormalize_BlankNameRejected(t *testing.T) {
	e := validEmployee()
	e.Name = "   "

	err := employee.Normalize(e)

	assert.ErrorIs(t, err, employeeerrors.ErrInvalidName)
}

func TestCanonicalDept(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"HR", "HR"},
		{"hr", "HR"},
		{" dev ", "Developer"},
		{"DEV", "Developer"},
		{"Developer", "Developer"},
		{"TEST", "Tester"},
		{"tester", "Tester"},
	}

	for _, tt := range tests {
		got, err := employee.CanonicalDept(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCanonicalDept_Rejected(t *testing.T) {
	for _, in := range []string{"sales", "", "   "} {
		_, err := employee.CanonicalDept(in)
		assert.ErrorIs(t, err, employeeerrors.ErrIllegalDepartment, in)
	}
}

func TestCanonicalGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"m", "M"},
		{"Male", "M"},
		{"FEMALE", "F"},
		{"f", "F"},
		{"other", "Other"},
		{" Other ", "Other"},
	}

	for _, tt := range tests {
		got, err := employee.CanonicalGender(tt.in)
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCanonicalGender_Rejected(t *testing.T) {
	_, err := employee.CanonicalGender("x")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidGender)
}

func TestNormalize_SalaryAdjustment(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		// 40000 -> bonus 44000 -> PF 41800 -> tax 29260.00
		{"above bonus threshold", 40000, 29260.00},
		// 20000 -> no bonus -> PF 19000 -> tax 13300.00
		{"below bonus threshold", 20000, 13300.00},
		// exactly 30000 gets no bonus
		{"at bonus threshold", 30000, 19950.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEmployee()
			e.Salary = tt.in

			err := employee.Normalize(e)

			assert.NoError(t, err)
			assert.Equal(t, tt.want, e.Salary)
		})
	}
}

func TestNormalize_SalaryRoundsHalfUpToCents(t *testing.T) {
	e := validEmployee()
	// 100.01 -> PF 95.0095 -> tax 66.50665 -> 66.51 on the half cent
	e.Salary = 100.01

	err := employee.Normalize(e)

	assert.NoError(t, err)
	assert.Equal(t, 66.51, e.Salary)
}

func TestNormalize_NonPositiveSalaryRejected(t *testing.T) {
	for _, in := range []float64{0, -100} {
		e := validEmployee()
		e.Salary = in

		err := employee.Normalize(e)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidSalary, in)
	}
}

// Re-running the pipeline over its own output is NOT a fixed point: the salary
// chain re-applies and the stored value shrinks on every pass. Updates and
// patches rely on this exact behavior, so it is asserted, not fixed.
func TestNormalize_SalaryNotIdempotent(t *testing.T) {
	e := validEmployee()
	e.Salary = 50000

	assert.NoError(t, employee.Normalize(e))
	first := e.Salary

	assert.NoError(t, employee.Normalize(e))
	second := e.Salary

	assert.Less(t, second, first)
	// 36575 -> bonus 40232.50 -> PF 38220.875 -> tax 26754.61
	assert.Equal(t, 26754.61, second)

	assert.NoError(t, employee.Normalize(e))
	assert.Less(t, e.Salary, second)
}
