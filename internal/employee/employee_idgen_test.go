package employee_test

import (
	"fmt"
	"testing"
	"time"

	"employee-api/internal/employee"

	"github.com/stretchr/testify/assert"
)

func TestDeptPrefix(t *testing.T) {
	tests := []struct {
		dept string
		want string
	}{
		{"HR", "HR"},
		{"hr", "HR"},
		{"Developer", "DEV"},
		{"dev", "DEV"},
		{"Tester", "TEST"},
		{"test", "TEST"},
		{"Finance", "GEN"},
		{"", "GEN"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, employee.DeptPrefix(tt.dept), tt.dept)
	}
}

func TestFormatEmployeeID(t *testing.T) {
	assert.Equal(t, "DEV2025-012", employee.FormatEmployeeID("DEV", 2025, 12))
	assert.Equal(t, "HR2025-005", employee.FormatEmployeeID("HR", 2025, 5))
	// sequence wider than three digits is kept as-is
	assert.Equal(t, "GEN2025-1042", employee.FormatEmployeeID("GEN", 2025, 1042))
}

func TestGenerateEmployeeID(t *testing.T) {
	year := time.Now().Year()

	assert.Equal(t, fmt.Sprintf("HR%d-005", year), employee.GenerateEmployeeID("HR", 4))
	assert.Equal(t, fmt.Sprintf("DEV%d-001", year), employee.GenerateEmployeeID("Developer", 0))
	assert.Equal(t, fmt.Sprintf("GEN%d-100", year), employee.GenerateEmployeeID("Unknown", 99))
}
