package employee

import (
	"fmt"
	"strings"
	"time"
)

// DeptPrefix maps a department (canonical or raw spelling) onto the ID
// prefix. Unknown departments fall back to GEN rather than failing; ID
// generation itself never rejects input.
func DeptPrefix(dept string) string {
	switch strings.ToLower(strings.TrimSpace(dept)) {
	case "hr":
		return "HR"
	case "developer", "dev":
		return "DEV"
	case "tester", "test":
		return "TEST"
	default:
		return "GEN"
	}
}

// FormatEmployeeID renders an ID like HR2025-005 from a prefix, a year and a
// running sequence number.
func FormatEmployeeID(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s%d-%03d", prefix, year, seq)
}

// GenerateEmployeeID derives the synthetic ID for a new employee from the
// current row count. The count is read before the insert, so two concurrent
// creates can compute the same ID; the primary key constraint turns that into
// a duplicate-ID error at persist time instead of a silent overwrite.
func GenerateEmployeeID(dept string, count int64) string {
	return FormatEmployeeID(DeptPrefix(dept), time.Now().Year(), count+1)
}
