package employee

import "time"

// Employee is keyed by a synthetic string ID such as DEV2025-003, assigned
// once at creation.
type Employee struct {
	ID        string `gorm:"primaryKey"`
	Name      string
	Salary    float64
	Dept      string
	Gender    string
	Email     string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
