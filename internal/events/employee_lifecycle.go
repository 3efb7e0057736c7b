package events

import "time"

const EmployeeLifecycleTopic = "employees.lifecycle.v1"

const (
	EmployeeCreated = "employee_created"
	EmployeeDeleted = "employee_deleted"
)

type EmployeeLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	Dept       string    `json:"dept,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
