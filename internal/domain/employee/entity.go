package employee

import "time"

type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

type Employee struct {
	ID          string
	EmployeeID  string
	FullName    string
	Email       string
	Department  string
	Designation string
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
