package domain

import "errors"

// StudentStatus represents where a student is in the program.
type StudentStatus string

const (
	StatusEnrolled  StudentStatus = "enrolled"
	StatusActive    StudentStatus = "active"
	StatusCompleted StudentStatus = "completed"
)

// Valid reports whether s is one of the defined statuses.
func (s StudentStatus) Valid() bool {
	switch s {
	case StatusEnrolled, StatusActive, StatusCompleted:
		return true
	}
	return false
}

var ErrStudentNotFound = errors.New("student not found")

// Student is a driver-education student record.
type Student struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Status        StudentStatus `json:"status"`
	ProgressHours float64       `json:"progress_hours"`
	Notes         string        `json:"notes,omitempty"`
}

// DashboardStats aggregates student counts for the admin dashboard.
type DashboardStats struct {
	Total     int64 `json:"total"`
	Active    int64 `json:"active"`
	Completed int64 `json:"completed"`
}
