package ports

import (
	"context"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// CreateStudentInput carries the data needed to enroll a student.
type CreateStudentInput struct {
	Name          string
	Status        domain.StudentStatus
	ProgressHours float64
	Notes         string
}

// UpdateStudentInput carries a partial student update; nil fields are
// left unchanged.
type UpdateStudentInput struct {
	Name          *string
	Status        *domain.StudentStatus
	ProgressHours *float64
	Notes         *string
}

// StudentService defines use-case operations for student records.
type StudentService interface {
	List(ctx context.Context, filter ListStudentsFilter) ([]*domain.Student, error)
	Get(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, input CreateStudentInput) (*domain.Student, error)
	Update(ctx context.Context, id string, input UpdateStudentInput) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	DashboardStats(ctx context.Context) (*domain.DashboardStats, error)
}
