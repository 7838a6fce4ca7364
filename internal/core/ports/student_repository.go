package ports

import (
	"context"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// ListStudentsFilter carries the query parameters for listing students.
type ListStudentsFilter struct {
	Limit  int // max rows per page (service applies the default/cap)
	Offset int
}

// StudentRepository defines persistence operations for student records.
type StudentRepository interface {
	List(ctx context.Context, filter ListStudentsFilter) ([]*domain.Student, error)
	FindByID(ctx context.Context, id string) (*domain.Student, error)
	Create(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Update(ctx context.Context, student *domain.Student) (*domain.Student, error)
	Delete(ctx context.Context, id string) error
	// CountByStatus returns the number of students in the given status;
	// an empty status counts all students.
	CountByStatus(ctx context.Context, status domain.StudentStatus) (int64, error)
}
