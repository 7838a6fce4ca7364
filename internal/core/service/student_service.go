package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tradebitsix/Drive-time/internal/api/metrics"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

const (
	defaultStudentLimit = 200
	maxStudentLimit     = 500
)

// StudentService implements student CRUD and dashboard aggregates.
type StudentService struct {
	repo   ports.StudentRepository
	logger zerolog.Logger
}

func NewStudentService(repo ports.StudentRepository, logger zerolog.Logger) *StudentService {
	return &StudentService{repo: repo, logger: logger}
}

func (s *StudentService) List(ctx context.Context, filter ports.ListStudentsFilter) ([]*domain.Student, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultStudentLimit
	}
	if filter.Limit > maxStudentLimit {
		filter.Limit = maxStudentLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.List(ctx, filter)
}

func (s *StudentService) Get(ctx context.Context, id string) (*domain.Student, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *StudentService) Create(ctx context.Context, input ports.CreateStudentInput) (*domain.Student, error) {
	status := input.Status
	if status == "" {
		status = domain.StatusEnrolled
	}

	student := &domain.Student{
		Name:          input.Name,
		Status:        status,
		ProgressHours: input.ProgressHours,
		Notes:         input.Notes,
	}

	created, err := s.repo.Create(ctx, student)
	if err != nil {
		return nil, err
	}

	metrics.StudentsCreatedTotal.WithLabelValues(string(created.Status)).Inc()
	s.logger.Info().Str("student_id", created.ID).Str("status", string(created.Status)).Msg("student enrolled")
	return created, nil
}

func (s *StudentService) Update(ctx context.Context, id string, input ports.UpdateStudentInput) (*domain.Student, error) {
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		student.Name = *input.Name
	}
	if input.Status != nil {
		student.Status = *input.Status
	}
	if input.ProgressHours != nil {
		student.ProgressHours = *input.ProgressHours
	}
	if input.Notes != nil {
		student.Notes = *input.Notes
	}

	return s.repo.Update(ctx, student)
}

func (s *StudentService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DashboardStats returns the student counts shown on the dashboard.
func (s *StudentService) DashboardStats(ctx context.Context) (*domain.DashboardStats, error) {
	total, err := s.repo.CountByStatus(ctx, "")
	if err != nil {
		return nil, err
	}
	active, err := s.repo.CountByStatus(ctx, domain.StatusActive)
	if err != nil {
		return nil, err
	}
	completed, err := s.repo.CountByStatus(ctx, domain.StatusCompleted)
	if err != nil {
		return nil, err
	}

	return &domain.DashboardStats{Total: total, Active: active, Completed: completed}, nil
}
