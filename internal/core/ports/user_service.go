package ports

import (
	"context"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// CreateUserInput carries the data needed to create an account.
type CreateUserInput struct {
	Username string
	Password string
	Role     domain.Role
}

// UserService defines administrative account operations.
type UserService interface {
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, input CreateUserInput) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
	// EnsureAdmin creates the seed admin account when the username is
	// absent. Idempotent; used by the startup bootstrap.
	EnsureAdmin(ctx context.Context, username, password string) error
}
