package ports

import (
	"context"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Username uniqueness is enforced at the store boundary: Create returns
// domain.ErrUserExists when the username is already taken.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
