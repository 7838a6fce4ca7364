package ports

import (
	"context"

	"github.com/tradebitsix/Drive-time/internal/core/domain"
)

// AuthService validates credentials and mints access tokens.
type AuthService interface {
	// Login returns a signed token and the matching account. Unknown
	// username and wrong password both fail with
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}
