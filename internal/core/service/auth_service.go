package service

import (
	"context"
	"errors"
	"time"

	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

// dummyHash is a bcrypt hash of a random string no caller knows. The
// unknown-username path verifies the supplied password against it so both
// failure paths cost a bcrypt compare and return the same error.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService implements login against the credential store.
type AuthService struct {
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	codec  *auth.TokenCodec
	ttl    time.Duration
}

func NewAuthService(users ports.UserRepository, hasher *auth.PasswordHasher, codec *auth.TokenCodec, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{users: users, hasher: hasher, codec: codec, ttl: tokenTTL}
}

// Login validates the username/password pair and mints an access token.
// Unknown usernames and wrong passwords are indistinguishable to the
// caller: both return domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.Verify(password, dummyHash)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user.Username, user.Role, s.ttl)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
