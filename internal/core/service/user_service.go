package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

// UserService implements administrative account operations.
type UserService struct {
	users  ports.UserRepository
	hasher *auth.PasswordHasher
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, hasher *auth.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{users: users, hasher: hasher, logger: logger}
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) Create(ctx context.Context, input ports.CreateUserInput) (*domain.User, error) {
	if input.Username == "" || input.Password == "" || !input.Role.Valid() {
		return nil, domain.ErrInvalidInput
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.users.Create(ctx, user)
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidInput
	}
	return s.users.UpdateRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.users.Delete(ctx, id)
}

// EnsureAdmin creates the configured seed admin when no account with that
// username exists yet. Safe to run on every startup.
func (s *UserService) EnsureAdmin(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	_, err := s.users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	if _, err := s.Create(ctx, ports.CreateUserInput{Username: username, Password: password, Role: domain.RoleAdmin}); err != nil {
		// A concurrent replica may have won the race; that still satisfies
		// the bootstrap.
		if errors.Is(err, domain.ErrUserExists) {
			return nil
		}
		return err
	}

	s.logger.Info().Str("username", username).Msg("seed admin created")
	return nil
}
