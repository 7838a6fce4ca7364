package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tradebitsix/Drive-time/internal/auth"
	"github.com/tradebitsix/Drive-time/internal/core/domain"
	"github.com/tradebitsix/Drive-time/internal/core/ports"
)

func newTestUserService(repo *stubUserRepo) *UserService {
	return NewUserService(repo, auth.NewPasswordHasher(4), zerolog.Nop())
}

func TestUserService_Create_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	user, err := svc.Create(context.Background(), ports.CreateUserInput{
		Username: "alice", Password: "S3cret!23", Role: domain.RoleInstructor,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.PasswordHash == "S3cret!23" || user.PasswordHash == "" {
		t.Fatalf("password was not hashed")
	}
	if !auth.NewPasswordHasher(4).Verify("S3cret!23", user.PasswordHash) {
		t.Fatalf("stored hash does not match password")
	}
	if user.Role != domain.RoleInstructor {
		t.Fatalf("unexpected role: %s", user.Role)
	}
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "", Password: "pw", Role: domain.RoleAdmin}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pw", Role: "student"}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestUserService_Create_Duplicate(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "pw123456", Role: domain.RoleAdmin}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "bob", Password: "other123", Role: domain.RoleInstructor}); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_UpdateRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	created, err := svc.Create(context.Background(), ports.CreateUserInput{Username: "alice", Password: "pw123456", Role: domain.RoleInstructor})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.UpdateRole(context.Background(), created.ID, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("update role failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("expected admin, got %s", updated.Role)
	}

	if _, err := svc.UpdateRole(context.Background(), created.ID, "student"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
	if _, err := svc.UpdateRole(context.Background(), "missing", domain.RoleAdmin); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_EnsureAdmin_Idempotent(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", "change_me_now"); err != nil {
		t.Fatalf("first bootstrap failed: %v", err)
	}
	if err := svc.EnsureAdmin(context.Background(), "admin", "different_pw"); err != nil {
		t.Fatalf("second bootstrap failed: %v", err)
	}

	user, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin missing: %v", err)
	}
	if user.Role != domain.RoleAdmin {
		t.Fatalf("expected admin role, got %s", user.Role)
	}
	// The original password still verifies: the second call was a no-op.
	if !auth.NewPasswordHasher(4).Verify("change_me_now", user.PasswordHash) {
		t.Fatalf("second bootstrap overwrote the account")
	}
}

func TestUserService_EnsureAdmin_DisabledWithoutPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestUserService(repo)

	if err := svc.EnsureAdmin(context.Background(), "admin", ""); err != nil {
		t.Fatalf("bootstrap should be a no-op: %v", err)
	}
	if _, err := repo.FindByUsername(context.Background(), "admin"); err != domain.ErrUserNotFound {
		t.Fatalf("no account should have been created, got %v", err)
	}
}
