package domain

import (
	"errors"
	"time"
)

// Role is the access class of an account. There are exactly two.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleInstructor Role = "instructor"
)

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleInstructor
}

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidInput = errors.New("invalid input")
var ErrUserExists = errors.New("username already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrForbidden = errors.New("access forbidden")

// Token decode failures. Callers deny access on all three; they stay
// distinct for logging and tests.
var ErrTokenMalformed = errors.New("token malformed")
var ErrTokenSignatureInvalid = errors.New("token signature invalid")
var ErrTokenExpired = errors.New("token expired")

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
