package domain

import (
	"errors"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
)

var (
	// ErrInvalidCredentials covers wrong username, wrong role and wrong
	// password alike; callers must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("username already exists")
	ErrEmailExists        = errors.New("email already in use")
	ErrUserNotFound       = errors.New("user not found")

	// ErrInvalidToken is the single outcome for malformed, tampered and
	// expired tokens, and for tokens whose subject no longer exists.
	ErrInvalidToken = errors.New("invalid token")

	ErrTooManyAttempts = errors.New("too many login attempts")
)

// KnownRole reports whether role is one of the supported account roles.
func KnownRole(role string) bool {
	return role == RoleCustomer || role == RoleProvider
}

// User models an authenticated actor in the marketplace.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	FullName     string    `json:"fullName"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}
