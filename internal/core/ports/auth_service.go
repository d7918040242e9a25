package ports

import (
	"context"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

// SignupInput carries the fields required to register a new account.
type SignupInput struct {
	Username string
	Email    string
	Password string
	FullName string
	Role     string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, username, password, role string) (*domain.User, string, error)
	// ResolveUser verifies the token and loads the live user record for its
	// subject, so stale claims never override current data.
	ResolveUser(ctx context.Context, token string) (*domain.User, error)
}

// IdentityResolver is the subset of AuthService the authorization gate needs.
type IdentityResolver interface {
	ResolveUser(ctx context.Context, token string) (*domain.User, error)
}

// LoginLimiter throttles authentication attempts per account identifier.
type LoginLimiter interface {
	// Allow reports whether another attempt is permitted. Implementations
	// fail open: an infrastructure error must not lock users out.
	Allow(ctx context.Context, key string) (bool, error)
}
