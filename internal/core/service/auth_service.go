package service

import (
	"context"
	"errors"
	"time"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/ports"
	"github.com/ayudabesh/marketplace-api/internal/pkg/password"
)

// AuthService implements signup, login and identity resolution.
type AuthService struct {
	users   ports.UserRepository
	tokens  *TokenService
	limiter ports.LoginLimiter // nil disables attempt throttling
}

func NewAuthService(users ports.UserRepository, tokens *TokenService, limiter ports.LoginLimiter) *AuthService {
	return &AuthService{users: users, tokens: tokens, limiter: limiter}
}

// Signup registers a new account. Duplicate usernames and emails are two
// distinct failures; the storage layer's unique indexes back up the checks.
func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	if in.Role == "" {
		in.Role = domain.RoleCustomer
	}
	if !domain.KnownRole(in.Role) {
		return nil, "", domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, "", domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		FullName:     in.FullName,
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}
	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login authenticates by exact (username, role) match plus password check.
// Wrong username, wrong role and wrong password all return
// domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, pass, role string) (*domain.User, string, error) {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err == nil && !allowed {
			return nil, "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsernameAndRole(ctx, username, role)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !password.Verify(pass, user.PasswordHash) {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ResolveUser verifies the token and fetches the live user record for its
// subject. A vanished user yields domain.ErrInvalidToken, same as a bad token.
func (s *AuthService) ResolveUser(ctx context.Context, token string) (*domain.User, error) {
	claims, err := s.tokens.Verify(token)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}
