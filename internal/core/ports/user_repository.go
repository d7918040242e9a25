package ports

import (
	"context"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

// UserRepository defines user persistence over the document store.
type UserRepository interface {
	// Create inserts the user and returns it with the storage-assigned id.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindByUsernameAndRole is the login lookup: both fields must match.
	FindByUsernameAndRole(ctx context.Context, username, role string) (*domain.User, error)
}
