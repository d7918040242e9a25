package ports

import (
	"context"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

// CreateRequestInput carries the fields for a new service request. Customer
// identity comes from the resolved user, never from the payload.
type CreateRequestInput struct {
	ServiceID string
	Status    string // defaults to domain.StatusPending when empty
}

type RequestService interface {
	Create(ctx context.Context, customer *domain.User, in CreateRequestInput) (string, error)
	ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceRequest, error)
	ListPending(ctx context.Context) ([]domain.ServiceRequest, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
