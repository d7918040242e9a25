package ports

import (
	"context"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
)

// RequestRepository defines service-request persistence over the document store.
type RequestRepository interface {
	// Insert stores the request and returns the storage-assigned id.
	Insert(ctx context.Context, req *domain.ServiceRequest) (string, error)
	// FindByCustomer returns the customer's requests, newest first.
	FindByCustomer(ctx context.Context, customerID string) ([]domain.ServiceRequest, error)
	// FindByStatus returns all requests with the given status, newest first.
	FindByStatus(ctx context.Context, status string) ([]domain.ServiceRequest, error)
	// UpdateStatus sets status and the updated timestamp on a single request.
	// Returns domain.ErrInvalidRequestID for malformed ids and
	// domain.ErrRequestNotFound when no document matches.
	UpdateStatus(ctx context.Context, id, status string) error
}
