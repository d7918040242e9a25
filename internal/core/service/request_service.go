package service

import (
	"context"
	"time"

	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/ports"
)

// placeholderServiceName stands in until requests reference a services
// catalogue; the original data model stores a denormalised service name.
const placeholderServiceName = "Service"

// RequestService implements service-request CRUD on behalf of handlers.
type RequestService struct {
	requests ports.RequestRepository
}

func NewRequestService(requests ports.RequestRepository) *RequestService {
	return &RequestService{requests: requests}
}

// Create stores a new request owned by the resolved customer. Status
// defaults to pending.
func (s *RequestService) Create(ctx context.Context, customer *domain.User, in ports.CreateRequestInput) (string, error) {
	status := in.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now().UTC()
	return s.requests.Insert(ctx, &domain.ServiceRequest{
		CustomerID:   customer.ID,
		CustomerName: customer.FullName,
		ServiceID:    in.ServiceID,
		ServiceName:  placeholderServiceName,
		Status:       status,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

// ListByCustomer returns the customer's requests, newest first.
func (s *RequestService) ListByCustomer(ctx context.Context, customerID string) ([]domain.ServiceRequest, error) {
	return s.requests.FindByCustomer(ctx, customerID)
}

// ListPending returns every request still awaiting a provider, newest first.
func (s *RequestService) ListPending(ctx context.Context) ([]domain.ServiceRequest, error) {
	return s.requests.FindByStatus(ctx, domain.StatusPending)
}

// UpdateStatus writes the given status verbatim; the accepted set is
// open-ended by design.
func (s *RequestService) UpdateStatus(ctx context.Context, id, status string) error {
	return s.requests.UpdateStatus(ctx, id, status)
}
