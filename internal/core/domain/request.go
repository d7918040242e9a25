package domain

import (
	"errors"
	"time"
)

// StatusPending is the status assigned to newly created service requests.
// Updates accept any non-empty status string; the set is open-ended.
const StatusPending = "pending"

var (
	ErrRequestNotFound  = errors.New("request not found")
	ErrInvalidRequestID = errors.New("invalid request id")
)

// ServiceRequest is a unit of work a customer asks a provider to perform.
type ServiceRequest struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customerId"`
	CustomerName string    `json:"customerName"`
	ServiceID    string    `json:"serviceId"`
	ServiceName  string    `json:"serviceName"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
