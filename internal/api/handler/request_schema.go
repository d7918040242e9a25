package handler

// --- Request / Response types ---

type createRequestRequest struct {
	ServiceID string `json:"serviceId" validate:"required"`
	Status    string `json:"status"` // optional, defaults to pending
}

type createRequestResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type updateRequestRequest struct {
	Status string `json:"status" validate:"required"`
}
