package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ayudabesh/marketplace-api/internal/api/metrics"
	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/ports"
)

// RequestHandler handles HTTP requests for service-request operations.
type RequestHandler struct {
	service ports.RequestService
}

func NewRequestHandler(service ports.RequestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// Create stores a new service request owned by the authenticated customer.
//
// @Summary      Create a service request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createRequestRequest  true  "Request details"
// @Success      201   {object}  createRequestResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/requests/create [post]
func (h *RequestHandler) Create(c echo.Context) error {
	var req createRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), user, ports.CreateRequestInput{
		ServiceID: req.ServiceID,
		Status:    req.Status,
	})
	if err != nil {
		return err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}
	metrics.RequestsCreatedTotal.WithLabelValues(status).Inc()

	return c.JSON(http.StatusCreated, createRequestResponse{ID: id, Message: "Request created"})
}

// MyRequests lists the authenticated customer's requests, newest first.
//
// @Summary      List my service requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServiceRequest
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/requests/my-requests [get]
func (h *RequestHandler) MyRequests(c echo.Context) error {
	user, err := CurrentUser(c)
	if err != nil {
		return err
	}

	requests, err := h.service.ListByCustomer(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Pending lists all requests awaiting a provider, newest first. Restricted
// to providers.
//
// @Summary      List pending service requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.ServiceRequest
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/requests/pending [get]
func (h *RequestHandler) Pending(c echo.Context) error {
	requests, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Update sets a request's status. Any non-empty status string is accepted.
//
// @Summary      Update a service request status
// @Tags         requests
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Request id"
// @Param        body  body      updateRequestRequest  true  "New status"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /api/requests/{id} [patch]
func (h *RequestHandler) Update(c echo.Context) error {
	var req updateRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.UpdateStatus(c.Request().Context(), c.Param("id"), req.Status); err != nil {
		return err
	}
	metrics.RequestStatusUpdatesTotal.Inc()

	return c.JSON(http.StatusOK, messageResponse{Message: "Request updated"})
}
