package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ayudabesh/marketplace-api/internal/api/middleware"
	"github.com/ayudabesh/marketplace-api/internal/core/domain"
	"github.com/ayudabesh/marketplace-api/internal/core/ports"
)

type stubRequestService struct {
	createdID string
	requests  []domain.ServiceRequest
	err       error

	createCustomer *domain.User
	createIn       ports.CreateRequestInput
	updateID       string
	updateStatus   string
}

func (s *stubRequestService) Create(_ context.Context, customer *domain.User, in ports.CreateRequestInput) (string, error) {
	s.createCustomer, s.createIn = customer, in
	if s.err != nil {
		return "", s.err
	}
	return s.createdID, nil
}

func (s *stubRequestService) ListByCustomer(_ context.Context, _ string) ([]domain.ServiceRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.requests, nil
}

func (s *stubRequestService) ListPending(_ context.Context) ([]domain.ServiceRequest, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.requests, nil
}

func (s *stubRequestService) UpdateStatus(_ context.Context, id, status string) error {
	s.updateID, s.updateStatus = id, status
	return s.err
}

func newRequestContext(t *testing.T, method, path, body string, user *domain.User) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if user != nil {
		c.Set(middleware.UserContextKey, user)
	}
	return c, rec
}

func sampleRequest() domain.ServiceRequest {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return domain.ServiceRequest{
		ID:           "64b8f0a2e4b0c94f1a2b3c4e",
		CustomerID:   testUser().ID,
		CustomerName: "Alice A",
		ServiceID:    "svc1",
		ServiceName:  "Service",
		Status:       domain.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func TestRequestHandler_Create_Success(t *testing.T) {
	svc := &stubRequestService{createdID: "64b8f0a2e4b0c94f1a2b3c4e"}
	h := NewRequestHandler(svc)

	c, rec := newRequestContext(t, http.MethodPost, "/api/requests/create",
		`{"serviceId":"svc1"}`, testUser())
	if err := h.Create(c); err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.createCustomer == nil || svc.createCustomer.ID != testUser().ID {
		t.Fatalf("service not called with resolved user: %+v", svc.createCustomer)
	}
	if svc.createIn.ServiceID != "svc1" || svc.createIn.Status != "" {
		t.Fatalf("unexpected input: %+v", svc.createIn)
	}

	var resp createRequestResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.ID != svc.createdID || resp.Message != "Request created" {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRequestHandler_Create_MissingServiceID(t *testing.T) {
	svc := &stubRequestService{createdID: "id"}
	h := NewRequestHandler(svc)

	c, _ := newRequestContext(t, http.MethodPost, "/api/requests/create", `{}`, testUser())
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.createCustomer != nil {
		t.Fatalf("service should not be called on validation failure")
	}
}

func TestRequestHandler_Create_NoUser(t *testing.T) {
	h := NewRequestHandler(&stubRequestService{})

	c, _ := newRequestContext(t, http.MethodPost, "/api/requests/create",
		`{"serviceId":"svc1"}`, nil)
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without resolved user, got %v", err)
	}
}

func TestRequestHandler_MyRequests(t *testing.T) {
	svc := &stubRequestService{requests: []domain.ServiceRequest{sampleRequest()}}
	h := NewRequestHandler(svc)

	c, rec := newRequestContext(t, http.MethodGet, "/api/requests/my-requests", "", testUser())
	if err := h.MyRequests(c); err != nil {
		t.Fatalf("MyRequests returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got []domain.ServiceRequest
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 1 || got[0].ID != sampleRequest().ID || got[0].Status != domain.StatusPending {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func TestRequestHandler_Pending_EmptyList(t *testing.T) {
	h := NewRequestHandler(&stubRequestService{requests: []domain.ServiceRequest{}})

	c, rec := newRequestContext(t, http.MethodGet, "/api/requests/pending", "", nil)
	if err := h.Pending(c); err != nil {
		t.Fatalf("Pending returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Fatalf("expected empty JSON array, got %q", body)
	}
}

func TestRequestHandler_Update_Success(t *testing.T) {
	svc := &stubRequestService{}
	h := NewRequestHandler(svc)

	c, rec := newRequestContext(t, http.MethodPatch, "/api/requests/64b8f0a2e4b0c94f1a2b3c4e",
		`{"status":"accepted"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("64b8f0a2e4b0c94f1a2b3c4e")

	if err := h.Update(c); err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.updateID != "64b8f0a2e4b0c94f1a2b3c4e" || svc.updateStatus != "accepted" {
		t.Fatalf("service called with %q/%q", svc.updateID, svc.updateStatus)
	}
}

func TestRequestHandler_Update_MissingStatus(t *testing.T) {
	svc := &stubRequestService{}
	h := NewRequestHandler(svc)

	c, _ := newRequestContext(t, http.MethodPatch, "/api/requests/some-id", `{}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("some-id")

	err := h.Update(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if svc.updateID != "" {
		t.Fatalf("service should not be called without status")
	}
}

func TestRequestHandler_Update_NotFound(t *testing.T) {
	svc := &stubRequestService{err: domain.ErrRequestNotFound}
	h := NewRequestHandler(svc)

	c, _ := newRequestContext(t, http.MethodPatch, "/api/requests/64b8f0a2e4b0c94f1a2b3c4e",
		`{"status":"accepted"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("64b8f0a2e4b0c94f1a2b3c4e")

	if err := h.Update(c); !errors.Is(err, domain.ErrRequestNotFound) {
		t.Fatalf("expected ErrRequestNotFound to propagate, got %v", err)
	}
}

func TestRequestHandler_Update_InvalidID(t *testing.T) {
	svc := &stubRequestService{err: domain.ErrInvalidRequestID}
	h := NewRequestHandler(svc)

	c, _ := newRequestContext(t, http.MethodPatch, "/api/requests/not-an-object-id",
		`{"status":"accepted"}`, nil)
	c.SetParamNames("id")
	c.SetParamValues("not-an-object-id")

	if err := h.Update(c); !errors.Is(err, domain.ErrInvalidRequestID) {
		t.Fatalf("expected ErrInvalidRequestID to propagate, got %v", err)
	}
}
