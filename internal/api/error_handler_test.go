package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
)

func runErrorHandler(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body: %v", err)
	}
	return rec, body
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrIdentityNotFound, http.StatusNotFound},
		{domain.ErrClientNotFound, http.StatusNotFound},
		{domain.ErrCaseNotFound, http.StatusNotFound},
		{domain.ErrAppointmentNotFound, http.StatusNotFound},
		{domain.ErrTemplateNotFound, http.StatusNotFound},
		{domain.ErrCodeNotFound, http.StatusNotFound},
		{domain.ErrInvalidCode, http.StatusBadRequest},
		{domain.ErrInvalidTransition, http.StatusUnprocessableEntity},
		{domain.ErrInvalidAdvocate, http.StatusBadRequest},
		{domain.ErrRateLimited, http.StatusTooManyRequests},
		{domain.ErrMailDelivery, http.StatusBadGateway},
	}

	for _, tc := range cases {
		rec, body := runErrorHandler(t, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%v: got %d, want %d", tc.err, rec.Code, tc.code)
		}
		if body["error"] == "" {
			t.Errorf("%v: missing error message", tc.err)
		}
	}
}

func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("%w: connection refused", domain.ErrMailDelivery)
	rec, _ := runErrorHandler(t, wrapped)
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("wrapped sentinel must still map, got %d", rec.Code)
	}
}

func TestHTTPErrorHandler_EchoError(t *testing.T) {
	rec, body := runErrorHandler(t, echo.NewHTTPError(http.StatusTeapot, "short and stout"))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rec.Code)
	}
	if body["error"] != "short and stout" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	rec, body := runErrorHandler(t, errors.New("pq: connection reset"))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	// internals never leak to the client
	if body["error"] != "internal server error" {
		t.Fatalf("unexpected message: %q", body["error"])
	}
}
