package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type stubOTPService struct {
	requestFn func(ctx context.Context, email string) error
	verifyFn  func(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error)
}

func (s *stubOTPService) RequestCode(ctx context.Context, email string) error {
	return s.requestFn(ctx, email)
}

func (s *stubOTPService) VerifyCode(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error) {
	return s.verifyFn(ctx, email, code)
}

func TestOTPHandler_Request_Success(t *testing.T) {
	stub := &stubOTPService{
		requestFn: func(ctx context.Context, email string) error {
			if email != "rita@example.com" {
				t.Fatalf("unexpected email: %s", email)
			}
			return nil
		},
	}
	handler := NewOTPHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/otp/request", `{"email":"rita@example.com"}`)

	if err := handler.Request(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOTPHandler_Request_BadEmail(t *testing.T) {
	stub := &stubOTPService{
		requestFn: func(ctx context.Context, email string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewOTPHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/otp/request", `{"email":"not-an-email"}`)

	err := handler.Request(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOTPHandler_Request_RateLimited(t *testing.T) {
	stub := &stubOTPService{
		requestFn: func(ctx context.Context, email string) error {
			return domain.ErrRateLimited
		},
	}
	handler := NewOTPHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/otp/request", `{"email":"rita@example.com"}`)

	if err := handler.Request(c); !errors.Is(err, domain.ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited to propagate, got %v", err)
	}
}

func TestOTPHandler_Verify_Success(t *testing.T) {
	stub := &stubOTPService{
		verifyFn: func(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error) {
			if email != "rita@example.com" || code != "123456" {
				t.Fatalf("unexpected args: %s %s", email, code)
			}
			pair := &ports.TokenPair{Access: "acc", Refresh: "ref", Role: domain.RoleClient, FullName: "Rita"}
			return pair, &domain.Identity{ID: 3, Email: email}, nil
		},
	}
	handler := NewOTPHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/otp/verify", `{"email":"rita@example.com","code":"123456"}`)

	if err := handler.Verify(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["access"] != "acc" || resp["role"] != domain.RoleClient {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestOTPHandler_Verify_CodeLength(t *testing.T) {
	stub := &stubOTPService{
		verifyFn: func(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil, nil
		},
	}
	handler := NewOTPHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/otp/verify", `{"email":"rita@example.com","code":"123"}`)

	err := handler.Verify(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestOTPHandler_Verify_InvalidCode(t *testing.T) {
	stub := &stubOTPService{
		verifyFn: func(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error) {
			return nil, nil, domain.ErrInvalidCode
		},
	}
	handler := NewOTPHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/otp/verify", `{"email":"rita@example.com","code":"654321"}`)

	if err := handler.Verify(c); !errors.Is(err, domain.ErrInvalidCode) {
		t.Fatalf("expected ErrInvalidCode to propagate, got %v", err)
	}
}
