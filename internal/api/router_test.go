package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/pkg/config"
)

const routerTestSecret = "router-test-secret"

// testRouter is built once: the prometheus middleware registers its
// collectors on the default registry, and a second registration panics.
var testRouter *echo.Echo

func router(t *testing.T) *echo.Echo {
	t.Helper()
	if testRouter == nil {
		cfg := &config.Config{
			JWTSecret:  routerTestSecret,
			AccessTTL:  time.Hour,
			RefreshTTL: 24 * time.Hour,
		}
		cfg.OTP.TTL = 10 * time.Minute
		cfg.OTP.RequestLimit = 5
		cfg.OTP.RequestWindow = 15 * time.Minute
		testRouter = NewRouter(nil, nil, cfg, zerolog.Nop())
	}
	return testRouter
}

func accessTokenFor(t *testing.T, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sub":       float64(7),
		"username":  "rita@example.com",
		"email":     "rita@example.com",
		"role":      role,
		"full_name": "Rita Portal",
		"typ":       "access",
		"exp":       time.Now().Add(time.Hour).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(routerTestSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

func TestRouter_BookAppointmentRequiresAuth(t *testing.T) {
	e := router(t)

	body := `{"advocate_id":3,"appointment_date":"2026-09-10","appointment_time":"10:30"}`
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("unauthenticated booking must be 401, got %d", rec.Code)
	}
}

func TestRouter_BookAppointmentOpenToClients(t *testing.T) {
	e := router(t)

	// An empty body fails validation before any storage is touched: a
	// 400 here proves a CLIENT token clears both Auth and the route's
	// role gate.
	req := httptest.NewRequest(http.MethodPost, "/appointments", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessTokenFor(t, domain.RoleClient))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("authenticated client booking must reach the handler, got %d", rec.Code)
	}
}

func TestRouter_AppointmentListStaysStaffOnly(t *testing.T) {
	e := router(t)

	req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer "+accessTokenFor(t, domain.RoleClient))
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("client token must not list the practice calendar, got %d", rec.Code)
	}
}
