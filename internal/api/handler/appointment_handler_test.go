package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type stubAppointmentService struct {
	lastBooking *ports.BookAppointmentInput
	bookErr     error
}

func (s *stubAppointmentService) ListForAdvocate(_ context.Context, _ uint) ([]*domain.Appointment, error) {
	return nil, nil
}

func (s *stubAppointmentService) Book(_ context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	s.lastBooking = &in
	if s.bookErr != nil {
		return nil, s.bookErr
	}
	return &domain.Appointment{Status: domain.AppointmentPending, AdvocateID: in.AdvocateID}, nil
}

func (s *stubAppointmentService) UpdateStatus(_ context.Context, _, _ uint, next domain.AppointmentStatus) (*domain.Appointment, error) {
	return &domain.Appointment{Status: next}, nil
}

func TestAppointmentHandler_Book_DefaultsFromClaims(t *testing.T) {
	svc := &stubAppointmentService{}
	h := NewAppointmentHandler(svc)

	body := `{"advocate_id":3,"appointment_date":"2026-09-10","appointment_time":"10:30"}`
	c, rec := newTestContext(t, http.MethodPost, "/appointments", body)
	c.Set("identity_id", uint(9))
	c.Set("email", "rita@example.com")
	c.Set("full_name", "Rita Portal")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastBooking == nil {
		t.Fatalf("service was never called")
	}
	if svc.lastBooking.ClientEmail != "rita@example.com" {
		t.Fatalf("client email must fall back to the caller's claim, got %q", svc.lastBooking.ClientEmail)
	}
	if svc.lastBooking.ClientName != "Rita Portal" {
		t.Fatalf("client name must fall back to the caller's claim, got %q", svc.lastBooking.ClientName)
	}
}

func TestAppointmentHandler_Book_ExplicitClientFieldsWin(t *testing.T) {
	svc := &stubAppointmentService{}
	h := NewAppointmentHandler(svc)

	body := `{"advocate_id":3,"client_email":"walk.in@example.com","client_name":"Walk In","appointment_date":"2026-09-10","appointment_time":"10:30"}`
	c, _ := newTestContext(t, http.MethodPost, "/appointments", body)
	c.Set("identity_id", uint(9))
	c.Set("email", "staff@example.com")
	c.Set("full_name", "Front Desk")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if svc.lastBooking.ClientEmail != "walk.in@example.com" || svc.lastBooking.ClientName != "Walk In" {
		t.Fatalf("explicit client fields must pass through untouched, got %+v", svc.lastBooking)
	}
}

func TestAppointmentHandler_Book_MissingEmailClaim(t *testing.T) {
	svc := &stubAppointmentService{}
	h := NewAppointmentHandler(svc)

	body := `{"advocate_id":3,"appointment_date":"2026-09-10","appointment_time":"10:30"}`
	c, _ := newTestContext(t, http.MethodPost, "/appointments", body)

	err := h.Book(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no email claim can fill the booking, got %v", err)
	}
	if svc.lastBooking != nil {
		t.Fatalf("service must not be reached without a resolvable client email")
	}
}

func TestAppointmentHandler_Book_NameFallsBackToEmail(t *testing.T) {
	svc := &stubAppointmentService{}
	h := NewAppointmentHandler(svc)

	body := `{"advocate_id":3,"appointment_date":"2026-09-10","appointment_time":"10:30"}`
	c, _ := newTestContext(t, http.MethodPost, "/appointments", body)
	c.Set("identity_id", uint(9))
	c.Set("email", "rita@example.com")

	if err := h.Book(c); err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if svc.lastBooking.ClientName != "rita@example.com" {
		t.Fatalf("without a full_name claim the email stands in, got %q", svc.lastBooking.ClientName)
	}
}
