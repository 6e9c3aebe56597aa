package service

import (
	"context"
	"sort"
	"testing"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

type stubAppointmentRepo struct {
	appointments map[uint]*domain.Appointment
	nextID       uint
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[uint]*domain.Appointment), nextID: 1}
}

func cloneAppointment(a *domain.Appointment) *domain.Appointment {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	copy := cloneAppointment(a)
	copy.ID = r.nextID
	r.nextID++
	r.appointments[copy.ID] = cloneAppointment(copy)
	return copy, nil
}

func (r *stubAppointmentRepo) ListByAdvocate(_ context.Context, advocateID uint) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.appointments {
		if a.AdvocateID == advocateID {
			out = append(out, cloneAppointment(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, advocateID, id uint) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok || a.AdvocateID != advocateID {
		return nil, domain.ErrAppointmentNotFound
	}
	return cloneAppointment(a), nil
}

func (r *stubAppointmentRepo) UpdateStatus(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	r.appointments[a.ID] = cloneAppointment(a)
	return cloneAppointment(a), nil
}

func (r *stubAppointmentRepo) CountByAdvocateStatuses(_ context.Context, advocateID uint, statuses []domain.AppointmentStatus) (int64, error) {
	var n int64
	for _, a := range r.appointments {
		if a.AdvocateID != advocateID {
			continue
		}
		for _, s := range statuses {
			if a.Status == s {
				n++
				break
			}
		}
	}
	return n, nil
}

func (r *stubAppointmentRepo) RecentByAdvocate(ctx context.Context, advocateID uint, limit int) ([]*domain.Appointment, error) {
	out, err := r.ListByAdvocate(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubAppointmentRepo) PendingDates(_ context.Context, advocateID uint) ([]string, error) {
	var out []string
	for _, a := range r.appointments {
		if a.AdvocateID != advocateID {
			continue
		}
		if a.Status == domain.AppointmentPending || a.Status == domain.AppointmentConfirmed {
			out = append(out, a.AppointmentDate)
		}
	}
	return out, nil
}

type appointmentFixture struct {
	svc        *AppointmentService
	repo       *stubAppointmentRepo
	clients    *stubClientRepo
	identities *stubIdentityRepo
	advocateID uint
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()
	f := &appointmentFixture{
		repo:       newStubAppointmentRepo(),
		clients:    newStubClientRepo(),
		identities: newStubIdentityRepo(),
	}
	f.svc = NewAppointmentService(f.repo, f.clients, f.identities, zerolog.Nop())

	advocate, err := f.identities.Create(context.Background(), &domain.Identity{
		Username: "adv",
		Email:    "adv@example.com",
		FullName: "Adv Ocate",
		Role:     domain.RoleAdvocate,
		Active:   true,
	})
	if err != nil {
		t.Fatalf("seed advocate failed: %v", err)
	}
	f.advocateID = advocate.ID
	return f
}

func bookingInput(advocateID uint) ports.BookAppointmentInput {
	return ports.BookAppointmentInput{
		AdvocateID:      advocateID,
		ClientEmail:     "walkin@example.com",
		ClientName:      "Walk In",
		AppointmentDate: "2026-09-15",
		AppointmentTime: "10:30",
		Duration:        30,
		Purpose:         "Initial consultation",
	}
}

func TestAppointmentService_Book_Success(t *testing.T) {
	f := newAppointmentFixture(t)

	appt, err := f.svc.Book(context.Background(), bookingInput(f.advocateID))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.Status != domain.AppointmentPending {
		t.Fatalf("new appointments start Pending, got %s", appt.Status)
	}
	if appt.AdvocateID != f.advocateID {
		t.Fatalf("unexpected advocate: %d", appt.AdvocateID)
	}

	// the walk-in email materialises a client record owned by the advocate
	client, err := f.clients.FindAnyByEmail(context.Background(), "walkin@example.com")
	if err != nil {
		t.Fatalf("expected client record: %v", err)
	}
	if client.CreatedByID != f.advocateID {
		t.Fatalf("client must belong to the chosen advocate, got %d", client.CreatedByID)
	}
	if appt.ClientID != client.ID {
		t.Fatalf("appointment must reference the client record")
	}
}

func TestAppointmentService_Book_ReusesClientRecord(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	existing, _ := f.clients.Create(ctx, &domain.Client{
		FullName:    "Walk In",
		Email:       "walkin@example.com",
		Active:      true,
		CreatedByID: f.advocateID,
	})

	appt, err := f.svc.Book(ctx, bookingInput(f.advocateID))
	if err != nil {
		t.Fatalf("Book returned error: %v", err)
	}
	if appt.ClientID != existing.ID {
		t.Fatalf("existing client must be reused, got %d want %d", appt.ClientID, existing.ID)
	}
	if n, _ := f.clients.CountByOwner(ctx, f.advocateID); n != 1 {
		t.Fatalf("no duplicate client records, got %d", n)
	}
}

func TestAppointmentService_Book_InvalidAdvocate(t *testing.T) {
	f := newAppointmentFixture(t)

	// unknown id
	if _, err := f.svc.Book(context.Background(), bookingInput(999)); err != domain.ErrInvalidAdvocate {
		t.Fatalf("expected ErrInvalidAdvocate, got %v", err)
	}

	// a client identity is not a bookable advocate
	client, _ := f.identities.Create(context.Background(), &domain.Identity{
		Username: "cl", Email: "cl@example.com", Role: domain.RoleClient, Active: true,
	})
	if _, err := f.svc.Book(context.Background(), bookingInput(client.ID)); err != domain.ErrInvalidAdvocate {
		t.Fatalf("expected ErrInvalidAdvocate for client identity, got %v", err)
	}
}

func TestAppointmentService_UpdateStatus(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	appt, err := f.svc.Book(ctx, bookingInput(f.advocateID))
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	confirmed, err := f.svc.UpdateStatus(ctx, f.advocateID, appt.ID, domain.AppointmentConfirmed)
	if err != nil {
		t.Fatalf("Pending -> Confirmed failed: %v", err)
	}
	if confirmed.Status != domain.AppointmentConfirmed {
		t.Fatalf("unexpected status: %s", confirmed.Status)
	}

	// Confirmed -> Pending is not a legal move
	if _, err := f.svc.UpdateStatus(ctx, f.advocateID, appt.ID, domain.AppointmentPending); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}

	done, err := f.svc.UpdateStatus(ctx, f.advocateID, appt.ID, domain.AppointmentCompleted)
	if err != nil {
		t.Fatalf("Confirmed -> Completed failed: %v", err)
	}
	if done.Status != domain.AppointmentCompleted {
		t.Fatalf("unexpected status: %s", done.Status)
	}

	// terminal states accept nothing further
	if _, err := f.svc.UpdateStatus(ctx, f.advocateID, appt.ID, domain.AppointmentCancelled); err != domain.ErrInvalidTransition {
		t.Fatalf("expected ErrInvalidTransition from Completed, got %v", err)
	}
}

func TestAppointmentService_UpdateStatus_ForeignAppointment(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	appt, err := f.svc.Book(ctx, bookingInput(f.advocateID))
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}

	if _, err := f.svc.UpdateStatus(ctx, f.advocateID+1, appt.ID, domain.AppointmentConfirmed); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound for foreign advocate, got %v", err)
	}
}
