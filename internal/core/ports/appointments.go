package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// BookAppointmentInput carries a booking request. The client contact
// fields are fallbacks used only when no client record matches the
// email yet.
type BookAppointmentInput struct {
	AdvocateID      uint
	ClientEmail     string
	ClientName      string
	ClientContact   string
	ClientAddress   string
	AppointmentDate string
	AppointmentTime string
	Duration        int
	Purpose         string
}

// AppointmentService books appointments and drives their status
// machine. Status updates are restricted to the owning advocate.
type AppointmentService interface {
	ListForAdvocate(ctx context.Context, advocateID uint) ([]*domain.Appointment, error)
	Book(ctx context.Context, in BookAppointmentInput) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, advocateID, id uint, next domain.AppointmentStatus) (*domain.Appointment, error)
}

// AppointmentRepository defines persistence for appointments.
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	ListByAdvocate(ctx context.Context, advocateID uint) ([]*domain.Appointment, error)
	FindByID(ctx context.Context, advocateID, id uint) (*domain.Appointment, error)
	UpdateStatus(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	CountByAdvocateStatuses(ctx context.Context, advocateID uint, statuses []domain.AppointmentStatus) (int64, error)
	RecentByAdvocate(ctx context.Context, advocateID uint, limit int) ([]*domain.Appointment, error)
	PendingDates(ctx context.Context, advocateID uint) ([]string, error)
}
