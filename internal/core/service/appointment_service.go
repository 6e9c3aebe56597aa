package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// AppointmentService books appointments and drives their status
// machine.
type AppointmentService struct {
	repo       ports.AppointmentRepository
	clients    ports.ClientRepository
	identities ports.IdentityRepository
	logger     zerolog.Logger
}

func NewAppointmentService(
	repo ports.AppointmentRepository,
	clients ports.ClientRepository,
	identities ports.IdentityRepository,
	logger zerolog.Logger,
) *AppointmentService {
	return &AppointmentService{repo: repo, clients: clients, identities: identities, logger: logger}
}

func (s *AppointmentService) ListForAdvocate(ctx context.Context, advocateID uint) ([]*domain.Appointment, error) {
	return s.repo.ListByAdvocate(ctx, advocateID)
}

// Book validates the chosen advocate, finds or creates the client
// record for the email, and creates a Pending appointment. The client
// lookup-or-insert runs atomically in the repository so two racing
// bookings cannot produce duplicate records for one email.
func (s *AppointmentService) Book(ctx context.Context, in ports.BookAppointmentInput) (*domain.Appointment, error) {
	advocate, err := s.identities.FindAdvocate(ctx, in.AdvocateID)
	if err != nil {
		return nil, domain.ErrInvalidAdvocate
	}

	client, err := s.clients.GetOrCreateByEmail(ctx, in.ClientEmail, &domain.Client{
		FullName:      in.ClientName,
		Email:         in.ClientEmail,
		ContactNumber: in.ClientContact,
		Address:       in.ClientAddress,
		Active:        true,
		CreatedByID:   advocate.ID,
	})
	if err != nil {
		return nil, err
	}

	appt := &domain.Appointment{
		ClientID:        client.ID,
		AdvocateID:      advocate.ID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		Duration:        in.Duration,
		Purpose:         in.Purpose,
		Status:          domain.AppointmentPending,
	}
	created, err := s.repo.Create(ctx, appt)
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("appointment_id", created.ID).
		Uint("advocate_id", advocate.ID).
		Uint("client_id", client.ID).
		Msg("appointment booked")
	return created, nil
}

// UpdateStatus moves an appointment through its state machine. Only the
// owning advocate can reach the row; invalid transitions are rejected.
func (s *AppointmentService) UpdateStatus(ctx context.Context, advocateID, id uint, next domain.AppointmentStatus) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, advocateID, id)
	if err != nil {
		return nil, err
	}

	if !appt.Status.CanTransitionTo(next) {
		s.logger.Warn().
			Uint("appointment_id", id).
			Str("from", string(appt.Status)).
			Str("to", string(next)).
			Msg("rejected status transition")
		return nil, domain.ErrInvalidTransition
	}

	appt.Status = next
	return s.repo.UpdateStatus(ctx, appt)
}
