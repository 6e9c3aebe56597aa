package service

import (
	"context"
	"time"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

const dashboardRecentLimit = 3

// DashboardService aggregates the advocate's working set: counters,
// recent cases, upcoming hearings, recent appointments, and the date
// lists the calendar widget renders.
type DashboardService struct {
	cases        ports.CaseRepository
	clients      ports.ClientRepository
	appointments ports.AppointmentRepository
	now          func() time.Time
}

func NewDashboardService(cases ports.CaseRepository, clients ports.ClientRepository, appointments ports.AppointmentRepository) *DashboardService {
	return &DashboardService{cases: cases, clients: clients, appointments: appointments, now: time.Now}
}

func (s *DashboardService) Stats(ctx context.Context, advocateID uint) (*ports.DashboardStats, error) {
	today := s.now().Truncate(24 * time.Hour)
	out := &ports.DashboardStats{}

	activeCases, err := s.cases.CountByOwnerStatus(ctx, advocateID, domain.CaseOpen)
	if err != nil {
		return nil, err
	}
	pendingHearings, err := s.cases.CountUpcomingHearings(ctx, advocateID, today)
	if err != nil {
		return nil, err
	}
	totalClients, err := s.clients.CountByOwner(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	apptCount, err := s.appointments.CountByAdvocateStatuses(ctx, advocateID,
		[]domain.AppointmentStatus{domain.AppointmentPending, domain.AppointmentConfirmed})
	if err != nil {
		return nil, err
	}

	out.Stats.ActiveCases = activeCases
	out.Stats.PendingHearings = pendingHearings
	out.Stats.TotalClients = totalClients
	out.Stats.AppointmentsCount = apptCount

	if out.RecentCases, err = s.cases.RecentByOwner(ctx, advocateID, dashboardRecentLimit); err != nil {
		return nil, err
	}
	if out.UpcomingHearings, err = s.cases.UpcomingHearings(ctx, advocateID, today, dashboardRecentLimit); err != nil {
		return nil, err
	}
	if out.RecentAppointments, err = s.appointments.RecentByAdvocate(ctx, advocateID, dashboardRecentLimit); err != nil {
		return nil, err
	}

	hearings, err := s.cases.ListHearings(ctx, advocateID)
	if err != nil {
		return nil, err
	}
	out.CalendarData.Hearings = make([]string, 0, len(hearings))
	for _, c := range hearings {
		if c.NextHearing != nil {
			out.CalendarData.Hearings = append(out.CalendarData.Hearings, c.NextHearing.Format("2006-01-02"))
		}
	}

	if out.CalendarData.Appointments, err = s.appointments.PendingDates(ctx, advocateID); err != nil {
		return nil, err
	}

	return out, nil
}
