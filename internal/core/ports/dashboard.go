package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// DashboardStats is the aggregate read backing the advocate dashboard.
type DashboardStats struct {
	Stats struct {
		ActiveCases       int64 `json:"active_cases"`
		PendingHearings   int64 `json:"pending_hearings"`
		TotalClients      int64 `json:"total_clients"`
		AppointmentsCount int64 `json:"appointments_count"`
	} `json:"stats"`
	RecentCases        []*domain.Case        `json:"recent_cases"`
	UpcomingHearings   []*domain.Case        `json:"upcoming_hearings"`
	RecentAppointments []*domain.Appointment `json:"recent_appointments"`
	CalendarData       struct {
		Hearings     []string `json:"hearings"`
		Appointments []string `json:"appointments"`
	} `json:"calendar_data"`
}

// DashboardService aggregates the advocate's working set in one read.
type DashboardService interface {
	Stats(ctx context.Context, advocateID uint) (*DashboardStats, error)
}

// PortalService serves the client dashboard. Rows are correlated to the
// caller through client records matching the identity's email; a client
// identity with no matching records simply sees empty lists.
type PortalService interface {
	CasesForEmail(ctx context.Context, email string) ([]*domain.Case, error)
	HearingsForEmail(ctx context.Context, email string) ([]*domain.Case, error)
	PaymentsForEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
