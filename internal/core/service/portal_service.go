package service

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// PortalService serves the client-facing dashboard. A CLIENT identity
// has no foreign key to client records; rows are correlated by the
// identity's email. No matching records simply means empty lists.
type PortalService struct {
	cases    ports.CaseRepository
	payments ports.PaymentRepository
}

func NewPortalService(cases ports.CaseRepository, payments ports.PaymentRepository) *PortalService {
	return &PortalService{cases: cases, payments: payments}
}

func (s *PortalService) CasesForEmail(ctx context.Context, email string) ([]*domain.Case, error) {
	return s.cases.ListForClientEmail(ctx, email)
}

func (s *PortalService) HearingsForEmail(ctx context.Context, email string) ([]*domain.Case, error) {
	all, err := s.cases.ListForClientEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	hearings := make([]*domain.Case, 0, len(all))
	for _, c := range all {
		if c.NextHearing != nil {
			hearings = append(hearings, c)
		}
	}
	return hearings, nil
}

func (s *PortalService) PaymentsForEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	return s.payments.ListForClientEmail(ctx, email)
}
