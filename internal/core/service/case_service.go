package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// CaseService exposes owner-scoped CRUD over cases and the hearing
// views derived from them.
type CaseService struct {
	repo    ports.CaseRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewCaseService(repo ports.CaseRepository, clients ports.ClientRepository, logger zerolog.Logger) *CaseService {
	return &CaseService{repo: repo, clients: clients, logger: logger}
}

func (s *CaseService) List(ctx context.Context, ownerID uint) ([]*domain.Case, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create opens a case for one of the caller's clients. Referencing a
// client the caller does not own reads as the client not existing.
func (s *CaseService) Create(ctx context.Context, ownerID uint, in ports.CaseInput) (*domain.Case, error) {
	if _, err := s.clients.FindByID(ctx, ownerID, in.ClientID); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = domain.CaseOpen
	}

	c := &domain.Case{
		ClientID:    in.ClientID,
		CaseTitle:   in.CaseTitle,
		CaseNumber:  in.CaseNumber,
		CaseType:    in.CaseType,
		Status:      status,
		CourtName:   in.CourtName,
		NextHearing: in.NextHearing,
		CreatedByID: ownerID,
	}
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("case_id", created.ID).Uint("owner_id", ownerID).Str("title", created.CaseTitle).Msg("case created")
	return created, nil
}

func (s *CaseService) Get(ctx context.Context, ownerID, id uint) (*domain.Case, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *CaseService) Update(ctx context.Context, ownerID, id uint, in ports.CaseInput) (*domain.Case, error) {
	c, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if in.ClientID != 0 && in.ClientID != c.ClientID {
		if _, err := s.clients.FindByID(ctx, ownerID, in.ClientID); err != nil {
			return nil, err
		}
		c.ClientID = in.ClientID
	}
	c.CaseTitle = in.CaseTitle
	c.CaseNumber = in.CaseNumber
	c.CaseType = in.CaseType
	if in.Status != "" {
		c.Status = in.Status
	}
	c.CourtName = in.CourtName
	c.NextHearing = in.NextHearing

	return s.repo.Update(ctx, c)
}

func (s *CaseService) Delete(ctx context.Context, ownerID, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}

func (s *CaseService) ListForClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Case, error) {
	return s.repo.ListByClient(ctx, ownerID, clientID)
}

func (s *CaseService) Hearings(ctx context.Context, ownerID uint) ([]*domain.Case, error) {
	return s.repo.ListHearings(ctx, ownerID)
}
