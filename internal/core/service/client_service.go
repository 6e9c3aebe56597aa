package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// ClientService exposes owner-scoped CRUD over client records.
type ClientService struct {
	repo   ports.ClientRepository
	logger zerolog.Logger
}

func NewClientService(repo ports.ClientRepository, logger zerolog.Logger) *ClientService {
	return &ClientService{repo: repo, logger: logger}
}

func (s *ClientService) List(ctx context.Context, ownerID uint) ([]*domain.Client, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// Create inserts a client owned by the caller. The owner is forced
// server-side; whatever the payload claimed is ignored.
func (s *ClientService) Create(ctx context.Context, ownerID uint, in ports.ClientInput) (*domain.Client, error) {
	client := &domain.Client{
		FullName:      in.FullName,
		Email:         in.Email,
		ContactNumber: in.ContactNumber,
		Address:       in.Address,
		Notes:         in.Notes,
		Active:        in.Active,
		CreatedByID:   ownerID,
	}
	created, err := s.repo.Create(ctx, client)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("client_id", created.ID).Uint("owner_id", ownerID).Msg("client created")
	return created, nil
}

func (s *ClientService) Get(ctx context.Context, ownerID, id uint) (*domain.Client, error) {
	return s.repo.FindByID(ctx, ownerID, id)
}

func (s *ClientService) Update(ctx context.Context, ownerID, id uint, in ports.ClientInput) (*domain.Client, error) {
	client, err := s.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	client.FullName = in.FullName
	client.Email = in.Email
	client.ContactNumber = in.ContactNumber
	client.Address = in.Address
	client.Notes = in.Notes
	client.Active = in.Active

	return s.repo.Update(ctx, client)
}

func (s *ClientService) Delete(ctx context.Context, ownerID, id uint) error {
	return s.repo.Delete(ctx, ownerID, id)
}
