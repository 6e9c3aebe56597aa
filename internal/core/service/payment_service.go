package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// PaymentService records and lists payments under clients the caller
// owns. Scoping is transitive through the client record.
type PaymentService struct {
	repo    ports.PaymentRepository
	clients ports.ClientRepository
	logger  zerolog.Logger
}

func NewPaymentService(repo ports.PaymentRepository, clients ports.ClientRepository, logger zerolog.Logger) *PaymentService {
	return &PaymentService{repo: repo, clients: clients, logger: logger}
}

func (s *PaymentService) ListForClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Payment, error) {
	if _, err := s.clients.FindByID(ctx, ownerID, clientID); err != nil {
		return nil, err
	}
	return s.repo.ListByClient(ctx, ownerID, clientID)
}

func (s *PaymentService) CreateForClient(ctx context.Context, ownerID, clientID uint, in ports.PaymentInput) (*domain.Payment, error) {
	if _, err := s.clients.FindByID(ctx, ownerID, clientID); err != nil {
		return nil, err
	}

	p := &domain.Payment{
		ClientID:      clientID,
		CaseID:        in.CaseID,
		Amount:        in.Amount,
		PaymentDate:   in.PaymentDate,
		PaymentMode:   in.PaymentMode,
		ReceiptNumber: in.ReceiptNumber,
		Status:        in.Status,
		Notes:         in.Notes,
	}
	created, err := s.repo.Create(ctx, p)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Uint("payment_id", created.ID).Uint("client_id", clientID).Msg("payment recorded")
	return created, nil
}
