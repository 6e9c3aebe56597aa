package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// PaymentInput carries the mutable fields of a payment. The client is
// taken from the URL, never the payload.
type PaymentInput struct {
	CaseID        *uint
	Amount        float64
	PaymentDate   string
	PaymentMode   string
	ReceiptNumber string
	Status        string
	Notes         string
}

// PaymentService records and lists payments under a client the caller
// owns.
type PaymentService interface {
	ListForClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Payment, error)
	CreateForClient(ctx context.Context, ownerID, clientID uint, in PaymentInput) (*domain.Payment, error)
}

// PaymentRepository defines persistence for payments. Scoping is
// transitive: a payment belongs to whoever owns its client record.
type PaymentRepository interface {
	Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error)
	ListByClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Payment, error)
	ListForClientEmail(ctx context.Context, email string) ([]*domain.Payment, error)
}
