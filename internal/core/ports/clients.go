package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// ClientInput carries the mutable fields of a client record. The owner
// is always taken from the caller's token, never from the payload.
type ClientInput struct {
	FullName      string
	Email         string
	ContactNumber string
	Address       string
	Notes         string
	Active        bool
}

// ClientService exposes owner-scoped CRUD over client records. Every
// method takes the caller's identity id; rows outside that scope are
// reported as domain.ErrClientNotFound.
type ClientService interface {
	List(ctx context.Context, ownerID uint) ([]*domain.Client, error)
	Create(ctx context.Context, ownerID uint, in ClientInput) (*domain.Client, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Client, error)
	Update(ctx context.Context, ownerID, id uint, in ClientInput) (*domain.Client, error)
	Delete(ctx context.Context, ownerID, id uint) error
}

// ClientRepository defines persistence for client records. Methods
// taking ownerID filter by created_by; FindAnyByEmail is deliberately
// unscoped for the OTP flow's email correlation.
type ClientRepository interface {
	Create(ctx context.Context, client *domain.Client) (*domain.Client, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Client, error)
	FindByID(ctx context.Context, ownerID, id uint) (*domain.Client, error)
	Update(ctx context.Context, client *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, ownerID, id uint) error
	FindAnyByEmail(ctx context.Context, email string) (*domain.Client, error)
	// GetOrCreateByEmail finds a client by email or inserts one from
	// defaults, atomically. Used when booking appointments.
	GetOrCreateByEmail(ctx context.Context, email string, defaults *domain.Client) (*domain.Client, error)
	CountByOwner(ctx context.Context, ownerID uint) (int64, error)
}
