package ports

import (
	"context"
	"time"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// CaseInput carries the mutable fields of a case.
type CaseInput struct {
	ClientID    uint
	CaseTitle   string
	CaseNumber  string
	CaseType    string
	Status      string
	CourtName   string
	NextHearing *time.Time
}

// CaseService exposes owner-scoped CRUD over cases plus the hearing
// views derived from them.
type CaseService interface {
	List(ctx context.Context, ownerID uint) ([]*domain.Case, error)
	Create(ctx context.Context, ownerID uint, in CaseInput) (*domain.Case, error)
	Get(ctx context.Context, ownerID, id uint) (*domain.Case, error)
	Update(ctx context.Context, ownerID, id uint, in CaseInput) (*domain.Case, error)
	Delete(ctx context.Context, ownerID, id uint) error
	// ListForClient returns the owner's cases for one of their clients.
	ListForClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Case, error)
	// Hearings returns the owner's cases with a hearing date set,
	// soonest first.
	Hearings(ctx context.Context, ownerID uint) ([]*domain.Case, error)
}

// CaseRepository defines persistence for cases. ListForClientEmail
// serves the client portal: it crosses the loose email correlation
// between Identity and Client records.
type CaseRepository interface {
	Create(ctx context.Context, c *domain.Case) (*domain.Case, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Case, error)
	FindByID(ctx context.Context, ownerID, id uint) (*domain.Case, error)
	Update(ctx context.Context, c *domain.Case) (*domain.Case, error)
	Delete(ctx context.Context, ownerID, id uint) error
	ListByClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Case, error)
	ListHearings(ctx context.Context, ownerID uint) ([]*domain.Case, error)
	ListForClientEmail(ctx context.Context, email string) ([]*domain.Case, error)
	CountByOwnerStatus(ctx context.Context, ownerID uint, status string) (int64, error)
	CountUpcomingHearings(ctx context.Context, ownerID uint, from time.Time) (int64, error)
	RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]*domain.Case, error)
	UpcomingHearings(ctx context.Context, ownerID uint, from time.Time, limit int) ([]*domain.Case, error)
}
