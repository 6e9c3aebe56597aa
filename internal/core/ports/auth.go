package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// RegisterInput carries the fields accepted from an open registration
// request. Role and password handling differ per endpoint and are set
// by the service, never by the caller.
type RegisterInput struct {
	Username      string
	Password      string
	Email         string
	FullName      string
	ContactNumber string
}

// TokenPair is a signed access/refresh token pair with the claims the
// frontend needs without decoding anything.
type TokenPair struct {
	Access   string `json:"access"`
	Refresh  string `json:"refresh"`
	Role     string `json:"role"`
	FullName string `json:"full_name"`
}

// AuthService implements registration and password/refresh sessions.
type AuthService interface {
	RegisterAdvocate(ctx context.Context, in RegisterInput) (*domain.Identity, error)
	// RegisterClient creates a CLIENT identity with a server-generated
	// random password; the plaintext is discarded.
	RegisterClient(ctx context.Context, in RegisterInput) (*domain.Identity, error)
	Login(ctx context.Context, username, password string) (*TokenPair, *domain.Identity, error)
	Refresh(refreshToken string) (string, error)
	// Profile returns the identity behind an authenticated caller.
	Profile(ctx context.Context, id uint) (*domain.Identity, error)
	// ActiveAdvocates is the world-readable advocate directory.
	ActiveAdvocates(ctx context.Context) ([]*domain.Identity, error)
}

// SessionIssuer mints a token pair for an already-verified identity,
// bypassing the password check. Used after OTP verification.
type SessionIssuer interface {
	IssueForIdentity(identity *domain.Identity) (*TokenPair, error)
}

// IdentityRepository defines persistence for login identities.
type IdentityRepository interface {
	Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error)
	FindByUsername(ctx context.Context, username string) (*domain.Identity, error)
	FindByEmail(ctx context.Context, email string) (*domain.Identity, error)
	FindByID(ctx context.Context, id uint) (*domain.Identity, error)
	// GetOrCreateByEmail returns the identity for email, creating it
	// from defaults when absent. The unique index on email makes this
	// at-most-one-per-email under concurrent callers.
	GetOrCreateByEmail(ctx context.Context, email string, defaults *domain.Identity) (*domain.Identity, bool, error)
	// FindAdvocate returns the identity only when it is an active ADVOCATE.
	FindAdvocate(ctx context.Context, id uint) (*domain.Identity, error)
	ListActiveAdvocates(ctx context.Context) ([]*domain.Identity, error)
}
