package ports

import (
	"context"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// OTPService implements the passwordless login flow for clients.
type OTPService interface {
	// RequestCode generates and emails a fresh passcode. Fails with
	// domain.ErrClientNotFound when no client record matches the email.
	RequestCode(ctx context.Context, email string) error
	// VerifyCode checks code against the most recent passcode for
	// email, purges all records on success, auto-provisions a CLIENT
	// identity when needed, and returns a token pair.
	VerifyCode(ctx context.Context, email, code string) (*TokenPair, *domain.Identity, error)
}

// PasscodeRepository defines persistence for one-time passcodes.
// Records are append-only; DeleteByEmail is the only mutation.
type PasscodeRepository interface {
	Create(ctx context.Context, p *domain.Passcode) error
	// LatestByEmail returns the most recently created record for email,
	// or domain.ErrCodeNotFound.
	LatestByEmail(ctx context.Context, email string) (*domain.Passcode, error)
	// DeleteByEmail removes every record for email in one statement
	// and reports how many rows it removed. A zero count means a
	// concurrent verification already consumed the code.
	DeleteByEmail(ctx context.Context, email string) (int64, error)
}

// Mailer dispatches a notification email. Fire-and-forget: failures are
// surfaced to the caller, never retried.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RateLimiter bounds how often a passcode may be requested per email.
type RateLimiter interface {
	// Allow reports whether one more request is within the window.
	Allow(ctx context.Context, email string) (bool, error)
}
