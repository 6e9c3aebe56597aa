package service

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	mrand "math/rand"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

const otpSubject = "Login Verification - Legal Suite"

// OTPService implements passwordless client login: issue a 6-digit
// code by email, verify it against the most recent record, purge on
// success, and auto-provision a CLIENT identity.
type OTPService struct {
	passcodes  ports.PasscodeRepository
	identities ports.IdentityRepository
	clients    ports.ClientRepository
	mailer     ports.Mailer
	limiter    ports.RateLimiter
	issuer     ports.SessionIssuer
	window     time.Duration
	logger     zerolog.Logger
	now        func() time.Time
}

func NewOTPService(
	passcodes ports.PasscodeRepository,
	identities ports.IdentityRepository,
	clients ports.ClientRepository,
	mailer ports.Mailer,
	limiter ports.RateLimiter,
	issuer ports.SessionIssuer,
	window time.Duration,
	logger zerolog.Logger,
) *OTPService {
	if window <= 0 {
		window = 10 * time.Minute
	}
	return &OTPService{
		passcodes:  passcodes,
		identities: identities,
		clients:    clients,
		mailer:     mailer,
		limiter:    limiter,
		issuer:     issuer,
		window:     window,
		logger:     logger,
		now:        time.Now,
	}
}

// RequestCode generates a fresh passcode for email and dispatches it.
// Fails with ErrClientNotFound when no client record matches, and with
// ErrMailDelivery when dispatch fails; in the latter case the passcode
// row persists so the caller may simply re-request.
func (s *OTPService) RequestCode(ctx context.Context, email string) error {
	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// Limiter outage must not take down login; fail open.
			s.logger.Warn().Err(err).Str("email", email).Msg("otp rate limiter unavailable")
		} else if !allowed {
			return domain.ErrRateLimited
		}
	}

	if _, err := s.clients.FindAnyByEmail(ctx, email); err != nil {
		return err
	}

	code := generateCode()
	if err := s.passcodes.Create(ctx, &domain.Passcode{Email: email, Code: code, CreatedAt: s.now()}); err != nil {
		return err
	}

	body := fmt.Sprintf(
		"Secure Login Verification\n\nUse the code below to access your client portal.\n\n%s\n\nThis code is valid for %d minutes. Do not share this code with anyone.",
		code, int(s.window.Minutes()),
	)
	if err := s.mailer.Send(ctx, email, otpSubject, body); err != nil {
		s.logger.Error().Err(err).Str("email", email).Msg("failed to dispatch passcode email")
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	s.logger.Info().Str("email", email).Msg("passcode issued")
	return nil
}

// VerifyCode compares code against the latest passcode for email. On
// success every passcode for the email is purged (older codes can never
// replay), a CLIENT identity is provisioned when absent, and a token
// pair is issued.
func (s *OTPService) VerifyCode(ctx context.Context, email, code string) (*ports.TokenPair, *domain.Identity, error) {
	record, err := s.passcodes.LatestByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	if record.Code != code || record.Expired(s.now(), s.window) {
		return nil, nil, domain.ErrInvalidCode
	}

	deleted, err := s.passcodes.DeleteByEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}
	if deleted == 0 {
		// A concurrent verification consumed the code between the read
		// and the purge. Exactly one caller gets the zero count, so the
		// code is still single-use.
		return nil, nil, domain.ErrInvalidCode
	}

	fullName := "Client"
	if client, err := s.clients.FindAnyByEmail(ctx, email); err == nil {
		fullName = client.FullName
	}

	identity, created, err := s.identities.GetOrCreateByEmail(ctx, email, &domain.Identity{
		Username: email,
		Email:    email,
		FullName: fullName,
		Role:     domain.RoleClient,
		Active:   true,
		// no password hash: the account can never log in with one
	})
	if err != nil {
		return nil, nil, err
	}
	if created {
		s.logger.Info().Str("email", email).Msg("client identity auto-provisioned")
	}

	pair, err := s.issuer.IssueForIdentity(identity)
	if err != nil {
		return nil, nil, err
	}
	return pair, identity, nil
}

// generateCode returns a uniformly random 6-digit code in
// [100000, 999999]. Fixed width by construction, no zero padding.
func generateCode() string {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		// fallback: weaker randomness beats no login
		return strconv.Itoa(100000 + mrand.Intn(900000))
	}
	return strconv.FormatInt(n.Int64()+100000, 10)
}
