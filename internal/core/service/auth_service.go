package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalsuite/case-management/internal/core/domain"
	"github.com/legalsuite/case-management/internal/core/ports"
)

// AuthService implements registration, password login, and token
// refresh. It also acts as the SessionIssuer for the OTP flow.
type AuthService struct {
	identities ports.IdentityRepository
	jwtSecret  string
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewAuthService(identities ports.IdentityRepository, jwtSecret string, accessTTL, refreshTTL time.Duration) *AuthService {
	if accessTTL <= 0 {
		accessTTL = 15 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{identities: identities, jwtSecret: jwtSecret, accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// RegisterAdvocate creates an ADVOCATE identity from an open
// registration request.
func (s *AuthService) RegisterAdvocate(ctx context.Context, in ports.RegisterInput) (*domain.Identity, error) {
	return s.register(ctx, in, domain.RoleAdvocate, in.Password)
}

// RegisterClient creates a CLIENT identity with a server-generated
// random password. The account is expected to log in via OTP; the
// plaintext is never returned.
func (s *AuthService) RegisterClient(ctx context.Context, in ports.RegisterInput) (*domain.Identity, error) {
	pw, err := randomPassword()
	if err != nil {
		return nil, err
	}
	return s.register(ctx, in, domain.RoleClient, pw)
}

func (s *AuthService) register(ctx context.Context, in ports.RegisterInput, role, password string) (*domain.Identity, error) {
	if in.Username == "" || password == "" || in.Email == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	identity := &domain.Identity{
		Username:      in.Username,
		Email:         in.Email,
		PasswordHash:  string(hash),
		FullName:      in.FullName,
		Role:          role,
		ContactNumber: in.ContactNumber,
		Active:        true,
	}

	return s.identities.Create(ctx, identity)
}

// Login checks the credentials and returns a signed token pair.
// Identities without a usable password (OTP-provisioned clients) always
// fail with ErrInvalidCredentials, regardless of the supplied password.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.TokenPair, *domain.Identity, error) {
	if username == "" || password == "" {
		return nil, nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByUsername(ctx, username)
	if err != nil {
		return nil, nil, err
	}

	if !identity.HasUsablePassword() {
		return nil, nil, domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, nil, domain.ErrInvalidCredentials
	}

	pair, err := s.IssueForIdentity(identity)
	if err != nil {
		return nil, nil, err
	}
	return pair, identity, nil
}

// Profile returns the identity record behind an authenticated caller.
func (s *AuthService) Profile(ctx context.Context, id uint) (*domain.Identity, error) {
	return s.identities.FindByID(ctx, id)
}

// ActiveAdvocates is the world-readable directory of active advocates.
func (s *AuthService) ActiveAdvocates(ctx context.Context) ([]*domain.Identity, error) {
	return s.identities.ListActiveAdvocates(ctx)
}

// IssueForIdentity mints a token pair without a credential check. The
// OTP service calls this after a verified passcode.
func (s *AuthService) IssueForIdentity(identity *domain.Identity) (*ports.TokenPair, error) {
	access, err := s.signToken(identity, "access", s.accessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(identity, "refresh", s.refreshTTL)
	if err != nil {
		return nil, err
	}
	return &ports.TokenPair{
		Access:   access,
		Refresh:  refresh,
		Role:     identity.Role,
		FullName: identity.FullName,
	}, nil
}

// Refresh validates a refresh token and returns a fresh access token
// preserving the original identity claims.
func (s *AuthService) Refresh(refreshToken string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(refreshToken, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidCredentials
	}
	if typ, _ := claims["typ"].(string); typ != "refresh" {
		return "", domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(float64)
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	fullName, _ := claims["full_name"].(string)

	identity := &domain.Identity{
		ID:       uint(sub),
		Username: username,
		Email:    email,
		FullName: fullName,
		Role:     role,
	}
	return s.signToken(identity, "access", s.accessTTL)
}

func (s *AuthService) signToken(identity *domain.Identity, typ string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":       float64(identity.ID),
		"username":  identity.Username,
		"email":     identity.Email,
		"role":      identity.Role,
		"full_name": identity.FullName,
		"typ":       typ,
		"exp":       time.Now().Add(ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// randomPassword generates a throwaway credential for client
// registrations: 16 bytes of entropy, base64 encoded.
func randomPassword() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
