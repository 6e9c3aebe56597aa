package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// IdentityRepository persists login identities.
type IdentityRepository struct {
	db *gorm.DB
}

func NewIdentityRepository(db *gorm.DB) *IdentityRepository {
	return &IdentityRepository{db: db}
}

func (r *IdentityRepository) Create(ctx context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if err := r.db.WithContext(ctx).Create(identity).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert identity: %w", err)
	}
	return identity, nil
}

func (r *IdentityRepository) FindByUsername(ctx context.Context, username string) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &identity, nil
}

func (r *IdentityRepository) FindByEmail(ctx context.Context, email string) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&identity).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &identity, nil
}

func (r *IdentityRepository) FindByID(ctx context.Context, id uint) (*domain.Identity, error) {
	var identity domain.Identity
	if err := r.db.WithContext(ctx).First(&identity, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	return &identity, nil
}

// GetOrCreateByEmail returns the identity for email, inserting defaults
// when absent. The unique index on email resolves concurrent creates:
// the loser re-reads the winner's row.
func (r *IdentityRepository) GetOrCreateByEmail(ctx context.Context, email string, defaults *domain.Identity) (*domain.Identity, bool, error) {
	existing, err := r.FindByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, domain.ErrIdentityNotFound) {
		return nil, false, err
	}

	identity := *defaults
	identity.Email = email
	if createErr := r.db.WithContext(ctx).Create(&identity).Error; createErr != nil {
		if errors.Is(createErr, gorm.ErrDuplicatedKey) {
			winner, findErr := r.FindByEmail(ctx, email)
			if findErr != nil {
				return nil, false, findErr
			}
			return winner, false, nil
		}
		return nil, false, fmt.Errorf("insert identity: %w", createErr)
	}
	return &identity, true, nil
}

func (r *IdentityRepository) FindAdvocate(ctx context.Context, id uint) (*domain.Identity, error) {
	var identity domain.Identity
	err := r.db.WithContext(ctx).
		Where("id = ? AND role = ? AND active = ?", id, domain.RoleAdvocate, true).
		First(&identity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIdentityNotFound
		}
		return nil, fmt.Errorf("find advocate: %w", err)
	}
	return &identity, nil
}

func (r *IdentityRepository) ListActiveAdvocates(ctx context.Context) ([]*domain.Identity, error) {
	var advocates []*domain.Identity
	err := r.db.WithContext(ctx).
		Where("role = ? AND active = ?", domain.RoleAdvocate, true).
		Order("full_name").
		Find(&advocates).Error
	if err != nil {
		return nil, fmt.Errorf("list advocates: %w", err)
	}
	return advocates, nil
}
