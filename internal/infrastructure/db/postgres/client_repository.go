package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// ClientRepository persists client contact records. Scoped methods
// filter by created_by_id; a row outside the owner's scope reads as
// not found.
type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := r.db.WithContext(ctx).Create(client).Error; err != nil {
		return nil, fmt.Errorf("insert client: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Client, error) {
	var clients []*domain.Client
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("created_at DESC").
		Find(&clients).Error
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	return clients, nil
}

func (r *ClientRepository) FindByID(ctx context.Context, ownerID, id uint) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, client *domain.Client) (*domain.Client, error) {
	if err := r.db.WithContext(ctx).Save(client).Error; err != nil {
		return nil, fmt.Errorf("update client: %w", err)
	}
	return client, nil
}

func (r *ClientRepository) Delete(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Delete(&domain.Client{})
	if res.Error != nil {
		return fmt.Errorf("delete client: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// FindAnyByEmail is deliberately unscoped: the OTP flow correlates a
// login email to whichever advocate's record carries it.
func (r *ClientRepository) FindAnyByEmail(ctx context.Context, email string) (*domain.Client, error) {
	var client domain.Client
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&client).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("find client: %w", err)
	}
	return &client, nil
}

// GetOrCreateByEmail runs find-or-insert inside one transaction so two
// racing bookings for the same email resolve to a single record.
func (r *ClientRepository) GetOrCreateByEmail(ctx context.Context, email string, defaults *domain.Client) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("email = ?", email).First(&client).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		client = *defaults
		client.Email = email
		return tx.Create(&client).Error
	})
	if err != nil {
		return nil, fmt.Errorf("get or create client: %w", err)
	}
	return &client, nil
}

func (r *ClientRepository) CountByOwner(ctx context.Context, ownerID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Client{}).
		Where("created_by_id = ?", ownerID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count clients: %w", err)
	}
	return n, nil
}
