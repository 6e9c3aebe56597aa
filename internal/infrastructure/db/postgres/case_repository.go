package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// CaseRepository persists cases and serves the hearing and portal
// views derived from them.
type CaseRepository struct {
	db *gorm.DB
}

func NewCaseRepository(db *gorm.DB) *CaseRepository {
	return &CaseRepository{db: db}
}

func (r *CaseRepository) Create(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		return nil, fmt.Errorf("insert case: %w", err)
	}
	return c, nil
}

func (r *CaseRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) FindByID(ctx context.Context, ownerID, id uint) (*domain.Case, error) {
	var c domain.Case
	err := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		First(&c).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCaseNotFound
		}
		return nil, fmt.Errorf("find case: %w", err)
	}
	return &c, nil
}

func (r *CaseRepository) Update(ctx context.Context, c *domain.Case) (*domain.Case, error) {
	if err := r.db.WithContext(ctx).Save(c).Error; err != nil {
		return nil, fmt.Errorf("update case: %w", err)
	}
	return c, nil
}

func (r *CaseRepository) Delete(ctx context.Context, ownerID, id uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND created_by_id = ?", id, ownerID).
		Delete(&domain.Case{})
	if res.Error != nil {
		return fmt.Errorf("delete case: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCaseNotFound
	}
	return nil
}

func (r *CaseRepository) ListByClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Where("client_id = ? AND created_by_id = ?", clientID, ownerID).
		Order("updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("list client cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) ListHearings(ctx context.Context, ownerID uint) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Where("created_by_id = ? AND next_hearing IS NOT NULL", ownerID).
		Order("next_hearing").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("list hearings: %w", err)
	}
	return cases, nil
}

// ListForClientEmail serves the client portal: the caller's email is
// joined to client records, not to an ownership column.
func (r *CaseRepository) ListForClientEmail(ctx context.Context, email string) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Joins("JOIN clients ON clients.id = cases.client_id").
		Where("clients.email = ?", email).
		Order("cases.updated_at DESC").
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("list portal cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) CountByOwnerStatus(ctx context.Context, ownerID uint, status string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Case{}).
		Where("created_by_id = ? AND status = ?", ownerID, status).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count cases: %w", err)
	}
	return n, nil
}

func (r *CaseRepository) CountUpcomingHearings(ctx context.Context, ownerID uint, from time.Time) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&domain.Case{}).
		Where("created_by_id = ? AND next_hearing >= ?", ownerID, from).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count hearings: %w", err)
	}
	return n, nil
}

func (r *CaseRepository) RecentByOwner(ctx context.Context, ownerID uint, limit int) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("created_at DESC").
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("recent cases: %w", err)
	}
	return cases, nil
}

func (r *CaseRepository) UpcomingHearings(ctx context.Context, ownerID uint, from time.Time, limit int) ([]*domain.Case, error) {
	var cases []*domain.Case
	err := r.db.WithContext(ctx).
		Where("created_by_id = ? AND next_hearing >= ?", ownerID, from).
		Order("next_hearing").
		Limit(limit).
		Find(&cases).Error
	if err != nil {
		return nil, fmt.Errorf("upcoming hearings: %w", err)
	}
	return cases, nil
}
