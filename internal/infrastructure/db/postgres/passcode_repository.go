package postgres

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// PasscodeRepository persists one-time login codes. Rows are append-only
// and removed wholesale per email when a verification succeeds.
type PasscodeRepository struct {
	db *gorm.DB
}

func NewPasscodeRepository(db *gorm.DB) *PasscodeRepository {
	return &PasscodeRepository{db: db}
}

func (r *PasscodeRepository) Create(ctx context.Context, p *domain.Passcode) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return fmt.Errorf("insert passcode: %w", err)
	}
	return nil
}

func (r *PasscodeRepository) LatestByEmail(ctx context.Context, email string) (*domain.Passcode, error) {
	var p domain.Passcode
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("created_at DESC").
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCodeNotFound
		}
		return nil, fmt.Errorf("find passcode: %w", err)
	}
	return &p, nil
}

// DeleteByEmail purges every passcode for email in a single statement,
// so an older code can never replay after a successful verification.
// The row count lets the caller detect a purge that raced another
// verification and removed nothing.
func (r *PasscodeRepository) DeleteByEmail(ctx context.Context, email string) (int64, error) {
	res := r.db.WithContext(ctx).Where("email = ?", email).Delete(&domain.Passcode{})
	if res.Error != nil {
		return 0, fmt.Errorf("purge passcodes: %w", res.Error)
	}
	return res.RowsAffected, nil
}
