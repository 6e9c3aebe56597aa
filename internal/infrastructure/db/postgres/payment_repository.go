package postgres

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/legalsuite/case-management/internal/core/domain"
)

// PaymentRepository persists payments. Ownership is transitive through
// the client record, so scoped reads join clients.
type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) (*domain.Payment, error) {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		return nil, fmt.Errorf("insert payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) ListByClient(ctx context.Context, ownerID, clientID uint) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN clients ON clients.id = payments.client_id").
		Where("payments.client_id = ? AND clients.created_by_id = ?", clientID, ownerID).
		Order("payments.payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

func (r *PaymentRepository) ListForClientEmail(ctx context.Context, email string) ([]*domain.Payment, error) {
	var payments []*domain.Payment
	err := r.db.WithContext(ctx).
		Joins("JOIN clients ON clients.id = payments.client_id").
		Where("clients.email = ?", email).
		Order("payments.payment_date DESC").
		Find(&payments).Error
	if err != nil {
		return nil, fmt.Errorf("list portal payments: %w", err)
	}
	return payments, nil
}
